package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rl1809/pizzeria/internal/core/domain"
	"github.com/rl1809/pizzeria/internal/core/service"
	"github.com/rl1809/pizzeria/internal/logger"
)

// HTTPHandler serves the session as one JSON screen per route.
type HTTPHandler struct {
	session *service.Session
	logger  *zap.Logger
}

type IngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

type LookupRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

type ErrorResponse struct {
	Message string                  `json:"message"`
	Errors  domain.ValidationErrors `json:"errors,omitempty"`
}

type HomeScreen struct {
	Screen string   `json:"screen"`
	Links  []string `json:"links"`
}

func NewHTTPHandler(session *service.Session, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{session: session, logger: logger}
}

// Router builds the navigation shell.
func (h *HTTPHandler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinMiddleware(h.logger))

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/home") })
	r.GET("/health", h.HealthCheck)
	r.GET("/home", h.Home)

	r.GET("/newOrder", h.NewOrder)
	r.POST("/newOrder/toggle", h.ToggleIngredient)
	r.POST("/newOrder/pizzas", h.CommitPizza)

	r.GET("/cart", h.Cart)
	r.POST("/cart/pizzas/:index/edit", h.BeginEdit)
	r.DELETE("/cart/pizzas/:index", h.DeletePizza)
	r.POST("/cart/edit/toggle", h.ToggleDuringEdit)
	r.POST("/cart/edit/save", h.SaveEdit)
	r.POST("/cart/edit/cancel", h.CancelEdit)

	r.GET("/infoClient", h.InfoClient)
	r.PUT("/infoClient/customer", h.UpdateCustomer)
	r.POST("/infoClient/validate", h.Validate)
	r.POST("/infoClient/submit", h.Submit)

	r.GET("/oldOrder", h.OldOrder)
	r.POST("/oldOrder", h.LookupOrder)

	r.NoRoute(h.NotFound)
	return r
}

func (h *HTTPHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HTTPHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, HomeScreen{Screen: "home", Links: []string{"/newOrder", "/oldOrder"}})
}

func (h *HTTPHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"screen": "notFound", "links": []string{"/home"}})
}

// NewOrder loads the catalog for the session. A failed load still renders
// the screen with the failure recorded in it.
func (h *HTTPHandler) NewOrder(c *gin.Context) {
	if err := h.session.LoadCatalog(c.Request.Context()); err != nil {
		h.logger.Debug("rendering new order without catalog", zap.Error(err))
	}
	c.JSON(http.StatusOK, h.session.NewOrderView())
}

func (h *HTTPHandler) ToggleIngredient(c *gin.Context) {
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if err := h.session.Toggle(req.Name); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.session.NewOrderView())
}

func (h *HTTPHandler) CommitPizza(c *gin.Context) {
	if _, err := h.session.Commit(); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.session.NewOrderView())
}

func (h *HTTPHandler) Cart(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.CartView())
}

func (h *HTTPHandler) BeginEdit(c *gin.Context) {
	index, ok := pizzaIndex(c)
	if !ok {
		return
	}
	if err := h.session.BeginEdit(index); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.session.CartView())
}

func (h *HTTPHandler) DeletePizza(c *gin.Context) {
	index, ok := pizzaIndex(c)
	if !ok {
		return
	}
	if !h.session.DeletePizza(index) {
		writeError(c, domain.ErrPizzaNotFound)
		return
	}
	c.JSON(http.StatusOK, h.session.CartView())
}

func (h *HTTPHandler) ToggleDuringEdit(c *gin.Context) {
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if err := h.session.ToggleDuringEdit(req.Name); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.session.CartView())
}

func (h *HTTPHandler) SaveEdit(c *gin.Context) {
	if err := h.session.SaveEdit(); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.session.CartView())
}

func (h *HTTPHandler) CancelEdit(c *gin.Context) {
	h.session.CancelEdit()
	c.JSON(http.StatusOK, h.session.CartView())
}

// InfoClient redirects to the composer when the cart is empty.
func (h *HTTPHandler) InfoClient(c *gin.Context) {
	if err := h.session.EnterCheckout(c.Request.Context()); err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			c.Redirect(http.StatusSeeOther, "/newOrder")
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.session.CheckoutView())
}

func (h *HTTPHandler) UpdateCustomer(c *gin.Context) {
	var customer domain.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		badRequest(c)
		return
	}
	h.session.SetCustomer(customer)
	c.JSON(http.StatusOK, h.session.CheckoutView())
}

func (h *HTTPHandler) Validate(c *gin.Context) {
	status := http.StatusOK
	if errs := h.session.Validate(); !errs.Valid() {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, h.session.CheckoutView())
}

func (h *HTTPHandler) Submit(c *gin.Context) {
	if _, err := h.session.Submit(c.Request.Context()); err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusUnprocessableEntity, h.session.CheckoutView())
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.session.CheckoutView())
}

func (h *HTTPHandler) OldOrder(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.LookupView())
}

func (h *HTTPHandler) LookupOrder(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	status := http.StatusOK
	if _, err := h.session.Lookup(c.Request.Context(), req.OrderID); err != nil {
		status = http.StatusNotFound
	}
	c.JSON(status, h.session.LookupView())
}

func pizzaIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid pizza index"})
		return 0, false
	}
	return index, true
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verr *domain.ValidationError
	var netErr *domain.NetworkError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: verr.Message,
			Errors:  domain.ValidationErrors{verr.Field: verr.Message},
		})
	case errors.Is(err, domain.ErrUnknownIngredient):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: "unknown ingredient"})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: domain.MsgCartEmpty,
			Errors:  domain.ValidationErrors{domain.FieldPizzas: domain.MsgCartEmpty},
		})
	case errors.Is(err, domain.ErrPizzaNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "pizza not found"})
	case errors.Is(err, domain.ErrNotEditing):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "no pizza is being edited"})
	case errors.Is(err, service.ErrRequestInFlight):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "order submission in progress"})
	case errors.As(err, &netErr):
		c.JSON(http.StatusBadGateway, ErrorResponse{Message: domain.MsgSubmitFailed})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
	}
}
