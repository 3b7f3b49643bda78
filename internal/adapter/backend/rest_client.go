package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rl1809/pizzeria/internal/core/domain"
)

const (
	ingredientsPath = "/api/getIngredients"
	createOrderPath = "/api/createOrder"
	getOrderPath    = "/api/getOrder/"
)

var errBadStatus = errors.New("unexpected status")

type ingredientResponse struct {
	NameProduct string `json:"nameProduct"`
}

// RESTClient talks to the pizza store backend.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRESTClient(baseURL string, httpClient *http.Client) *RESTClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RESTClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *RESTClient) GetIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	body, err := c.do(ctx, "getIngredients", http.MethodGet, ingredientsPath, nil)
	if err != nil {
		return nil, err
	}

	var items []ingredientResponse
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &domain.NetworkError{Op: "getIngredients", Err: fmt.Errorf("decode response: %w", err)}
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.NameProduct
	}
	return domain.NewCatalog(names), nil
}

func (c *RESTClient) CreateOrder(ctx context.Context, order domain.Order) (*domain.Confirmation, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	body, err := c.do(ctx, "createOrder", http.MethodPost, createOrderPath, payload)
	if err != nil {
		return nil, err
	}

	var conf domain.Confirmation
	if err := json.Unmarshal(body, &conf); err != nil {
		return nil, &domain.NetworkError{Op: "createOrder", Err: fmt.Errorf("decode response: %w", err)}
	}
	return &conf, nil
}

// GetOrder treats a non-ok status and an ok response with a null body alike
// as not found.
func (c *RESTClient) GetOrder(ctx context.Context, orderID string) (*domain.Confirmation, error) {
	body, err := c.do(ctx, "getOrder", http.MethodGet, getOrderPath+url.PathEscape(orderID), nil)
	if err != nil {
		var netErr *domain.NetworkError
		if errors.As(err, &netErr) && errors.Is(netErr.Err, errBadStatus) {
			netErr.Err = domain.ErrOrderNotFound
		}
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &domain.NetworkError{Op: "getOrder", StatusCode: http.StatusOK, Err: domain.ErrOrderNotFound}
	}

	var conf domain.Confirmation
	if err := json.Unmarshal(trimmed, &conf); err != nil {
		return nil, &domain.NetworkError{Op: "getOrder", Err: fmt.Errorf("decode response: %w", err)}
	}
	return &conf, nil
}

func (c *RESTClient) do(ctx context.Context, op, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.NetworkError{Op: op, StatusCode: resp.StatusCode, Err: errBadStatus}
	}
	return body, nil
}
