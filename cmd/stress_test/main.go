package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rl1809/pizzeria/internal/adapter/backend"
	"github.com/rl1809/pizzeria/internal/adapter/storage"
	"github.com/rl1809/pizzeria/internal/config"
	"github.com/rl1809/pizzeria/internal/core/domain"
	"github.com/rl1809/pizzeria/internal/core/service"
)

const totalSessions = 50

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	api := backend.NewRESTClient(cfg.Backend.BaseURL, &http.Client{Timeout: cfg.Backend.Timeout})

	catalog, err := api.GetIngredients(ctx)
	if err != nil {
		log.Fatalf("failed to load ingredients: %v", err)
	}
	if len(catalog) < domain.MinIngredients {
		log.Fatalf("backend offers %d ingredients, need at least %d", len(catalog), domain.MinIngredients)
	}

	// Counters
	var placed atomic.Int32
	var submitFailed atomic.Int32
	var found atomic.Int32
	var mismatched atomic.Int32
	var notFound atomic.Int32

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalSessions; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			session := service.NewSession(api, storage.NewMemoryAdapter(), zap.NewNop())
			defer session.Close()
			go func() {
				for range session.Writes() {
				}
			}()

			conf, err := placeOrder(ctx, session, catalog, n)
			if err != nil {
				submitFailed.Add(1)
				return
			}
			placed.Add(1)

			got, err := session.Lookup(ctx, conf.OrderID)
			switch {
			case err != nil:
				mismatched.Add(1)
			case got.FirstName != conf.FirstName || len(got.Pizzas) != len(conf.Pizzas):
				mismatched.Add(1)
			default:
				found.Add(1)
			}

			if _, err := session.Lookup(ctx, uuid.NewString()); errors.Is(err, domain.ErrOrderNotFound) {
				notFound.Add(1)
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Results
	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Backend:          %s\n", cfg.Backend.BaseURL)
	fmt.Printf("Sessions:         %d\n", totalSessions)
	fmt.Printf("Orders Placed:    %d\n", placed.Load())
	fmt.Printf("Submit Failed:    %d\n", submitFailed.Load())
	fmt.Printf("Lookups Matched:  %d\n", found.Load())
	fmt.Printf("Lookups Wrong:    %d\n", mismatched.Load())
	fmt.Printf("Unknown Rejected: %d\n", notFound.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	// Assertions
	if placed.Load() == totalSessions && found.Load() == totalSessions {
		fmt.Printf("PASS: all %d orders placed and read back\n", totalSessions)
	} else {
		fmt.Printf("FAIL: expected %d placed/read back, got %d/%d\n", totalSessions, placed.Load(), found.Load())
	}

	if notFound.Load() == totalSessions {
		fmt.Println("PASS: unknown order IDs reported as not found")
	} else {
		fmt.Printf("FAIL: expected %d not-found lookups, got %d\n", totalSessions, notFound.Load())
	}
}

// placeOrder composes one pizza per session from a rotating pair of
// ingredients and submits it.
func placeOrder(ctx context.Context, session *service.Session, catalog []domain.Ingredient, n int) (domain.Confirmation, error) {
	if err := session.LoadCatalog(ctx); err != nil {
		return domain.Confirmation{}, err
	}
	for j := 0; j < domain.MinIngredients; j++ {
		if err := session.Toggle(catalog[(n+j)%len(catalog)].Name); err != nil {
			return domain.Confirmation{}, err
		}
	}
	if _, err := session.Commit(); err != nil {
		return domain.Confirmation{}, err
	}
	if err := session.EnterCheckout(ctx); err != nil {
		return domain.Confirmation{}, err
	}

	session.SetCustomer(domain.Customer{
		FirstName:   fmt.Sprintf("user-%d", n),
		LastName:    "Stress",
		Street:      "Main",
		HouseNumber: fmt.Sprint(n + 1),
		City:        "Haifa",
		Phone:       fmt.Sprintf("05%08d", n),
	})
	return session.Submit(ctx)
}
