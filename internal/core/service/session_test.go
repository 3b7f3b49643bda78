package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rl1809/pizzeria/internal/core/domain"
)

// Mock OrderAPI
type mockOrderAPI struct {
	mu              sync.Mutex
	ingredients     []domain.Ingredient
	ingredientsErr  error
	ingredientCalls int
	createErr       error
	created         []domain.Order
	orders          map[string]domain.Confirmation
	getErr          error
	createGate      chan struct{}
	getGates        map[string]chan struct{}
}

func newMockOrderAPI() *mockOrderAPI {
	return &mockOrderAPI{
		ingredients: domain.NewCatalog([]string{"Green olives", "Black olives", "mushrooms", "Onion", "corn", "tuna"}),
		orders:      make(map[string]domain.Confirmation),
	}
}

func (m *mockOrderAPI) GetIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ingredientCalls++
	if m.ingredientsErr != nil {
		return nil, m.ingredientsErr
	}
	return append([]domain.Ingredient(nil), m.ingredients...), nil
}

func (m *mockOrderAPI) CreateOrder(ctx context.Context, order domain.Order) (*domain.Confirmation, error) {
	if m.createGate != nil {
		<-m.createGate
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, order)
	conf := domain.Confirmation{OrderID: fmt.Sprintf("order-%d", len(m.created)), Order: order}
	m.orders[conf.OrderID] = conf
	return &conf, nil
}

func (m *mockOrderAPI) GetOrder(ctx context.Context, orderID string) (*domain.Confirmation, error) {
	m.mu.Lock()
	gate := m.getGates[orderID]
	m.mu.Unlock()
	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return nil, m.getErr
	}
	conf, ok := m.orders[orderID]
	if !ok {
		return nil, &domain.NetworkError{Op: "getOrder", StatusCode: 404, Err: domain.ErrOrderNotFound}
	}
	return &conf, nil
}

// Mock ClientStorage
type mockStorage struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		values: make(map[string]string),
		ttls:   make(map[string]time.Duration),
	}
}

func (m *mockStorage) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mockStorage) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func newTestSession(api *mockOrderAPI, storage *mockStorage, opts ...Option) *Session {
	return NewSession(api, storage, zap.NewNop(), opts...)
}

// drainWrites returns every queued storage write without blocking.
func drainWrites(s *Session) []domain.StorageEntry {
	var out []domain.StorageEntry
	for {
		select {
		case e, ok := <-s.Writes():
			if !ok {
				return out
			}
			out = append(out, e)
		default:
			return out
		}
	}
}

func addPizza(s *Session, ingredients ...string) {
	for _, ing := range ingredients {
		if err := s.Toggle(ing); err != nil {
			panic(err)
		}
	}
	if _, err := s.Commit(); err != nil {
		panic(err)
	}
}
