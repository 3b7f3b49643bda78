package service

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/rl1809/pizzeria/internal/core/domain"
	"github.com/rl1809/pizzeria/internal/port"
)

var ErrRequestInFlight = errors.New("request already in flight")

const (
	defaultWriteQueueSize = 64
	defaultNoticeTTL      = 3 * time.Second
)

// Session owns all state of one ordering session: catalog, composer, cart,
// checkout form and order lookup. Every method is safe for concurrent use;
// network calls run without holding the lock.
type Session struct {
	mu      sync.Mutex
	api     port.OrderAPI
	storage port.ClientStorage
	logger  *zap.Logger
	clock   clock.Clock

	noticeTTL time.Duration

	catalog     domain.Request[[]domain.Ingredient]
	selection   domain.Selection
	composeErr  string
	notice      string
	noticeUntil time.Time

	cart    domain.Cart
	edit    domain.EditState
	editErr string

	customer       domain.Customer
	errors         domain.ValidationErrors
	checkout       domain.Request[domain.Confirmation]
	checkoutNotice string

	lookup    domain.Request[domain.Confirmation]
	lookupErr string
	lookupSeq uint64

	writes chan domain.StorageEntry
	closed bool
}

type Option func(*Session)

func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

func WithWriteQueueSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.writes = make(chan domain.StorageEntry, n)
		}
	}
}

func WithNoticeTTL(d time.Duration) Option {
	return func(s *Session) { s.noticeTTL = d }
}

func NewSession(api port.OrderAPI, storage port.ClientStorage, logger *zap.Logger, opts ...Option) *Session {
	s := &Session{
		api:       api,
		storage:   storage,
		logger:    logger,
		clock:     clock.New(),
		noticeTTL: defaultNoticeTTL,
		edit:      domain.NotEditing{},
		errors:    domain.ValidationErrors{},
		writes:    make(chan domain.StorageEntry, defaultWriteQueueSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Writes is the queue of client storage writes. The session never blocks on
// it; callers drain it with worker goroutines.
func (s *Session) Writes() <-chan domain.StorageEntry {
	return s.writes
}

// Close closes the write queue. Later writes are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.writes)
}

// enqueueLocked must be called with s.mu held.
func (s *Session) enqueueLocked(entry domain.StorageEntry) {
	if s.closed {
		return
	}
	select {
	case s.writes <- entry:
	default:
		s.logger.Warn("client storage queue full, dropping write", zap.String("key", entry.Key))
	}
}

func (s *Session) saveSelectionLocked() {
	raw, err := json.Marshal(s.selection.Items())
	if err != nil {
		s.logger.Warn("encode selection", zap.Error(err))
		return
	}
	s.enqueueLocked(domain.StorageEntry{Key: domain.SelectionKey, Value: string(raw)})
}
