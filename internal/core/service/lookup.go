package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rl1809/pizzeria/internal/core/domain"
)

// Lookup fetches a placed order by its literal ID. Any failure clears the
// previously shown order; not-found and transport errors share one message
// but stay distinguishable with errors.Is. Only the most recent lookup
// updates the view; a response arriving after a newer request is returned to
// its caller and otherwise dropped.
func (s *Session) Lookup(ctx context.Context, orderID string) (domain.Confirmation, error) {
	s.mu.Lock()
	s.lookupSeq++
	seq := s.lookupSeq
	s.lookup.Start()
	s.lookupErr = ""
	s.mu.Unlock()

	conf, err := s.api.GetOrder(ctx, orderID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.lookupSeq {
		s.logger.Debug("dropping stale lookup", zap.String("order_id", orderID))
		if err != nil {
			return domain.Confirmation{}, fmt.Errorf("lookup order %q: %w", orderID, err)
		}
		return *conf, nil
	}

	if err != nil {
		s.lookup.Fail(err)
		s.lookupErr = domain.MsgOrderNotFound
		if errors.Is(err, domain.ErrOrderNotFound) {
			s.logger.Info("order not found", zap.String("order_id", orderID))
		} else {
			s.logger.Error("lookup order failed", zap.String("order_id", orderID), zap.Error(err))
		}
		return domain.Confirmation{}, fmt.Errorf("lookup order %q: %w", orderID, err)
	}

	s.lookup.Succeed(*conf)
	s.lookupErr = ""
	return *conf, nil
}
