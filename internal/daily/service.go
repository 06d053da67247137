// internal/daily/service.go
//
// Package daily exposes the card-of-the-day operation: one card per
// (date, gameType), shared by every player, drawn from the rotation bag
// on first request and replayed from the selection record afterwards.
package daily

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/royalehaus/royalehaus/internal/metrics"
	"github.com/royalehaus/royalehaus/internal/models"
)

// ErrBadInput wraps validation failures so the HTTP layer can map them
// to a 400 instead of a 500.
var ErrBadInput = errors.New("daily: invalid input")

// Store is the persistence behind daily selections. DrawSelection must
// be atomic: when two first-of-the-day calls race, exactly one draw
// happens and both callers get the same card id.
type Store interface {
	GetSelection(ctx context.Context, day, gameType string) (int64, bool, error)
	DrawSelection(ctx context.Context, day, gameType string) (int64, error)
}

// Cache is an optional read-through layer in front of the store.
// Implementations are best-effort; misses and write failures are
// invisible to callers.
type Cache interface {
	GetSelection(ctx context.Context, day, gameType string) (int64, bool)
	SetSelection(ctx context.Context, day, gameType string, cardID int64)
}

// Service answers GetDailyCard. It holds no state of its own; all state
// lives in the store.
type Service struct {
	store Store
	cache Cache // may be nil
}

func NewService(store Store, cache Cache) *Service {
	return &Service{store: store, cache: cache}
}

// Today returns the current UTC date key.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// GetDailyCard returns the card of the day for (date, gameType).
// Idempotent: any number of calls on the same pair return the same id.
func (s *Service) GetDailyCard(ctx context.Context, date, gameType string) (int64, error) {
	if !models.ValidGameType(gameType) {
		return 0, fmt.Errorf("%w: unknown game type %q", ErrBadInput, gameType)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return 0, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrBadInput, date)
	}

	if s.cache != nil {
		if id, ok := s.cache.GetSelection(ctx, date, gameType); ok {
			return id, nil
		}
	}

	id, found, err := s.store.GetSelection(ctx, date, gameType)
	if err != nil {
		return 0, err
	}
	if !found {
		id, err = s.store.DrawSelection(ctx, date, gameType)
		if err != nil {
			return 0, err
		}
		metrics.DailyDraws.WithLabelValues(gameType).Inc()
	}

	if s.cache != nil {
		s.cache.SetSelection(ctx, date, gameType, id)
	}
	return id, nil
}
