package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/StayEscrow/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type fundsReleaser interface {
	ReleaseDue(ctx context.Context) ([]*domain.ReleaseResult, error)
}

// expiryPurger drops short-lived challenges (nonces, payment intents).
type expiryPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type Purger struct {
	Name string
	expiryPurger
}

func NewPurger(name string, p expiryPurger) Purger {
	return Purger{Name: name, expiryPurger: p}
}

type Scheduler struct {
	releaser fundsReleaser
	purgers  []Purger
	interval time.Duration
	logger   logger.Logger
}

func New(
	releaser fundsReleaser,
	interval time.Duration,
	logger logger.Logger,
	purgers ...Purger,
) *Scheduler {
	return &Scheduler{
		releaser: releaser,
		purgers:  purgers,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	s.release(ctx)

	for _, p := range s.purgers {
		n, err := p.PurgeExpired(ctx)
		if err != nil {
			s.logger.Error("failed to purge expired records",
				logger.String("kind", p.Name),
				logger.String("error", err.Error()),
			)
			continue
		}
		if n > 0 {
			s.logger.Debug("purged expired records",
				logger.String("kind", p.Name),
				logger.Int64("count", n),
			)
		}
	}
}

func (s *Scheduler) release(ctx context.Context) {
	released, err := s.releaser.ReleaseDue(ctx)
	if err != nil {
		s.logger.Error("failed to release due bookings",
			logger.String("error", err.Error()),
		)
	}

	for _, r := range released {
		s.logger.Info("funds released by sweeper",
			logger.Int64("booking_id", int64(r.BookingID)),
			logger.String("tx_hash", r.TxHash.Hex()),
		)
	}
}
