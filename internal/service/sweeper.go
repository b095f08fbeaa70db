package service

import (
	"context"
	"time"

	"guild-wager-platform/internal/core/domain"
	"guild-wager-platform/internal/core/ports"

	"github.com/rs/zerolog"
)

// Sweeper periodically settles active events whose deadline has passed. It
// shares the settlement entry point with the capacity trigger, so a sweep
// racing a full-house callback is harmless.
type Sweeper struct {
	events   ports.EventRepository
	settler  ports.SettlementTrigger
	interval time.Duration
	batch    int
	log      zerolog.Logger
}

func NewSweeper(events ports.EventRepository, settler ports.SettlementTrigger, interval time.Duration, batch int, log zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if batch <= 0 {
		batch = 25
	}
	return &Sweeper{
		events:   events,
		settler:  settler,
		interval: interval,
		batch:    batch,
		log:      log,
	}
}

// Run blocks until ctx is cancelled, sweeping on every tick.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("settlement sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("settlement sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep settles one batch of expired events and returns how many were
// triggered.
func (s *Sweeper) Sweep(ctx context.Context) int {
	expired, err := s.events.ListExpiredActive(ctx, time.Now().UTC(), s.batch)
	if err != nil {
		s.log.Error().Err(err).Msg("scanning expired events failed")
		return 0
	}

	triggered := 0
	for _, event := range expired {
		if err := s.settler.Settle(ctx, event.ID, domain.SettleReasonTimeout); err != nil {
			s.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("timeout settlement failed")
			continue
		}
		triggered++
	}
	if triggered > 0 {
		s.log.Info().Int("settled", triggered).Msg("expired events settled")
	}
	return triggered
}
