package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"guild-wager-platform/internal/core/domain"
	"guild-wager-platform/internal/core/ports"
	"guild-wager-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WinnerPicker chooses the winning slot (1-based) for a completed event.
type WinnerPicker func(numSlots int) int

func randomWinnerPicker(numSlots int) int {
	return rand.IntN(numSlots) + 1
}

// SettlementService owns the terminal transitions of a wager event. Every
// trigger path converges here; the compare-and-set transition from active is
// what makes a second concurrent trigger a no-op. Individual transfer
// failures never abort the batch: payouts leave the bet committed for
// operator reconciliation, refunds are re-drivable through RetryRefunds.
type SettlementService struct {
	events       ports.EventRepository
	bets         ports.BetRepository
	guildWallets ports.GuildWalletRepository
	wallets      ports.WalletResolver
	ledger       ports.LedgerClient
	lock         ports.SettlementLock
	notifier     ports.Notifier
	sync         ports.SyncClient
	pickWinner   WinnerPicker
	log          zerolog.Logger
}

func NewSettlementService(
	events ports.EventRepository,
	bets ports.BetRepository,
	guildWallets ports.GuildWalletRepository,
	wallets ports.WalletResolver,
	ledger ports.LedgerClient,
	lock ports.SettlementLock,
	notifier ports.Notifier,
	sync ports.SyncClient,
	pickWinner WinnerPicker,
	log zerolog.Logger,
) *SettlementService {
	if pickWinner == nil {
		pickWinner = randomWinnerPicker
	}
	return &SettlementService{
		events:       events,
		bets:         bets,
		guildWallets: guildWallets,
		wallets:      wallets,
		ledger:       ledger,
		lock:         lock,
		notifier:     notifier,
		sync:         sync,
		pickWinner:   pickWinner,
		log:          log,
	}
}

// Settle drives an active event to its terminal state. Cancellation reasons
// refund committed entry fees; every other reason completes the event and
// pays out winners. Calling Settle on an already-settled event is a no-op.
func (s *SettlementService) Settle(ctx context.Context, eventID uuid.UUID, reason domain.SettleReason) error {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("reading event: %w", err))
	}
	if event == nil {
		return apperror.ErrEventNotFound()
	}
	if !event.IsActive() {
		s.log.Debug().
			Str("event_id", eventID.String()).
			Str("status", string(event.Status)).
			Msg("settlement trigger on settled event ignored")
		return nil
	}

	// Best-effort fast path. The status CAS below is the actual guard.
	acquired, err := s.lock.TryAcquire(ctx, eventID)
	if err != nil {
		s.log.Warn().Err(err).Str("event_id", eventID.String()).
			Msg("settlement lock unavailable, relying on status transition")
	} else if !acquired {
		s.log.Info().Str("event_id", eventID.String()).Msg("settlement already in flight")
		return nil
	} else {
		defer func() {
			if err := s.lock.Release(context.WithoutCancel(ctx), eventID); err != nil {
				s.log.Warn().Err(err).Str("event_id", eventID.String()).Msg("releasing settlement lock failed")
			}
		}()
	}

	if reason == domain.SettleReasonCancelled {
		return s.cancel(ctx, event, reason)
	}
	return s.complete(ctx, event, reason)
}

// cancel transitions the event to cancelled and refunds every committed
// entry fee from the treasury.
func (s *SettlementService) cancel(ctx context.Context, event *domain.WagerEvent, reason domain.SettleReason) error {
	transitioned, err := s.events.TransitionFromActive(ctx, event.ID, domain.EventStatusCancelled, nil)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("cancelling event: %w", err))
	}
	if !transitioned {
		s.log.Info().Str("event_id", event.ID.String()).Msg("event already settled, cancel skipped")
		return nil
	}
	event.Status = domain.EventStatusCancelled

	refunded, failed := s.refundCommitted(ctx, event)
	s.log.Info().
		Str("event_id", event.ID.String()).
		Str("reason", string(reason)).
		Int("refunded", refunded).
		Int("failed", failed).
		Msg("event cancelled")

	s.finish(ctx, event, reason)
	return nil
}

// complete picks a winner, transitions the event, and pays out the winning
// bets. A transfer failure leaves that bet committed and moves on.
func (s *SettlementService) complete(ctx context.Context, event *domain.WagerEvent, reason domain.SettleReason) error {
	winningSlot := s.pickWinner(event.NumSlots)
	transitioned, err := s.events.TransitionFromActive(ctx, event.ID, domain.EventStatusCompleted, &winningSlot)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("completing event: %w", err))
	}
	if !transitioned {
		s.log.Info().Str("event_id", event.ID.String()).Msg("event already settled, completion skipped")
		return nil
	}
	event.Status = domain.EventStatusCompleted
	event.WinningSlot = &winningSlot

	bets, err := s.bets.ListByEvent(ctx, event.ID)
	if err != nil {
		// Terminal status is already recorded; payouts need an operator now.
		s.log.Error().Err(err).Str("event_id", event.ID.String()).
			Msg("listing bets for payout failed after completion")
		s.finish(ctx, event, reason)
		return nil
	}

	winners, pool := s.selectWinners(event, bets, winningSlot)
	paid, failed, paidTotal := s.payout(ctx, event, winners, pool)

	if paidTotal > 0 && event.Mode == domain.WagerModeHouse {
		if err := s.guildWallets.AddBudgetSpent(ctx, event.GuildID, paidTotal); err != nil {
			s.log.Warn().Err(err).Str("guild_id", event.GuildID).Msg("recording budget spend failed")
		}
	}

	s.log.Info().
		Str("event_id", event.ID.String()).
		Str("reason", string(reason)).
		Int("winning_slot", winningSlot).
		Int("winners", len(winners)).
		Int("paid", paid).
		Int("failed", failed).
		Float64("pool", pool).
		Msg("event completed")

	s.finish(ctx, event, reason)
	return nil
}

// selectWinners returns the bets eligible for a payout and the prize pool.
// House mode pays the configured prize; pot mode pays the escrowed total
// less the rake, and only escrowed bets participate.
func (s *SettlementService) selectWinners(event *domain.WagerEvent, bets []domain.Bet, winningSlot int) ([]domain.Bet, float64) {
	var winners []domain.Bet
	pot := 0.0
	for _, bet := range bets {
		if bet.IsEscrowed() {
			pot += bet.Amount
		}
		if bet.ChosenSlot != winningSlot {
			continue
		}
		if event.Mode == domain.WagerModePot && !bet.IsEscrowed() {
			continue
		}
		winners = append(winners, bet)
	}

	if event.Mode == domain.WagerModeHouse {
		return winners, event.PrizeAmount
	}
	return winners, pot * (1 - domain.PotRake)
}

// payout splits the pool evenly among winners and transfers each share from
// the treasury wallet.
func (s *SettlementService) payout(ctx context.Context, event *domain.WagerEvent, winners []domain.Bet, pool float64) (paid, failed int, paidTotal float64) {
	if len(winners) == 0 || pool <= 0 {
		return 0, 0, 0
	}

	treasury := s.treasuryWithSecret(ctx, event.GuildID)
	if treasury == nil {
		return 0, len(winners), 0
	}

	share := pool / float64(len(winners))
	for _, winner := range winners {
		address := s.payoutAddress(ctx, winner)
		if address == "" {
			failed++
			s.log.Error().
				Str("event_id", event.ID.String()).
				Str("user_id", winner.UserID).
				Msg("winner has no payout address, skipping")
			continue
		}

		signature, err := s.ledger.SendFunds(ctx, treasury.Secret.Payload, address, share)
		if err != nil {
			failed++
			s.log.Error().Err(err).
				Str("event_id", event.ID.String()).
				Str("user_id", winner.UserID).
				Float64("amount", share).
				Msg("payout transfer failed")
			continue
		}
		if err := s.bets.UpdatePaymentStatus(ctx, winner.ID, domain.PaymentStatusPaid, signature); err != nil {
			s.log.Error().Err(err).
				Str("bet_id", winner.ID.String()).
				Str("signature", signature).
				Msg("recording payout failed after transfer")
		}
		paid++
		paidTotal += share
	}
	return paid, failed, paidTotal
}

// refundCommitted re-drives an entry-fee refund for every still-committed bet.
func (s *SettlementService) refundCommitted(ctx context.Context, event *domain.WagerEvent) (refunded, failed int) {
	bets, err := s.bets.ListByEvent(ctx, event.ID)
	if err != nil {
		s.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("listing bets for refund failed")
		return 0, 0
	}

	var committed []domain.Bet
	for _, bet := range bets {
		if bet.IsEscrowed() {
			committed = append(committed, bet)
		}
	}
	if len(committed) == 0 {
		return 0, 0
	}

	treasury := s.treasuryWithSecret(ctx, event.GuildID)
	if treasury == nil {
		return 0, len(committed)
	}

	for _, bet := range committed {
		if bet.WalletAddress == "" {
			failed++
			s.log.Error().Str("bet_id", bet.ID.String()).Msg("committed bet has no wallet address, cannot refund")
			continue
		}
		signature, err := s.ledger.SendFunds(ctx, treasury.Secret.Payload, bet.WalletAddress, bet.Amount)
		if err != nil {
			failed++
			s.log.Error().Err(err).
				Str("bet_id", bet.ID.String()).
				Str("user_id", bet.UserID).
				Float64("amount", bet.Amount).
				Msg("refund transfer failed, bet stays committed")
			continue
		}
		if err := s.bets.UpdatePaymentStatus(ctx, bet.ID, domain.PaymentStatusRefunded, signature); err != nil {
			s.log.Error().Err(err).
				Str("bet_id", bet.ID.String()).
				Str("signature", signature).
				Msg("recording refund failed after transfer")
			continue
		}
		refunded++
	}
	return refunded, failed
}

// RetryRefunds re-drives refunds for a cancelled event's still-committed
// bets. Returns how many were refunded this pass.
func (s *SettlementService) RetryRefunds(ctx context.Context, eventID uuid.UUID) (int, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("reading event: %w", err))
	}
	if event == nil {
		return 0, apperror.ErrEventNotFound()
	}
	if event.Status != domain.EventStatusCancelled {
		return 0, apperror.Validation("refunds can only be retried for a cancelled event")
	}

	refunded, failed := s.refundCommitted(ctx, event)
	s.log.Info().
		Str("event_id", eventID.String()).
		Int("refunded", refunded).
		Int("failed", failed).
		Msg("refund retry finished")
	return refunded, nil
}

// treasuryWithSecret resolves the guild treasury and requires a usable
// secret; anything less is logged and returns nil.
func (s *SettlementService) treasuryWithSecret(ctx context.Context, guildID string) *domain.GuildWallet {
	treasury, err := s.wallets.Resolve(ctx, guildID)
	if err != nil {
		s.log.Error().Err(err).Str("guild_id", guildID).Msg("resolving treasury for transfers failed")
		return nil
	}
	if treasury == nil {
		s.log.Error().Str("guild_id", guildID).Msg("no treasury wallet connected, transfers skipped")
		return nil
	}
	if !treasury.HasSecret() {
		s.log.Error().Str("guild_id", guildID).Msg("treasury wallet has no usable secret, transfers skipped")
		return nil
	}
	return treasury
}

// payoutAddress prefers the address recorded at escrow time and falls back
// to the user's currently connected wallet.
func (s *SettlementService) payoutAddress(ctx context.Context, bet domain.Bet) string {
	if bet.WalletAddress != "" {
		return bet.WalletAddress
	}
	wallet, err := s.wallets.ResolveUser(ctx, bet.UserID)
	if err != nil || wallet == nil {
		return ""
	}
	return wallet.Address
}

// finish emits the settlement notification and pushes the terminal state to
// the peer process, both best-effort.
func (s *SettlementService) finish(ctx context.Context, event *domain.WagerEvent, reason domain.SettleReason) {
	if err := s.notifier.EventSettled(ctx, event, reason); err != nil {
		s.log.Warn().Err(err).Str("event_id", event.ID.String()).Msg("settlement notification failed")
	}
	s.sync.PushEventUpdate(ctx, ports.EventSync{
		EventID:     event.ID,
		Action:      ports.EventSyncStatusUpdate,
		Event:       event,
		Status:      event.Status,
		WinningSlot: event.WinningSlot,
	})
}
