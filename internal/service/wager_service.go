package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"guild-wager-platform/internal/core/domain"
	"guild-wager-platform/internal/core/ports"
	"guild-wager-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CreateEventInput carries a host's event creation request.
type CreateEventInput struct {
	GuildID          string
	ChannelID        string
	Title            string
	Mode             domain.WagerMode
	PrizeAmount      float64
	Currency         string
	EntryFee         float64
	MinParticipants  int
	MaxParticipants  int
	NumSlots         int
	Duration         time.Duration
	CreatedBy        string
	QualificationURL string
}

// WagerService drives the event lifecycle: creation, the select/confirm
// betting two-step, the escrow path, and settlement triggers. Terminal
// transitions themselves belong to the settlement processor.
type WagerService struct {
	events     ports.EventRepository
	bets       ports.BetRepository
	quals      ports.QualificationRepository
	wallets    ports.WalletResolver
	ledger     ports.LedgerClient
	selections ports.SelectionStore
	settler    ports.SettlementTrigger
	notifier   ports.Notifier
	sync       ports.SyncClient
	transactor ports.DBTransactor
	feeBuffer  float64
	log        zerolog.Logger
}

func NewWagerService(
	events ports.EventRepository,
	bets ports.BetRepository,
	quals ports.QualificationRepository,
	wallets ports.WalletResolver,
	ledger ports.LedgerClient,
	selections ports.SelectionStore,
	settler ports.SettlementTrigger,
	notifier ports.Notifier,
	sync ports.SyncClient,
	transactor ports.DBTransactor,
	feeBuffer float64,
	log zerolog.Logger,
) *WagerService {
	return &WagerService{
		events:     events,
		bets:       bets,
		quals:      quals,
		wallets:    wallets,
		ledger:     ledger,
		selections: selections,
		settler:    settler,
		notifier:   notifier,
		sync:       sync,
		transactor: transactor,
		feeBuffer:  feeBuffer,
		log:        log,
	}
}

// CreateEvent validates and persists a new active event.
func (s *WagerService) CreateEvent(ctx context.Context, in CreateEventInput) (*domain.WagerEvent, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperror.Validation("title is required")
	}
	if in.NumSlots < 2 {
		return nil, apperror.Validation("an event needs at least two outcome slots")
	}
	switch in.Mode {
	case domain.WagerModeHouse:
		if in.PrizeAmount <= 0 {
			return nil, apperror.Validation("house mode requires a positive prize amount")
		}
	case domain.WagerModePot:
		if in.EntryFee < 0 {
			return nil, apperror.Validation("entry fee cannot be negative")
		}
	default:
		return nil, apperror.Validation("mode must be house or pot")
	}
	if in.EntryFee < 0 || in.PrizeAmount < 0 {
		return nil, apperror.Validation("amounts cannot be negative")
	}
	if in.MaxParticipants > 0 && in.MaxParticipants < in.MinParticipants {
		return nil, apperror.Validation("max participants cannot be below min participants")
	}
	if in.Duration <= 0 {
		return nil, apperror.Validation("event duration must be positive")
	}

	now := time.Now().UTC()
	event := &domain.WagerEvent{
		ID:               uuid.New(),
		GuildID:          in.GuildID,
		ChannelID:        in.ChannelID,
		Title:            strings.TrimSpace(in.Title),
		Mode:             in.Mode,
		PrizeAmount:      in.PrizeAmount,
		Currency:         in.Currency,
		EntryFee:         in.EntryFee,
		MinParticipants:  in.MinParticipants,
		MaxParticipants:  in.MaxParticipants,
		NumSlots:         in.NumSlots,
		Status:           domain.EventStatusActive,
		EndsAt:           now.Add(in.Duration),
		CreatedBy:        in.CreatedBy,
		QualificationURL: in.QualificationURL,
		CreatedAt:        now,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("creating event: %w", err))
	}

	s.log.Info().
		Str("event_id", event.ID.String()).
		Str("guild_id", event.GuildID).
		Str("mode", string(event.Mode)).
		Time("ends_at", event.EndsAt).
		Msg("wager event created")

	s.sync.PushEventUpdate(ctx, ports.EventSync{
		EventID: event.ID,
		Action:  ports.EventSyncStatusUpdate,
		Event:   event,
		Status:  event.Status,
	})
	return event, nil
}

// GetEvent returns an event by id, or ErrEventNotFound.
func (s *WagerService) GetEvent(ctx context.Context, id uuid.UUID) (*domain.WagerEvent, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("reading event: %w", err))
	}
	if event == nil {
		return nil, apperror.ErrEventNotFound()
	}
	return event, nil
}

// EventDetail returns an event with its per-slot tallies.
func (s *WagerService) EventDetail(ctx context.Context, id uuid.UUID) (*domain.WagerEvent, []domain.SlotTally, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	tallies, err := s.bets.SlotTallies(ctx, id)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("reading slot tallies: %w", err))
	}
	return event, tallies, nil
}

// ListBets returns every bet on an event, newest last.
func (s *WagerService) ListBets(ctx context.Context, eventID uuid.UUID) ([]domain.Bet, error) {
	bets, err := s.bets.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("listing bets: %w", err))
	}
	return bets, nil
}

// AttachMessage records the chat message id rendered for an event.
func (s *WagerService) AttachMessage(ctx context.Context, id uuid.UUID, messageID string) error {
	if err := s.events.SetMessageID(ctx, id, messageID); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("recording message id: %w", err))
	}
	return nil
}

// SelectSlot opens a pending selection session for a user. The bet is not
// committed until ConfirmBet.
func (s *WagerService) SelectSlot(ctx context.Context, eventID uuid.UUID, userID string, slot int) error {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.checkOpen(event, slot); err != nil {
		return err
	}
	if err := s.selections.Put(ctx, eventID, userID, slot); err != nil {
		return apperror.InternalError(fmt.Errorf("storing slot selection: %w", err))
	}
	return nil
}

// ConfirmBet places the bet for the user's pending selection and clears the
// session on success.
func (s *WagerService) ConfirmBet(ctx context.Context, eventID uuid.UUID, userID string) (*domain.Bet, error) {
	slot, ok, err := s.selections.Get(ctx, eventID, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reading slot selection: %w", err))
	}
	if !ok {
		return nil, apperror.ErrNoSelection()
	}
	bet, err := s.PlaceBet(ctx, eventID, userID, slot)
	if err != nil {
		return nil, err
	}
	if err := s.selections.Delete(ctx, eventID, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("clearing slot selection failed")
	}
	return bet, nil
}

// PlaceBet commits a user to an outcome slot. For escrow events the entry fee
// is transferred to the treasury before any row is written; a failed transfer
// leaves no bet and the user may retry. Duplicate submissions return the
// existing bet.
func (s *WagerService) PlaceBet(ctx context.Context, eventID uuid.UUID, userID string, slot int) (*domain.Bet, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.checkOpen(event, slot); err != nil {
		return nil, err
	}

	// Fast path for double submissions. The unique constraint on
	// (event_id, user_id) is the actual guard.
	existing, err := s.bets.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("checking existing bet: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	if event.RequiresQualification() {
		qual, err := s.quals.GetByEventAndUser(ctx, eventID, userID)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("checking qualification: %w", err))
		}
		if qual == nil || !qual.Unlocks() {
			return nil, apperror.ErrQualificationRequired()
		}
	}

	bet := &domain.Bet{
		ID:            uuid.New(),
		EventID:       eventID,
		UserID:        userID,
		ChosenSlot:    slot,
		PaymentStatus: domain.PaymentStatusNone,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	if event.RequiresEscrow() {
		if err := s.escrowEntryFee(ctx, event, userID, bet); err != nil {
			return nil, err
		}
	}

	count, err := s.insertBet(ctx, event, bet)
	if errors.Is(err, domain.ErrDuplicateBet) {
		// A racing request from the same user won the constraint. If our
		// escrow payment already went through, funds are double-held and
		// need manual reconciliation.
		if bet.IsEscrowed() {
			s.log.Error().
				Str("event_id", eventID.String()).
				Str("user_id", userID).
				Str("signature", bet.EntryTxSignature).
				Float64("amount", bet.Amount).
				Msg("duplicate bet after escrow transfer, operator reconciliation required")
		}
		winner, lookupErr := s.bets.GetByEventAndUser(ctx, eventID, userID)
		if lookupErr != nil || winner == nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("reading winning duplicate bet: %w", lookupErr))
		}
		return winner, nil
	}
	if err != nil {
		// Covers the locked re-check too: an event that settled or filled
		// while the escrow transfer was in flight rejects the bet here, and
		// the already-transferred entry fee needs an operator.
		if bet.IsEscrowed() {
			s.log.Error().
				Str("event_id", eventID.String()).
				Str("user_id", userID).
				Str("signature", bet.EntryTxSignature).
				Float64("amount", bet.Amount).
				Msg("bet rejected after escrow transfer, operator reconciliation required")
		}
		return nil, err
	}

	s.afterBet(ctx, event, bet, count)
	return bet, nil
}

// checkOpen verifies the event accepts a bet on the given slot right now.
func (s *WagerService) checkOpen(event *domain.WagerEvent, slot int) error {
	if !event.IsActive() {
		return apperror.ErrEventNotActive()
	}
	if time.Now().After(event.EndsAt) {
		return apperror.ErrBettingClosed()
	}
	if !event.ValidSlot(slot) {
		return apperror.ErrInvalidSlot()
	}
	if event.IsFull() {
		return apperror.ErrEventFull()
	}
	return nil
}

// escrowEntryFee moves the entry fee from the user's wallet to the guild
// treasury and stamps the bet as committed. No rows exist yet at this point.
func (s *WagerService) escrowEntryFee(ctx context.Context, event *domain.WagerEvent, userID string, bet *domain.Bet) error {
	treasury, err := s.wallets.Resolve(ctx, event.GuildID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("resolving treasury wallet: %w", err))
	}
	if treasury == nil {
		return apperror.ErrWalletNotConnected("guild")
	}

	userWallet, err := s.wallets.ResolveUser(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("resolving user wallet: %w", err))
	}
	if userWallet == nil {
		return apperror.ErrWalletNotConnected("user")
	}
	if !userWallet.HasSecret() {
		return apperror.ErrMissingSecret()
	}

	balance, err := s.ledger.GetBalance(ctx, userWallet.Address)
	if err != nil {
		return apperror.ErrPaymentFailed(fmt.Errorf("checking balance: %w", err))
	}
	if balance < event.EntryFee+s.feeBuffer {
		return apperror.ErrInsufficientFunds()
	}

	signature, err := s.ledger.SendFunds(ctx, userWallet.Secret.Payload, treasury.Address, event.EntryFee)
	if err != nil {
		return apperror.ErrPaymentFailed(fmt.Errorf("escrow transfer: %w", err))
	}

	bet.Amount = event.EntryFee
	bet.PaymentStatus = domain.PaymentStatusCommitted
	bet.WalletAddress = userWallet.Address
	bet.EntryTxSignature = signature

	s.log.Info().
		Str("event_id", event.ID.String()).
		Str("user_id", userID).
		Float64("amount", event.EntryFee).
		Str("signature", signature).
		Msg("entry fee escrowed")
	return nil
}

// insertBet writes the bet and bumps the participant count in one
// transaction, returning the new count. The event is re-read under a
// pessimistic lock first: an escrow transfer takes long enough for the event
// to settle or fill in the meantime, and the initial read is stale by then.
func (s *WagerService) insertBet(ctx context.Context, event *domain.WagerEvent, bet *domain.Bet) (int, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("beginning transaction: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	current, err := s.events.GetByIDForUpdate(ctx, dbTx, event.ID)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("locking event: %w", err))
	}
	if current == nil {
		return 0, apperror.ErrEventNotFound()
	}
	if err := s.checkOpen(current, bet.ChosenSlot); err != nil {
		return 0, err
	}

	if err := s.bets.Create(ctx, dbTx, bet); err != nil {
		if errors.Is(err, domain.ErrDuplicateBet) {
			return 0, err
		}
		return 0, apperror.ErrDatabaseError(fmt.Errorf("creating bet: %w", err))
	}

	count, err := s.events.IncrementParticipants(ctx, dbTx, event.ID)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("incrementing participants: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("committing bet: %w", err))
	}
	return count, nil
}

// afterBet runs the post-commit side effects: milestone notification, sync
// push, and the full-house settlement trigger.
func (s *WagerService) afterBet(ctx context.Context, event *domain.WagerEvent, bet *domain.Bet, count int) {
	event.CurrentParticipants = count

	if event.MinParticipants > 0 && count == event.MinParticipants {
		if err := s.notifier.MilestoneReached(ctx, event); err != nil {
			s.log.Warn().Err(err).Str("event_id", event.ID.String()).Msg("milestone notification failed")
		}
	}

	s.sync.PushEventUpdate(ctx, ports.EventSync{
		EventID:   event.ID,
		Action:    ports.EventSyncBet,
		Event:     event,
		UserID:    bet.UserID,
		Slot:      bet.ChosenSlot,
		Amount:    bet.Amount,
		Signature: bet.EntryTxSignature,
	})

	if event.MaxParticipants > 0 && count >= event.MaxParticipants {
		if err := s.settler.Settle(ctx, event.ID, domain.SettleReasonFull); err != nil {
			s.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("full-house settlement failed")
		}
	}
}

// SubmitQualification records a user's proof submission as pending review.
func (s *WagerService) SubmitQualification(ctx context.Context, eventID uuid.UUID, userID, username, screenshotURL string) (*domain.Qualification, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.RequiresQualification() {
		return nil, apperror.Validation("event has no qualification requirement")
	}
	qual := &domain.Qualification{
		ID:            uuid.New(),
		EventID:       eventID,
		UserID:        userID,
		Username:      username,
		ScreenshotURL: screenshotURL,
		Status:        domain.QualificationStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.quals.Upsert(ctx, qual); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("saving qualification: %w", err))
	}
	s.sync.PushEventUpdate(ctx, ports.EventSync{
		EventID: eventID,
		Action:  ports.EventSyncQualify,
		UserID:  userID,
	})
	return qual, nil
}

// ListQualifications returns every submission for an event.
func (s *WagerService) ListQualifications(ctx context.Context, eventID uuid.UUID) ([]domain.Qualification, error) {
	quals, err := s.quals.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("listing qualifications: %w", err))
	}
	return quals, nil
}

// ReviewQualification flips a submission to approved or rejected.
func (s *WagerService) ReviewQualification(ctx context.Context, id uuid.UUID, approve bool) error {
	status := domain.QualificationStatusRejected
	if approve {
		status = domain.QualificationStatusApproved
	}
	if err := s.quals.UpdateStatus(ctx, id, status); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("updating qualification: %w", err))
	}
	return nil
}

// CancelEvent routes an administrative cancellation through the settlement
// processor so refunds and the terminal transition share one path.
func (s *WagerService) CancelEvent(ctx context.Context, eventID uuid.UUID) error {
	return s.settler.Settle(ctx, eventID, domain.SettleReasonCancelled)
}
