package handler

import (
	"context"
	"errors"
	"time"

	"guild-wager-platform/internal/core/domain"
	"guild-wager-platform/internal/core/ports"
	"guild-wager-platform/pkg/apperror"
	"guild-wager-platform/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SyncHandler serves the internal process-to-process surface on the ledger
// service: wallet pull/push and event state mirroring. Responses here are raw
// JSON, not the public envelope — the peer is a machine, and the wallet
// payload shape is part of the sync protocol.
type SyncHandler struct {
	guildWallets ports.GuildWalletRepository
	userWallets  ports.UserWalletRepository
	events       ports.EventRepository
	bets         ports.BetRepository
	quals        ports.QualificationRepository
	transactor   ports.DBTransactor
	cipher       ports.SecretCipher
	log          zerolog.Logger
}

// NewSyncHandler creates a SyncHandler.
func NewSyncHandler(
	guildWallets ports.GuildWalletRepository,
	userWallets ports.UserWalletRepository,
	events ports.EventRepository,
	bets ports.BetRepository,
	quals ports.QualificationRepository,
	transactor ports.DBTransactor,
	cipher ports.SecretCipher,
	log zerolog.Logger,
) *SyncHandler {
	return &SyncHandler{
		guildWallets: guildWallets,
		userWallets:  userWallets,
		events:       events,
		bets:         bets,
		quals:        quals,
		transactor:   transactor,
		cipher:       cipher,
		log:          log,
	}
}

// GetGuildWallet handles GET /internal/guild-wallet/:guildId.
// A reachable "no wallet" is an explicit {"wallet": null}, which the agent
// treats as a disconnect signal.
func (h *SyncHandler) GetGuildWallet(c *gin.Context) {
	wallet, err := h.guildWallets.GetByGuildID(c.Request.Context(), c.Param("guildId"))
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if wallet == nil {
		c.JSON(200, gin.H{"wallet": nil})
		return
	}

	c.JSON(200, gin.H{"wallet": ports.RemoteWallet{
		OwnerID:        wallet.GuildID,
		Address:        wallet.Address,
		Secret:         h.transitWire(wallet.Secret, wallet.GuildID),
		Label:          wallet.Label,
		Network:        string(wallet.Network),
		ConfiguredBy:   wallet.ConfiguredBy,
		BudgetTotal:    wallet.BudgetTotal,
		BudgetSpent:    wallet.BudgetSpent,
		BudgetCurrency: wallet.BudgetCurrency,
	}})
}

// GetUserWallet handles GET /internal/user-wallet/:userId.
func (h *SyncHandler) GetUserWallet(c *gin.Context) {
	wallet, err := h.userWallets.GetByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if wallet == nil {
		c.JSON(200, gin.H{"wallet": nil})
		return
	}

	c.JSON(200, gin.H{"wallet": ports.RemoteWallet{
		OwnerID: wallet.UserID,
		Address: wallet.Address,
		Secret:  h.transitWire(wallet.Secret, wallet.UserID),
		Network: string(wallet.Network),
	}})
}

// SyncGuildWallet handles POST /internal/guild-wallet-sync. The secret
// arrives transit-wrapped; it is unwrapped and re-encrypted at rest before
// hitting storage. An empty address is a disconnect and deletes the row.
func (h *SyncHandler) SyncGuildWallet(c *gin.Context) {
	var req ports.RemoteWallet
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.OwnerID == "" {
		response.Error(c, apperror.Validation("owner_id is required"))
		return
	}

	if req.Address == "" {
		if err := h.guildWallets.Delete(c.Request.Context(), req.OwnerID); err != nil {
			response.Error(c, apperror.ErrDatabaseError(err))
			return
		}
		h.log.Info().Str("guild_id", req.OwnerID).Msg("guild wallet disconnected via sync")
		c.JSON(200, gin.H{"ok": true})
		return
	}

	wallet := &domain.GuildWallet{
		GuildID:        req.OwnerID,
		Address:        req.Address,
		Label:          req.Label,
		Network:        networkOrDefault(req.Network),
		ConfiguredBy:   req.ConfiguredBy,
		BudgetTotal:    req.BudgetTotal,
		BudgetSpent:    req.BudgetSpent,
		BudgetCurrency: req.BudgetCurrency,
		UpdatedAt:      time.Now().UTC(),
	}
	if err := h.guildWallets.Upsert(c.Request.Context(), wallet, h.atRestWire(req.Secret, req.OwnerID)); err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	c.JSON(200, gin.H{"ok": true})
}

// GetEvent handles GET /internal/wager-event/:id, serving the event with its
// per-slot tallies for rendering on the peer side.
func (h *SyncHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid event id"))
		return
	}

	event, err := h.events.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if event == nil {
		response.Error(c, apperror.ErrEventNotFound())
		return
	}

	tallies, err := h.bets.SlotTallies(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	c.JSON(200, gin.H{"event": event, "slots": tallies})
}

// SyncEvent handles POST /internal/wager-event-sync. The agent's database is
// the system of record for events; this side keeps a mirror current so
// GET /internal/wager-event/:id can serve historical state without reaching
// back. Qualify submissions are persisted as pending reviews.
func (h *SyncHandler) SyncEvent(c *gin.Context) {
	var update ports.EventSync
	if err := c.ShouldBindJSON(&update); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if update.EventID == uuid.Nil {
		response.Error(c, apperror.Validation("event_id is required"))
		return
	}

	switch update.Action {
	case ports.EventSyncQualify:
		q := &domain.Qualification{
			ID:            uuid.New(),
			EventID:       update.EventID,
			UserID:        update.UserID,
			Username:      update.Username,
			ScreenshotURL: update.ScreenshotURL,
			Status:        domain.QualificationStatusPending,
			CreatedAt:     time.Now().UTC(),
		}
		if err := h.quals.Upsert(c.Request.Context(), q); err != nil {
			response.Error(c, apperror.ErrDatabaseError(err))
			return
		}
	case ports.EventSyncBet:
		if err := h.mirrorBet(c.Request.Context(), update); err != nil {
			response.Error(c, apperror.ErrDatabaseError(err))
			return
		}
	case ports.EventSyncStatusUpdate:
		if err := h.mirrorStatus(c.Request.Context(), update); err != nil {
			response.Error(c, apperror.ErrDatabaseError(err))
			return
		}
	case ports.EventSyncJoin:
		// Slot selections are ephemeral agent state; acknowledged only.
		h.log.Info().
			Str("event_id", update.EventID.String()).
			Str("user_id", update.UserID).
			Int("slot", update.Slot).
			Msg("join sync received")
	default:
		response.Error(c, apperror.Validation("unknown sync action"))
		return
	}

	c.JSON(200, gin.H{"ok": true})
}

// mirrorEvent returns the local mirror row for the pushed event, creating it
// from the carried snapshot on first sight. The bool reports whether the row
// was just created (a fresh snapshot already embeds current counts).
func (h *SyncHandler) mirrorEvent(ctx context.Context, update ports.EventSync) (*domain.WagerEvent, bool, error) {
	event, err := h.events.GetByID(ctx, update.EventID)
	if err != nil {
		return nil, false, err
	}
	if event != nil {
		return event, false, nil
	}
	if update.Event == nil {
		h.log.Warn().
			Str("event_id", update.EventID.String()).
			Str("action", string(update.Action)).
			Msg("sync for unknown event carried no snapshot, dropped")
		return nil, false, nil
	}
	if err := h.events.Create(ctx, update.Event); err != nil {
		return nil, false, err
	}
	h.log.Info().
		Str("event_id", update.EventID.String()).
		Str("status", string(update.Event.Status)).
		Msg("event mirror created from sync snapshot")
	return update.Event, true, nil
}

// mirrorBet records a pushed bet in the local mirror so slot tallies stay
// current. A duplicate push is a no-op.
func (h *SyncHandler) mirrorBet(ctx context.Context, update ports.EventSync) error {
	event, created, err := h.mirrorEvent(ctx, update)
	if err != nil || event == nil {
		return err
	}

	now := time.Now().UTC()
	status := domain.PaymentStatusNone
	if update.Signature != "" {
		status = domain.PaymentStatusCommitted
	}
	bet := &domain.Bet{
		ID:               uuid.New(),
		EventID:          update.EventID,
		UserID:           update.UserID,
		ChosenSlot:       update.Slot,
		Amount:           update.Amount,
		PaymentStatus:    status,
		EntryTxSignature: update.Signature,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	dbTx, err := h.transactor.Begin(ctx)
	if err != nil {
		return err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := h.bets.Create(ctx, dbTx, bet); err != nil {
		if errors.Is(err, domain.ErrDuplicateBet) {
			return nil
		}
		return err
	}
	// A freshly created mirror snapshot already counts this bet.
	if !created {
		if _, err := h.events.IncrementParticipants(ctx, dbTx, update.EventID); err != nil {
			return err
		}
	}
	return dbTx.Commit(ctx)
}

// mirrorStatus applies a pushed lifecycle change to the local mirror. The
// terminal transition reuses the same active-only CAS the agent uses, so a
// replayed push cannot flip a settled event.
func (h *SyncHandler) mirrorStatus(ctx context.Context, update ports.EventSync) error {
	event, created, err := h.mirrorEvent(ctx, update)
	if err != nil || event == nil || created {
		return err
	}
	if update.Status == "" || update.Status == domain.EventStatusActive || event.IsTerminal() {
		return nil
	}

	transitioned, err := h.events.TransitionFromActive(ctx, update.EventID, update.Status, update.WinningSlot)
	if err != nil {
		return err
	}
	if transitioned {
		h.log.Info().
			Str("event_id", update.EventID.String()).
			Str("status", string(update.Status)).
			Msg("event mirror settled from sync")
	}
	return nil
}

// transitWire wraps a stored secret for transmission, or returns "" when the
// wallet has none. Wrap failures degrade to sending no secret; the peer keeps
// the wallet connected regardless.
func (h *SyncHandler) transitWire(secret *domain.SecretValue, owner string) string {
	if secret == nil || secret.IsZero() {
		return ""
	}
	wrapped, err := h.cipher.EncryptTransit(*secret)
	if err != nil {
		h.log.Error().Err(err).Str("owner_id", owner).Msg("transit wrap failed, sending wallet without secret")
		return ""
	}
	return wrapped.Wire()
}

// atRestWire converts an incoming wire secret to its at-rest storage form.
// An unrecoverable secret is dropped but the wallet record is still stored.
func (h *SyncHandler) atRestWire(wire, owner string) string {
	if wire == "" {
		return ""
	}
	v := domain.ParseSecretValue(wire)
	if v.Kind == domain.SecretKindTransit {
		unwrapped, err := h.cipher.DecryptTransit(v)
		if err != nil {
			h.log.Error().Err(err).Str("owner_id", owner).Msg("transit unwrap failed, storing wallet without secret")
			return ""
		}
		v = unwrapped
	}
	stored, err := h.cipher.EncryptAtRest(v)
	if err != nil {
		h.log.Error().Err(err).Str("owner_id", owner).Msg("at-rest encrypt failed, storing wallet without secret")
		return ""
	}
	return stored.Wire()
}

func networkOrDefault(s string) domain.Network {
	if s == "" {
		return domain.NetworkMainnet
	}
	return domain.Network(s)
}
