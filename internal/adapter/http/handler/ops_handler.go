package handler

import (
	"context"
	"crypto/subtle"
	"time"

	"guild-wager-platform/internal/adapter/http/dto"
	"guild-wager-platform/internal/core/domain"
	"guild-wager-platform/internal/core/ports"
	"guild-wager-platform/internal/service"
	"guild-wager-platform/pkg/apperror"
	"guild-wager-platform/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WagerOperations is the slice of the wager service the HTTP layer consumes.
type WagerOperations interface {
	CreateEvent(ctx context.Context, in service.CreateEventInput) (*domain.WagerEvent, error)
	EventDetail(ctx context.Context, id uuid.UUID) (*domain.WagerEvent, []domain.SlotTally, error)
	ListBets(ctx context.Context, eventID uuid.UUID) ([]domain.Bet, error)
	SelectSlot(ctx context.Context, eventID uuid.UUID, userID string, slot int) error
	ConfirmBet(ctx context.Context, eventID uuid.UUID, userID string) (*domain.Bet, error)
	PlaceBet(ctx context.Context, eventID uuid.UUID, userID string, slot int) (*domain.Bet, error)
	SubmitQualification(ctx context.Context, eventID uuid.UUID, userID, username, screenshotURL string) (*domain.Qualification, error)
	ListQualifications(ctx context.Context, eventID uuid.UUID) ([]domain.Qualification, error)
	ReviewQualification(ctx context.Context, id uuid.UUID, approve bool) error
	CancelEvent(ctx context.Context, eventID uuid.UUID) error
}

// SettlementOperations is the slice of the settlement service the HTTP layer
// consumes.
type SettlementOperations interface {
	Settle(ctx context.Context, eventID uuid.UUID, reason domain.SettleReason) error
	RetryRefunds(ctx context.Context, eventID uuid.UUID) (int, error)
}

// OpsHandler serves the operator surface: token login, event inspection, and
// the manual settlement controls.
type OpsHandler struct {
	wagers      WagerOperations
	settlements SettlementOperations
	tokens      ports.TokenService
	operatorKey string
	log         zerolog.Logger
}

// NewOpsHandler creates an OpsHandler.
func NewOpsHandler(
	wagers WagerOperations,
	settlements SettlementOperations,
	tokens ports.TokenService,
	operatorKey string,
	log zerolog.Logger,
) *OpsHandler {
	return &OpsHandler{
		wagers:      wagers,
		settlements: settlements,
		tokens:      tokens,
		operatorKey: operatorKey,
		log:         log,
	}
}

// Login handles POST /ops/login. An empty configured key disables the
// operator surface entirely.
func (h *OpsHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if h.operatorKey == "" ||
		subtle.ConstantTimeCompare([]byte(req.OperatorKey), []byte(h.operatorKey)) != 1 {
		h.log.Warn().Str("client_ip", c.ClientIP()).Msg("operator login rejected")
		response.Error(c, apperror.ErrInvalidOperatorKey())
		return
	}

	token, err := h.tokens.Issue("operator")
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, dto.TokenResponse{Token: token})
}

// CreateEvent handles POST /ops/events.
func (h *OpsHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	mode, err := dto.ParseWagerMode(req.Mode)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	event, err := h.wagers.CreateEvent(c.Request.Context(), service.CreateEventInput{
		GuildID:          req.GuildID,
		ChannelID:        req.ChannelID,
		Title:            req.Title,
		Mode:             mode,
		PrizeAmount:      req.PrizeAmount,
		Currency:         req.Currency,
		EntryFee:         req.EntryFee,
		MinParticipants:  req.MinParticipants,
		MaxParticipants:  req.MaxParticipants,
		NumSlots:         req.NumSlots,
		Duration:         time.Duration(req.DurationMinutes) * time.Minute,
		CreatedBy:        req.CreatedBy,
		QualificationURL: req.QualificationURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToEventResponse(event))
}

// GetEvent handles GET /ops/events/:id, returning the event with tallies and
// the full bet list for operator inspection.
func (h *OpsHandler) GetEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, tallies, err := h.wagers.EventDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	bets, err := h.wagers.ListBets(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.EventDetailResponse{
		Event: dto.ToEventResponse(event),
		Slots: tallies,
		Bets:  dto.ToBetResponses(bets),
	})
}

// Settle handles POST /ops/events/:id/settle.
func (h *OpsHandler) Settle(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	if err := h.settlements.Settle(c.Request.Context(), id, domain.SettleReasonManual); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"settled": true})
}

// Cancel handles POST /ops/events/:id/cancel.
func (h *OpsHandler) Cancel(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	if err := h.wagers.CancelEvent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"cancelled": true})
}

// RetryRefunds handles POST /ops/events/:id/retry-refunds, re-driving
// transfers that failed during a cancellation.
func (h *OpsHandler) RetryRefunds(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	refunded, err := h.settlements.RetryRefunds(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"refunded": refunded})
}

// ListQualifications handles GET /ops/events/:id/qualifications.
func (h *OpsHandler) ListQualifications(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	quals, err := h.wagers.ListQualifications(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToQualificationResponses(quals))
}

// ReviewQualification handles POST /ops/qualifications/:id/review.
func (h *OpsHandler) ReviewQualification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid qualification id"))
		return
	}

	var req dto.ReviewQualificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.wagers.ReviewQualification(c.Request.Context(), id, *req.Approve); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"reviewed": true})
}

// eventID parses the :id path param, writing the error response itself.
func eventID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid event id"))
		return uuid.Nil, false
	}
	return id, true
}
