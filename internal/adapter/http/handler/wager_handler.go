package handler

import (
	"guild-wager-platform/internal/adapter/http/dto"
	"guild-wager-platform/pkg/apperror"
	"guild-wager-platform/pkg/response"

	"github.com/gin-gonic/gin"
)

// WagerHandler serves the betting flow on the agent's internal surface. The
// chat frontend that renders events calls these on behalf of its users, which
// is why user identity travels in the body rather than a session.
type WagerHandler struct {
	wagers WagerOperations
}

// NewWagerHandler creates a WagerHandler.
func NewWagerHandler(wagers WagerOperations) *WagerHandler {
	return &WagerHandler{wagers: wagers}
}

// GetEvent handles GET /internal/events/:id.
func (h *WagerHandler) GetEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, tallies, err := h.wagers.EventDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.EventDetailResponse{
		Event: dto.ToEventResponse(event),
		Slots: tallies,
	})
}

// SelectSlot handles POST /internal/events/:id/select, the first half of the
// select-then-confirm betting flow.
func (h *WagerHandler) SelectSlot(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.wagers.SelectSlot(c.Request.Context(), id, req.UserID, req.Slot); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"selected": req.Slot})
}

// ConfirmBet handles POST /internal/events/:id/confirm, turning the stored
// selection into a bet.
func (h *WagerHandler) ConfirmBet(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.ConfirmBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	bet, err := h.wagers.ConfirmBet(c.Request.Context(), id, req.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToBetResponse(bet))
}

// PlaceBet handles POST /internal/events/:id/bets, the one-step betting path.
func (h *WagerHandler) PlaceBet(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	bet, err := h.wagers.PlaceBet(c.Request.Context(), id, req.UserID, req.Slot)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToBetResponse(bet))
}

// Qualify handles POST /internal/events/:id/qualify.
func (h *WagerHandler) Qualify(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.QualifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	qual, err := h.wagers.SubmitQualification(c.Request.Context(), id, req.UserID, req.Username, req.ScreenshotURL)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToQualificationResponse(qual))
}
