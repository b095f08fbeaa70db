// Package dto defines the HTTP request and response shapes for the ops and
// internal sync surfaces.
package dto

import (
	"time"

	"guild-wager-platform/internal/core/domain"
)

// ---- Requests ----

// LoginRequest authenticates an operator.
type LoginRequest struct {
	OperatorKey string `json:"operator_key" binding:"required"`
}

// CreateEventRequest opens a new wager event.
type CreateEventRequest struct {
	GuildID          string  `json:"guild_id" binding:"required"`
	ChannelID        string  `json:"channel_id"`
	Title            string  `json:"title" binding:"required"`
	Mode             string  `json:"mode" binding:"required"`
	PrizeAmount      float64 `json:"prize_amount"`
	Currency         string  `json:"currency"`
	EntryFee         float64 `json:"entry_fee"`
	MinParticipants  int     `json:"min_participants"`
	MaxParticipants  int     `json:"max_participants"`
	NumSlots         int     `json:"num_slots" binding:"required"`
	DurationMinutes  int     `json:"duration_minutes" binding:"required"`
	CreatedBy        string  `json:"created_by"`
	QualificationURL string  `json:"qualification_url"`
}

// SelectSlotRequest records a user's provisional slot choice.
type SelectSlotRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Slot   int    `json:"slot" binding:"required"`
}

// ConfirmBetRequest turns a stored selection into a bet.
type ConfirmBetRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// PlaceBetRequest places a bet in one step.
type PlaceBetRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Slot   int    `json:"slot" binding:"required"`
}

// QualifyRequest submits qualification proof for an event.
type QualifyRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	Username      string `json:"username"`
	ScreenshotURL string `json:"screenshot_url" binding:"required"`
}

// ReviewQualificationRequest approves or rejects a submission.
type ReviewQualificationRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// ---- Responses ----

// TokenResponse carries an issued operator token.
type TokenResponse struct {
	Token string `json:"token"`
}

// EventResponse is the serialized view of a wager event.
type EventResponse struct {
	ID                  string  `json:"id"`
	GuildID             string  `json:"guild_id"`
	ChannelID           string  `json:"channel_id,omitempty"`
	MessageID           string  `json:"message_id,omitempty"`
	Title               string  `json:"title"`
	Mode                string  `json:"mode"`
	PrizeAmount         float64 `json:"prize_amount"`
	Currency            string  `json:"currency,omitempty"`
	EntryFee            float64 `json:"entry_fee"`
	MinParticipants     int     `json:"min_participants"`
	MaxParticipants     int     `json:"max_participants"`
	CurrentParticipants int     `json:"current_participants"`
	NumSlots            int     `json:"num_slots"`
	WinningSlot         *int    `json:"winning_slot,omitempty"`
	Status              string  `json:"status"`
	EndsAt              string  `json:"ends_at"`
	CreatedBy           string  `json:"created_by,omitempty"`
	QualificationURL    string  `json:"qualification_url,omitempty"`
	CreatedAt           string  `json:"created_at"`
}

// BetResponse is the serialized view of a bet. Escrow signatures are included
// for the operator surface; they are public chain data anyway.
type BetResponse struct {
	ID               string  `json:"id"`
	EventID          string  `json:"event_id"`
	UserID           string  `json:"user_id"`
	ChosenSlot       int     `json:"chosen_slot"`
	Amount           float64 `json:"amount"`
	PaymentStatus    string  `json:"payment_status"`
	WalletAddress    string  `json:"wallet_address,omitempty"`
	EntryTxSignature string  `json:"entry_tx_signature,omitempty"`
	PayoutSignature  string  `json:"payout_signature,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

// QualificationResponse is the serialized view of a qualification submission.
type QualificationResponse struct {
	ID            string  `json:"id"`
	EventID       string  `json:"event_id"`
	UserID        string  `json:"user_id"`
	Username      string  `json:"username,omitempty"`
	ScreenshotURL string  `json:"screenshot_url"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	ReviewedAt    *string `json:"reviewed_at,omitempty"`
}

// EventDetailResponse bundles an event with its per-slot tallies.
type EventDetailResponse struct {
	Event EventResponse      `json:"event"`
	Slots []domain.SlotTally `json:"slots"`
	Bets  []BetResponse      `json:"bets,omitempty"`
}

// ---- Converters ----

// ToEventResponse converts a domain event to its DTO.
func ToEventResponse(e *domain.WagerEvent) EventResponse {
	return EventResponse{
		ID:                  e.ID.String(),
		GuildID:             e.GuildID,
		ChannelID:           e.ChannelID,
		MessageID:           e.MessageID,
		Title:               e.Title,
		Mode:                string(e.Mode),
		PrizeAmount:         e.PrizeAmount,
		Currency:            e.Currency,
		EntryFee:            e.EntryFee,
		MinParticipants:     e.MinParticipants,
		MaxParticipants:     e.MaxParticipants,
		CurrentParticipants: e.CurrentParticipants,
		NumSlots:            e.NumSlots,
		WinningSlot:         e.WinningSlot,
		Status:              string(e.Status),
		EndsAt:              e.EndsAt.UTC().Format(time.RFC3339),
		CreatedBy:           e.CreatedBy,
		QualificationURL:    e.QualificationURL,
		CreatedAt:           e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToBetResponse converts a domain bet to its DTO.
func ToBetResponse(b *domain.Bet) BetResponse {
	return BetResponse{
		ID:               b.ID.String(),
		EventID:          b.EventID.String(),
		UserID:           b.UserID,
		ChosenSlot:       b.ChosenSlot,
		Amount:           b.Amount,
		PaymentStatus:    string(b.PaymentStatus),
		WalletAddress:    b.WalletAddress,
		EntryTxSignature: b.EntryTxSignature,
		PayoutSignature:  b.PayoutSignature,
		CreatedAt:        b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToBetResponses converts a slice of bets.
func ToBetResponses(bets []domain.Bet) []BetResponse {
	out := make([]BetResponse, len(bets))
	for i := range bets {
		out[i] = ToBetResponse(&bets[i])
	}
	return out
}

// ToQualificationResponse converts a domain qualification to its DTO.
func ToQualificationResponse(q *domain.Qualification) QualificationResponse {
	resp := QualificationResponse{
		ID:            q.ID.String(),
		EventID:       q.EventID.String(),
		UserID:        q.UserID,
		Username:      q.Username,
		ScreenshotURL: q.ScreenshotURL,
		Status:        string(q.Status),
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339),
	}
	if q.ReviewedAt != nil {
		s := q.ReviewedAt.UTC().Format(time.RFC3339)
		resp.ReviewedAt = &s
	}
	return resp
}

// ToQualificationResponses converts a slice of qualifications.
func ToQualificationResponses(quals []domain.Qualification) []QualificationResponse {
	out := make([]QualificationResponse, len(quals))
	for i := range quals {
		out[i] = ToQualificationResponse(&quals[i])
	}
	return out
}
