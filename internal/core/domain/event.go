package domain

import (
	"time"

	"github.com/google/uuid"
)

// WagerMode determines where the prize pool comes from.
type WagerMode string

const (
	WagerModeHouse WagerMode = "house" // prize funded by the guild treasury
	WagerModePot   WagerMode = "pot"   // prize funded by escrowed entry fees
)

// EventStatus is the lifecycle state of a wager event.
type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusEnded     EventStatus = "ended" // legacy intermediate state, terminal for betting
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// SettleReason records what triggered a settlement.
type SettleReason string

const (
	SettleReasonFull      SettleReason = "full"
	SettleReasonTimeout   SettleReason = "timeout"
	SettleReasonManual    SettleReason = "manual"
	SettleReasonCancelled SettleReason = "cancelled_by_admin"
)

// PotRake is the fraction of a pot-mode pool retained by the treasury.
const PotRake = 0.10

// WagerEvent is a single betting event hosted in a guild channel.
type WagerEvent struct {
	ID                  uuid.UUID   `json:"id"`
	GuildID             string      `json:"guild_id"`
	ChannelID           string      `json:"channel_id"`
	MessageID           string      `json:"message_id"`
	Title               string      `json:"title"`
	Mode                WagerMode   `json:"mode"`
	PrizeAmount         float64     `json:"prize_amount"`
	Currency            string      `json:"currency"`
	EntryFee            float64     `json:"entry_fee"`
	MinParticipants     int         `json:"min_participants"`
	MaxParticipants     int         `json:"max_participants"`
	CurrentParticipants int         `json:"current_participants"`
	NumSlots            int         `json:"num_slots"`
	WinningSlot         *int        `json:"winning_slot,omitempty"`
	Status              EventStatus `json:"status"`
	EndsAt              time.Time   `json:"ends_at"`
	CreatedBy           string      `json:"created_by"`
	QualificationURL    string      `json:"qualification_url,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
}

// IsActive reports whether the event still accepts bets and settlement.
func (e *WagerEvent) IsActive() bool {
	return e.Status == EventStatusActive
}

// IsTerminal reports whether the event reached a final state.
func (e *WagerEvent) IsTerminal() bool {
	return e.Status == EventStatusCompleted || e.Status == EventStatusCancelled
}

// IsFull reports whether the participant cap is reached.
func (e *WagerEvent) IsFull() bool {
	return e.MaxParticipants > 0 && e.CurrentParticipants >= e.MaxParticipants
}

// RequiresQualification reports whether bettors must pass a qualification gate.
func (e *WagerEvent) RequiresQualification() bool {
	return e.QualificationURL != ""
}

// RequiresEscrow reports whether joining moves funds into the treasury.
func (e *WagerEvent) RequiresEscrow() bool {
	return e.Mode == WagerModePot && e.EntryFee > 0
}

// ValidSlot reports whether slot is a valid outcome index (1-based).
func (e *WagerEvent) ValidSlot(slot int) bool {
	return slot >= 1 && slot <= e.NumSlots
}

// SlotTally summarizes bets per outcome slot, served over the sync surface.
type SlotTally struct {
	Slot   int     `json:"slot"`
	Bets   int     `json:"bets"`
	Amount float64 `json:"amount"`
}
