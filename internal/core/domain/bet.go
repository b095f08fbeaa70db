package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicateBet is reported by the bet repository when the (event, user)
// uniqueness constraint rejects an insert. The data layer is the correctness
// boundary for one-bet-per-user; business checks are a fast path only.
var ErrDuplicateBet = errors.New("bet already exists for this event and user")

// PaymentStatus tracks the escrow state of a bet's entry fee.
type PaymentStatus string

const (
	PaymentStatusNone      PaymentStatus = "none"      // no escrow required
	PaymentStatusCommitted PaymentStatus = "committed" // entry fee held by the treasury
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusPaid      PaymentStatus = "paid" // payout sent to the winner
)

// Bet is a participant's single commitment to an event outcome.
// Rows are never deleted (financial audit trail).
type Bet struct {
	ID               uuid.UUID     `json:"id"`
	EventID          uuid.UUID     `json:"event_id"`
	UserID           string        `json:"user_id"`
	ChosenSlot       int           `json:"chosen_slot"`
	Amount           float64       `json:"amount"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	WalletAddress    string        `json:"wallet_address,omitempty"`
	EntryTxSignature string        `json:"entry_tx_signature,omitempty"`
	PayoutSignature  string        `json:"payout_signature,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// IsEscrowed reports whether funds are currently held for this bet.
func (b *Bet) IsEscrowed() bool {
	return b.PaymentStatus == PaymentStatusCommitted
}
