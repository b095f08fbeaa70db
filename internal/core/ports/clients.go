package ports

import (
	"context"

	"guild-wager-platform/internal/core/domain"

	"github.com/google/uuid"
)

// LedgerClient is the opaque on-chain capability boundary: sign-and-broadcast
// a native-asset transfer, read a balance, read the asset price. Transfer
// timeouts surface as errors; there is no speculative commit.
type LedgerClient interface {
	// SendFunds moves amount from the wallet controlled by secret to toAddress
	// and returns the transaction signature.
	SendFunds(ctx context.Context, secret, toAddress string, amount float64) (string, error)
	GetBalance(ctx context.Context, address string) (float64, error)
	// GetAssetPrice returns nil when no price is available.
	GetAssetPrice(ctx context.Context) (*float64, error)
}

// RemoteWallet is the wire shape of a wallet record crossing the internal
// sync channel. Secret is in wire format, transit-wrapped by the sender.
type RemoteWallet struct {
	OwnerID        string  `json:"owner_id"`
	Address        string  `json:"address"`
	Secret         string  `json:"secret,omitempty"`
	Label          string  `json:"label,omitempty"`
	Network        string  `json:"network"`
	ConfiguredBy   string  `json:"configured_by,omitempty"`
	BudgetTotal    float64 `json:"budget_total,omitempty"`
	BudgetSpent    float64 `json:"budget_spent,omitempty"`
	BudgetCurrency string  `json:"budget_currency,omitempty"`
}

// EventSyncAction enumerates the wager-event-sync push kinds.
type EventSyncAction string

const (
	EventSyncJoin         EventSyncAction = "join"
	EventSyncBet          EventSyncAction = "bet"
	EventSyncQualify      EventSyncAction = "qualify"
	EventSyncStatusUpdate EventSyncAction = "status_update"
)

// EventSync is a best-effort state push for a wager event. Event carries a
// full snapshot from the system of record so the receiver can create its
// mirror on first sight even when earlier pushes were lost.
type EventSync struct {
	EventID       uuid.UUID          `json:"event_id"`
	Action        EventSyncAction    `json:"action"`
	Event         *domain.WagerEvent `json:"event,omitempty"`
	UserID        string             `json:"user_id,omitempty"`
	Username      string             `json:"username,omitempty"`
	Slot          int                `json:"slot,omitempty"`
	Amount        float64            `json:"amount,omitempty"`
	Signature     string             `json:"signature,omitempty"`
	ScreenshotURL string             `json:"screenshot_url,omitempty"`
	Status        domain.EventStatus `json:"status,omitempty"`
	WinningSlot   *int               `json:"winning_slot,omitempty"`
}

// SyncClient is the agent-side view of the internal HTTP channel.
//
// Fetch methods distinguish three outcomes: (wallet, nil) — reachable with a
// record; (nil, nil) — reachable and the remote explicitly reports no wallet
// (a disconnect signal); (nil, err) — unreachable, the caller must fall back
// to local state. Push methods are fire-and-forget best-effort.
type SyncClient interface {
	FetchGuildWallet(ctx context.Context, guildID string) (*RemoteWallet, error)
	FetchUserWallet(ctx context.Context, userID string) (*RemoteWallet, error)
	PushGuildWallet(ctx context.Context, wallet RemoteWallet)
	PushEventUpdate(ctx context.Context, update EventSync)
}
