package domain

import "time"

// Network identifies the chain cluster a wallet lives on.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkDevnet  Network = "devnet"
)

// GuildWallet is a guild's treasury wallet. The ledger service is the system
// of record; the agent holds a working cache reconciled on every resolve.
// Secret is nil when no usable secret is known (never "empty secret").
type GuildWallet struct {
	GuildID        string       `json:"guild_id"`
	Address        string       `json:"address"`
	Secret         *SecretValue `json:"-"` // never serialized as-is, wrapped by the codec first
	Label          string       `json:"label"`
	Network        Network      `json:"network"`
	ConfiguredBy   string       `json:"configured_by"`
	BudgetTotal    float64      `json:"budget_total"`
	BudgetSpent    float64      `json:"budget_spent"`
	BudgetCurrency string       `json:"budget_currency"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// HasSecret reports whether a usable secret is attached.
func (w *GuildWallet) HasSecret() bool {
	return w.Secret != nil && !w.Secret.IsZero()
}

// SameIdentity reports whether two wallet records point at the same on-chain
// account. Used by the reconciler to decide whether a local secret can be
// carried over a remote record that arrived without one.
func (w *GuildWallet) SameIdentity(other *GuildWallet) bool {
	return other != nil && w.Address == other.Address && w.Network == other.Network
}

// UserWallet is a bettor's wallet, resolved through the same sync channel as
// guild treasuries but with a slimmer record.
type UserWallet struct {
	UserID    string       `json:"user_id"`
	Address   string       `json:"address"`
	Secret    *SecretValue `json:"-"`
	Network   Network      `json:"network"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// HasSecret reports whether a usable secret is attached.
func (w *UserWallet) HasSecret() bool {
	return w.Secret != nil && !w.Secret.IsZero()
}
