package ports

import (
	"context"

	"guild-wager-platform/internal/core/domain"

	"github.com/google/uuid"
)

// SecretCipher encrypts and decrypts tagged wallet secrets. Implementations
// must be idempotent on Encrypt (already-tagged input is returned unchanged)
// and must degrade to pass-through when no key material is configured.
type SecretCipher interface {
	EncryptAtRest(v domain.SecretValue) (domain.SecretValue, error)
	DecryptAtRest(v domain.SecretValue) (domain.SecretValue, error)
	EncryptTransit(v domain.SecretValue) (domain.SecretValue, error)
	DecryptTransit(v domain.SecretValue) (domain.SecretValue, error)
	// UnwrapAll peels layers until plaintext, bounded by the configured depth.
	UnwrapAll(v domain.SecretValue) (string, error)
}

// WalletResolver reconciles the local wallet cache with the remote
// authoritative record. Resolve never returns a transport error to callers:
// an unreachable remote falls back to the local cache, and the result is
// always wallet-or-nil.
type WalletResolver interface {
	Resolve(ctx context.Context, guildID string) (*domain.GuildWallet, error)
	ResolveUser(ctx context.Context, userID string) (*domain.UserWallet, error)
}

// SettlementTrigger is the single idempotent entry point all settlement
// paths (capacity, timeout sweep, manual, cancellation) converge on.
type SettlementTrigger interface {
	Settle(ctx context.Context, eventID uuid.UUID, reason domain.SettleReason) error
}

// Notifier delivers milestone and settlement notifications. The chat surface
// itself is out of scope; implementations may log, post, or drop.
type Notifier interface {
	MilestoneReached(ctx context.Context, event *domain.WagerEvent) error
	EventSettled(ctx context.Context, event *domain.WagerEvent, reason domain.SettleReason) error
}

// SelectionStore holds the ephemeral select-a-slot step of the two-step bet
// flow, keyed by (event, user) with a defined expiry.
type SelectionStore interface {
	Put(ctx context.Context, eventID uuid.UUID, userID string, slot int) error
	Get(ctx context.Context, eventID uuid.UUID, userID string) (int, bool, error)
	Delete(ctx context.Context, eventID uuid.UUID, userID string) error
}

// SettlementLock is a best-effort cross-request guard against concurrent
// settlement triggers for the same event. The database CAS transition remains
// the correctness boundary; this only sheds duplicate work early.
type SettlementLock interface {
	TryAcquire(ctx context.Context, eventID uuid.UUID) (bool, error)
	Release(ctx context.Context, eventID uuid.UUID) error
}

// TokenService issues and verifies operator bearer tokens.
type TokenService interface {
	Issue(subject string) (string, error)
	Verify(token string) (string, error)
}
