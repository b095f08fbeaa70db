package ports

import (
	"context"
	"time"

	"guild-wager-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GuildWalletRepository defines persistence for guild treasury wallets.
// The secret column always stores the at-rest wire format.
type GuildWalletRepository interface {
	Upsert(ctx context.Context, wallet *domain.GuildWallet, secretWire string) error
	GetByGuildID(ctx context.Context, guildID string) (*domain.GuildWallet, error)
	Delete(ctx context.Context, guildID string) error
	AddBudgetSpent(ctx context.Context, guildID string, amount float64) error
}

// UserWalletRepository defines persistence for per-user wallets.
type UserWalletRepository interface {
	Upsert(ctx context.Context, wallet *domain.UserWallet, secretWire string) error
	GetByUserID(ctx context.Context, userID string) (*domain.UserWallet, error)
	Delete(ctx context.Context, userID string) error
}

// EventRepository defines persistence for wager events.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type EventRepository interface {
	Create(ctx context.Context, event *domain.WagerEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WagerEvent, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WagerEvent, error)
	IncrementParticipants(ctx context.Context, tx pgx.Tx, id uuid.UUID) (int, error)
	// TransitionFromActive atomically moves an active event to a terminal
	// status, recording the winning slot. Returns false when the event was
	// not active anymore, which callers treat as "someone else settled".
	TransitionFromActive(ctx context.Context, id uuid.UUID, to domain.EventStatus, winningSlot *int) (bool, error)
	ListExpiredActive(ctx context.Context, now time.Time, limit int) ([]domain.WagerEvent, error)
	SetMessageID(ctx context.Context, id uuid.UUID, messageID string) error
}

// BetRepository defines persistence for bets. Create reports
// domain.ErrDuplicateBet when the (event_id, user_id) uniqueness constraint
// rejects the insert.
type BetRepository interface {
	Create(ctx context.Context, tx pgx.Tx, bet *domain.Bet) error
	GetByEventAndUser(ctx context.Context, eventID uuid.UUID, userID string) (*domain.Bet, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Bet, error)
	UpdatePaymentStatus(ctx context.Context, betID uuid.UUID, status domain.PaymentStatus, signature string) error
	SlotTallies(ctx context.Context, eventID uuid.UUID) ([]domain.SlotTally, error)
}

// QualificationRepository defines persistence for qualification submissions.
type QualificationRepository interface {
	Upsert(ctx context.Context, q *domain.Qualification) error
	GetByEventAndUser(ctx context.Context, eventID uuid.UUID, userID string) (*domain.Qualification, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.QualificationStatus) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Qualification, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
