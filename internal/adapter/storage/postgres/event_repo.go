package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"guild-wager-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, guild_id, channel_id, message_id, title, mode, prize_amount, currency, entry_fee,
	min_participants, max_participants, current_participants, num_slots, winning_slot, status, ends_at,
	created_by, qualification_url, created_at`

// EventRepo implements ports.EventRepository.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Create inserts a new wager event.
func (r *EventRepo) Create(ctx context.Context, e *domain.WagerEvent) error {
	query := `INSERT INTO wager_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.GuildID, e.ChannelID, e.MessageID, e.Title, string(e.Mode),
		e.PrizeAmount, e.Currency, e.EntryFee,
		e.MinParticipants, e.MaxParticipants, e.CurrentParticipants, e.NumSlots,
		e.WinningSlot, string(e.Status), e.EndsAt, e.CreatedBy, e.QualificationURL, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID fetches an event by its UUID (without locking).
func (r *EventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WagerEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM wager_events WHERE id = $1`

	e, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return e, nil
}

// GetByIDForUpdate fetches an event with pessimistic locking.
// This MUST be called within a transaction.
func (r *EventRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WagerEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM wager_events WHERE id = $1 FOR UPDATE`

	e, err := scanEvent(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event for update: %w", err)
	}
	return e, nil
}

// IncrementParticipants bumps the participant count within a transaction and
// returns the new count.
func (r *EventRepo) IncrementParticipants(ctx context.Context, tx pgx.Tx, id uuid.UUID) (int, error) {
	query := `UPDATE wager_events SET current_participants = current_participants + 1
		WHERE id = $1 RETURNING current_participants`

	var count int
	if err := tx.QueryRow(ctx, query, id).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("event not found: %s", id)
		}
		return 0, fmt.Errorf("increment participants: %w", err)
	}
	return count, nil
}

// TransitionFromActive performs the single permitted terminal transition.
// Returns false when the event was no longer active, making concurrent
// settlement triggers a no-op.
func (r *EventRepo) TransitionFromActive(ctx context.Context, id uuid.UUID, to domain.EventStatus, winningSlot *int) (bool, error) {
	query := `UPDATE wager_events SET status = $1, winning_slot = $2
		WHERE id = $3 AND status = $4`

	tag, err := r.pool.Exec(ctx, query, string(to), winningSlot, id, string(domain.EventStatusActive))
	if err != nil {
		return false, fmt.Errorf("transition event: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListExpiredActive returns active events whose deadline passed, oldest
// first, capped at limit.
func (r *EventRepo) ListExpiredActive(ctx context.Context, now time.Time, limit int) ([]domain.WagerEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM wager_events
		WHERE status = $1 AND ends_at <= $2 ORDER BY ends_at ASC LIMIT $3`

	rows, err := r.pool.Query(ctx, query, string(domain.EventStatusActive), now, limit)
	if err != nil {
		return nil, fmt.Errorf("list expired events: %w", err)
	}
	defer rows.Close()

	var events []domain.WagerEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expired event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expired events: %w", err)
	}
	return events, nil
}

// SetMessageID records the chat message rendered for the event.
func (r *EventRepo) SetMessageID(ctx context.Context, id uuid.UUID, messageID string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE wager_events SET message_id = $1 WHERE id = $2`, messageID, id)
	if err != nil {
		return fmt.Errorf("set message id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %s", id)
	}
	return nil
}

func scanEvent(row pgx.Row) (*domain.WagerEvent, error) {
	e := &domain.WagerEvent{}
	var mode, status string
	err := row.Scan(
		&e.ID, &e.GuildID, &e.ChannelID, &e.MessageID, &e.Title, &mode,
		&e.PrizeAmount, &e.Currency, &e.EntryFee,
		&e.MinParticipants, &e.MaxParticipants, &e.CurrentParticipants, &e.NumSlots,
		&e.WinningSlot, &status, &e.EndsAt, &e.CreatedBy, &e.QualificationURL, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Mode = domain.WagerMode(mode)
	e.Status = domain.EventStatus(status)
	return e, nil
}
