package postgres

import (
	"context"
	"errors"
	"fmt"

	"guild-wager-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const betColumns = `id, event_id, user_id, chosen_slot, amount, payment_status, wallet_address,
	entry_tx_signature, payout_signature, created_at, updated_at`

// BetRepo implements ports.BetRepository.
type BetRepo struct {
	pool Pool
}

// NewBetRepo creates a new BetRepo.
func NewBetRepo(pool Pool) *BetRepo {
	return &BetRepo{pool: pool}
}

// Create inserts a bet within a transaction. The unique (event_id, user_id)
// constraint is the one-bet-per-user correctness boundary; a violation is
// reported as domain.ErrDuplicateBet.
func (r *BetRepo) Create(ctx context.Context, tx pgx.Tx, b *domain.Bet) error {
	query := `INSERT INTO bets (` + betColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		b.ID, b.EventID, b.UserID, b.ChosenSlot, b.Amount, string(b.PaymentStatus),
		b.WalletAddress, b.EntryTxSignature, b.PayoutSignature, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateBet
		}
		return fmt.Errorf("insert bet: %w", err)
	}
	return nil
}

// GetByEventAndUser fetches a user's bet on an event, nil when absent.
func (r *BetRepo) GetByEventAndUser(ctx context.Context, eventID uuid.UUID, userID string) (*domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE event_id = $1 AND user_id = $2`

	b, err := scanBet(r.pool.QueryRow(ctx, query, eventID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bet by event and user: %w", err)
	}
	return b, nil
}

// ListByEvent returns every bet on an event in placement order.
func (r *BetRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE event_id = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bets: %w", err)
	}
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bet: %w", err)
		}
		bets = append(bets, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bets: %w", err)
	}
	return bets, nil
}

// UpdatePaymentStatus records a payout or refund transfer against a bet.
func (r *BetRepo) UpdatePaymentStatus(ctx context.Context, betID uuid.UUID, status domain.PaymentStatus, signature string) error {
	query := `UPDATE bets SET payment_status = $1, payout_signature = $2, updated_at = NOW() WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, string(status), signature, betID)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bet not found: %s", betID)
	}
	return nil
}

// SlotTallies aggregates bet counts and amounts per outcome slot.
func (r *BetRepo) SlotTallies(ctx context.Context, eventID uuid.UUID) ([]domain.SlotTally, error) {
	query := `SELECT chosen_slot, COUNT(*), COALESCE(SUM(amount), 0)
		FROM bets WHERE event_id = $1 GROUP BY chosen_slot ORDER BY chosen_slot ASC`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("tally slots: %w", err)
	}
	defer rows.Close()

	var tallies []domain.SlotTally
	for rows.Next() {
		var t domain.SlotTally
		if err := rows.Scan(&t.Slot, &t.Bets, &t.Amount); err != nil {
			return nil, fmt.Errorf("scan slot tally: %w", err)
		}
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slot tallies: %w", err)
	}
	return tallies, nil
}

func scanBet(row pgx.Row) (*domain.Bet, error) {
	b := &domain.Bet{}
	var status string
	err := row.Scan(
		&b.ID, &b.EventID, &b.UserID, &b.ChosenSlot, &b.Amount, &status,
		&b.WalletAddress, &b.EntryTxSignature, &b.PayoutSignature, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.PaymentStatus = domain.PaymentStatus(status)
	return b, nil
}
