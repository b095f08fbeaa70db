package postgres

import (
	"context"
	"errors"
	"fmt"

	"guild-wager-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const qualificationColumns = `id, event_id, user_id, username, screenshot_url, status, created_at, reviewed_at`

// QualificationRepo implements ports.QualificationRepository.
type QualificationRepo struct {
	pool Pool
}

// NewQualificationRepo creates a new QualificationRepo.
func NewQualificationRepo(pool Pool) *QualificationRepo {
	return &QualificationRepo{pool: pool}
}

// Upsert records a submission. Re-submitting replaces the proof and resets
// the review state.
func (r *QualificationRepo) Upsert(ctx context.Context, q *domain.Qualification) error {
	query := `INSERT INTO qualifications (` + qualificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (event_id, user_id) DO UPDATE SET
			username = EXCLUDED.username,
			screenshot_url = EXCLUDED.screenshot_url,
			status = EXCLUDED.status,
			reviewed_at = NULL`

	_, err := r.pool.Exec(ctx, query,
		q.ID, q.EventID, q.UserID, q.Username, q.ScreenshotURL,
		string(q.Status), q.CreatedAt, q.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert qualification: %w", err)
	}
	return nil
}

// GetByEventAndUser fetches a user's submission for an event, nil when absent.
func (r *QualificationRepo) GetByEventAndUser(ctx context.Context, eventID uuid.UUID, userID string) (*domain.Qualification, error) {
	query := `SELECT ` + qualificationColumns + ` FROM qualifications WHERE event_id = $1 AND user_id = $2`

	q, err := scanQualification(r.pool.QueryRow(ctx, query, eventID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get qualification: %w", err)
	}
	return q, nil
}

// UpdateStatus records a review decision.
func (r *QualificationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.QualificationStatus) error {
	query := `UPDATE qualifications SET status = $1, reviewed_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("update qualification status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("qualification not found: %s", id)
	}
	return nil
}

// ListByEvent returns every submission for an event, oldest first.
func (r *QualificationRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Qualification, error) {
	query := `SELECT ` + qualificationColumns + ` FROM qualifications WHERE event_id = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list qualifications: %w", err)
	}
	defer rows.Close()

	var quals []domain.Qualification
	for rows.Next() {
		q, err := scanQualification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan qualification: %w", err)
		}
		quals = append(quals, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate qualifications: %w", err)
	}
	return quals, nil
}

func scanQualification(row pgx.Row) (*domain.Qualification, error) {
	q := &domain.Qualification{}
	var status string
	err := row.Scan(&q.ID, &q.EventID, &q.UserID, &q.Username, &q.ScreenshotURL, &status, &q.CreatedAt, &q.ReviewedAt)
	if err != nil {
		return nil, err
	}
	q.Status = domain.QualificationStatus(status)
	return q, nil
}
