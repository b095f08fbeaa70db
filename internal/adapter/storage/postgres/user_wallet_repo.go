package postgres

import (
	"context"
	"errors"
	"fmt"

	"guild-wager-platform/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// UserWalletRepo implements ports.UserWalletRepository.
type UserWalletRepo struct {
	pool Pool
}

// NewUserWalletRepo creates a new UserWalletRepo.
func NewUserWalletRepo(pool Pool) *UserWalletRepo {
	return &UserWalletRepo{pool: pool}
}

// Upsert inserts or replaces a bettor's wallet.
func (r *UserWalletRepo) Upsert(ctx context.Context, w *domain.UserWallet, secretWire string) error {
	query := `INSERT INTO user_wallets (user_id, address, secret, network, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			address = EXCLUDED.address,
			secret = EXCLUDED.secret,
			network = EXCLUDED.network,
			updated_at = NOW()`

	var secret *string
	if secretWire != "" {
		secret = &secretWire
	}
	_, err := r.pool.Exec(ctx, query, w.UserID, w.Address, secret, string(w.Network))
	if err != nil {
		return fmt.Errorf("upsert user wallet: %w", err)
	}
	return nil
}

// GetByUserID fetches a bettor's wallet, secret in stored form.
func (r *UserWalletRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserWallet, error) {
	query := `SELECT user_id, address, secret, network, updated_at FROM user_wallets WHERE user_id = $1`

	w := &domain.UserWallet{}
	var secret *string
	var network string
	err := r.pool.QueryRow(ctx, query, userID).Scan(&w.UserID, &w.Address, &secret, &network, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user wallet: %w", err)
	}
	w.Network = domain.Network(network)
	if secret != nil && *secret != "" {
		v := domain.ParseSecretValue(*secret)
		w.Secret = &v
	}
	return w, nil
}

// Delete removes a bettor's wallet row.
func (r *UserWalletRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM user_wallets WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user wallet: %w", err)
	}
	return nil
}
