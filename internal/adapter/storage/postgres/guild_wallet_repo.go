package postgres

import (
	"context"
	"errors"
	"fmt"

	"guild-wager-platform/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// GuildWalletRepo implements ports.GuildWalletRepository.
type GuildWalletRepo struct {
	pool Pool
}

// NewGuildWalletRepo creates a new GuildWalletRepo.
func NewGuildWalletRepo(pool Pool) *GuildWalletRepo {
	return &GuildWalletRepo{pool: pool}
}

// Upsert inserts or replaces the treasury wallet for a guild. secretWire is
// the at-rest wire form of the secret; empty means no usable secret.
func (r *GuildWalletRepo) Upsert(ctx context.Context, w *domain.GuildWallet, secretWire string) error {
	query := `INSERT INTO guild_wallets (guild_id, address, secret, label, network, configured_by, budget_total, budget_spent, budget_currency, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (guild_id) DO UPDATE SET
			address = EXCLUDED.address,
			secret = EXCLUDED.secret,
			label = EXCLUDED.label,
			network = EXCLUDED.network,
			configured_by = EXCLUDED.configured_by,
			budget_total = EXCLUDED.budget_total,
			budget_spent = EXCLUDED.budget_spent,
			budget_currency = EXCLUDED.budget_currency,
			updated_at = NOW()`

	var secret *string
	if secretWire != "" {
		secret = &secretWire
	}
	_, err := r.pool.Exec(ctx, query,
		w.GuildID, w.Address, secret, w.Label, string(w.Network),
		w.ConfiguredBy, w.BudgetTotal, w.BudgetSpent, w.BudgetCurrency,
	)
	if err != nil {
		return fmt.Errorf("upsert guild wallet: %w", err)
	}
	return nil
}

// GetByGuildID fetches the treasury wallet for a guild. The secret comes back
// in its stored (at-rest) form.
func (r *GuildWalletRepo) GetByGuildID(ctx context.Context, guildID string) (*domain.GuildWallet, error) {
	query := `SELECT guild_id, address, secret, label, network, configured_by, budget_total, budget_spent, budget_currency, updated_at
		FROM guild_wallets WHERE guild_id = $1`

	w := &domain.GuildWallet{}
	var secret *string
	var network string
	err := r.pool.QueryRow(ctx, query, guildID).Scan(
		&w.GuildID, &w.Address, &secret, &w.Label, &network,
		&w.ConfiguredBy, &w.BudgetTotal, &w.BudgetSpent, &w.BudgetCurrency, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guild wallet: %w", err)
	}
	w.Network = domain.Network(network)
	if secret != nil && *secret != "" {
		v := domain.ParseSecretValue(*secret)
		w.Secret = &v
	}
	return w, nil
}

// Delete removes a guild's wallet row (disconnect propagation).
func (r *GuildWalletRepo) Delete(ctx context.Context, guildID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM guild_wallets WHERE guild_id = $1`, guildID)
	if err != nil {
		return fmt.Errorf("delete guild wallet: %w", err)
	}
	return nil
}

// AddBudgetSpent accumulates a payout against the guild's budget.
func (r *GuildWalletRepo) AddBudgetSpent(ctx context.Context, guildID string, amount float64) error {
	query := `UPDATE guild_wallets SET budget_spent = budget_spent + $1, updated_at = NOW() WHERE guild_id = $2`

	tag, err := r.pool.Exec(ctx, query, amount, guildID)
	if err != nil {
		return fmt.Errorf("add budget spent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("guild wallet not found: %s", guildID)
	}
	return nil
}
