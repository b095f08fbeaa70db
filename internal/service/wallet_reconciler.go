package service

import (
	"context"
	"fmt"
	"time"

	"guild-wager-platform/internal/core/domain"
	"guild-wager-platform/internal/core/ports"

	"github.com/rs/zerolog"
)

// Source identifies which process's view won a reconciliation.
type Source int

const (
	SourceLocal Source = iota
	SourceRemote
)

func (s Source) String() string {
	if s == SourceRemote {
		return "remote"
	}
	return "local"
}

// WalletReconciler resolves the authoritative wallet for a guild or user.
// The ledger service is the long-term system of record; the local cache is
// trusted only when the remote is unreachable. Network failures never
// propagate to callers — the result is always wallet-or-nil.
type WalletReconciler struct {
	guildWallets ports.GuildWalletRepository
	userWallets  ports.UserWalletRepository
	sync         ports.SyncClient
	codec        ports.SecretCipher
	timeout      time.Duration
	log          zerolog.Logger
}

// NewWalletReconciler creates a WalletReconciler. timeout bounds each remote
// fetch; zero means 5s.
func NewWalletReconciler(
	guildWallets ports.GuildWalletRepository,
	userWallets ports.UserWalletRepository,
	sync ports.SyncClient,
	codec ports.SecretCipher,
	timeout time.Duration,
	log zerolog.Logger,
) *WalletReconciler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WalletReconciler{
		guildWallets: guildWallets,
		userWallets:  userWallets,
		sync:         sync,
		codec:        codec,
		timeout:      timeout,
		log:          log,
	}
}

// Resolve returns the authoritative treasury wallet for a guild, or nil when
// none is connected. The returned wallet's secret, when present, is plaintext
// and ready for the ledger client.
func (r *WalletReconciler) Resolve(ctx context.Context, guildID string) (*domain.GuildWallet, error) {
	local, err := r.guildWallets.GetByGuildID(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("reading cached wallet: %w", err)
	}
	if local != nil {
		local.Secret = r.unwrapOrNil(local.Secret, "local", guildID)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	payload, fetchErr := r.sync.FetchGuildWallet(fetchCtx, guildID)
	if fetchErr != nil {
		// Unreachable: the only branch where local data is trusted alone.
		r.log.Warn().Err(fetchErr).Str("guild_id", guildID).
			Msg("wallet sync unreachable, serving cached wallet")
		return local, nil
	}

	var remote *domain.GuildWallet
	if payload != nil {
		remote = guildWalletFromRemote(guildID, *payload)
		remote.Secret = r.unwrapOrNil(remoteSecret(payload.Secret), "remote", guildID)
	}

	merged, source := mergeGuildWallet(local, remote)

	if merged == nil {
		// Explicit disconnect signal from a reachable remote.
		if local != nil {
			if err := r.guildWallets.Delete(ctx, guildID); err != nil {
				return nil, fmt.Errorf("propagating wallet disconnect: %w", err)
			}
			r.log.Info().Str("guild_id", guildID).Msg("remote reports no wallet, local cache dropped")
		}
		return nil, nil
	}

	if source == SourceRemote && !guildWalletsEqual(merged, local) {
		if err := r.persistGuildWallet(ctx, merged); err != nil {
			return nil, err
		}
		r.log.Info().
			Str("guild_id", guildID).
			Str("address", merged.Address).
			Str("source", source.String()).
			Msg("wallet cache synced from remote")
	}

	return merged, nil
}

// ResolveUser resolves a bettor's wallet through the same channel with the
// same reachability semantics.
func (r *WalletReconciler) ResolveUser(ctx context.Context, userID string) (*domain.UserWallet, error) {
	local, err := r.userWallets.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reading cached user wallet: %w", err)
	}
	if local != nil {
		local.Secret = r.unwrapOrNil(local.Secret, "local", userID)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	payload, fetchErr := r.sync.FetchUserWallet(fetchCtx, userID)
	if fetchErr != nil {
		r.log.Warn().Err(fetchErr).Str("user_id", userID).
			Msg("user wallet sync unreachable, serving cached wallet")
		return local, nil
	}

	if payload == nil {
		if local != nil {
			if err := r.userWallets.Delete(ctx, userID); err != nil {
				return nil, fmt.Errorf("propagating user wallet disconnect: %w", err)
			}
			r.log.Info().Str("user_id", userID).Msg("remote reports no user wallet, local cache dropped")
		}
		return nil, nil
	}

	remote := &domain.UserWallet{
		UserID:    userID,
		Address:   payload.Address,
		Network:   domain.Network(payload.Network),
		UpdatedAt: time.Now().UTC(),
	}
	remote.Secret = r.unwrapOrNil(remoteSecret(payload.Secret), "remote", userID)
	if remote.Secret == nil && local != nil && local.Address == remote.Address {
		remote.Secret = local.Secret
	}

	if local == nil || local.Address != remote.Address || !secretsEqual(local.Secret, remote.Secret) {
		if err := r.persistUserWallet(ctx, remote); err != nil {
			return nil, err
		}
	}

	return remote, nil
}

// unwrapOrNil peels all encryption layers; an unrecoverable secret becomes
// nil, logged with the failing layer, and the wallet stays connected without
// a usable secret.
func (r *WalletReconciler) unwrapOrNil(secret *domain.SecretValue, origin, owner string) *domain.SecretValue {
	if secret == nil || secret.IsZero() {
		return nil
	}
	plain, err := r.codec.UnwrapAll(*secret)
	if err != nil {
		r.log.Error().Err(err).Str("origin", origin).Str("owner", owner).
			Msg("wallet secret unrecoverable, treating wallet as connected without secret")
		return nil
	}
	v := domain.NewPlainSecret(plain)
	return &v
}

func (r *WalletReconciler) persistGuildWallet(ctx context.Context, w *domain.GuildWallet) error {
	secretWire := ""
	if w.HasSecret() {
		enc, err := r.codec.EncryptAtRest(*w.Secret)
		if err != nil {
			return fmt.Errorf("re-encrypting wallet secret: %w", err)
		}
		secretWire = enc.Wire()
	}
	if err := r.guildWallets.Upsert(ctx, w, secretWire); err != nil {
		return fmt.Errorf("caching wallet: %w", err)
	}
	return nil
}

func (r *WalletReconciler) persistUserWallet(ctx context.Context, w *domain.UserWallet) error {
	secretWire := ""
	if w.HasSecret() {
		enc, err := r.codec.EncryptAtRest(*w.Secret)
		if err != nil {
			return fmt.Errorf("re-encrypting user wallet secret: %w", err)
		}
		secretWire = enc.Wire()
	}
	if err := r.userWallets.Upsert(ctx, w, secretWire); err != nil {
		return fmt.Errorf("caching user wallet: %w", err)
	}
	return nil
}

// mergeGuildWallet is the pure merge rule. Both inputs carry plaintext
// secrets (or nil for unrecoverable/absent). A nil remote here means the
// remote was REACHABLE and reported no wallet; unreachable remotes never get
// this far.
//
// Remote wins identity fields. The secret is the remote's when recoverable,
// else the local one if both records point at the same on-chain account, else
// none.
func mergeGuildWallet(local, remote *domain.GuildWallet) (*domain.GuildWallet, Source) {
	if remote == nil {
		return nil, SourceRemote
	}

	merged := *remote
	if merged.Secret == nil && local != nil && local.SameIdentity(remote) {
		merged.Secret = local.Secret
	}
	return &merged, SourceRemote
}

func guildWalletFromRemote(guildID string, p ports.RemoteWallet) *domain.GuildWallet {
	return &domain.GuildWallet{
		GuildID:        guildID,
		Address:        p.Address,
		Label:          p.Label,
		Network:        domain.Network(p.Network),
		ConfiguredBy:   p.ConfiguredBy,
		BudgetTotal:    p.BudgetTotal,
		BudgetSpent:    p.BudgetSpent,
		BudgetCurrency: p.BudgetCurrency,
		UpdatedAt:      time.Now().UTC(),
	}
}

func remoteSecret(wire string) *domain.SecretValue {
	if wire == "" {
		return nil
	}
	v := domain.ParseSecretValue(wire)
	return &v
}

func secretsEqual(a, b *domain.SecretValue) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func guildWalletsEqual(a, b *domain.GuildWallet) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Address == b.Address &&
		a.Label == b.Label &&
		a.Network == b.Network &&
		a.ConfiguredBy == b.ConfiguredBy &&
		a.BudgetTotal == b.BudgetTotal &&
		a.BudgetSpent == b.BudgetSpent &&
		a.BudgetCurrency == b.BudgetCurrency &&
		secretsEqual(a.Secret, b.Secret)
}
