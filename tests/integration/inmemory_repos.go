package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"guild-wager-platform/internal/core/domain"
	"guild-wager-platform/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Guild Wallet Repo ---

type inMemoryGuildWalletRepo struct {
	mu      sync.RWMutex
	wallets map[string]*domain.GuildWallet
	secrets map[string]string // guildID -> at-rest wire
}

func newInMemoryGuildWalletRepo() *inMemoryGuildWalletRepo {
	return &inMemoryGuildWalletRepo{
		wallets: make(map[string]*domain.GuildWallet),
		secrets: make(map[string]string),
	}
}

func (r *inMemoryGuildWalletRepo) Upsert(ctx context.Context, wallet *domain.GuildWallet, secretWire string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *wallet
	r.wallets[wallet.GuildID] = &cp
	r.secrets[wallet.GuildID] = secretWire
	return nil
}

func (r *inMemoryGuildWalletRepo) GetByGuildID(ctx context.Context, guildID string) (*domain.GuildWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[guildID]
	if !ok {
		return nil, nil
	}
	cp := *w
	if wire := r.secrets[guildID]; wire != "" {
		v := domain.ParseSecretValue(wire)
		cp.Secret = &v
	} else {
		cp.Secret = nil
	}
	return &cp, nil
}

func (r *inMemoryGuildWalletRepo) Delete(ctx context.Context, guildID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wallets, guildID)
	delete(r.secrets, guildID)
	return nil
}

func (r *inMemoryGuildWalletRepo) AddBudgetSpent(ctx context.Context, guildID string, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[guildID]
	if !ok {
		return fmt.Errorf("guild wallet not found")
	}
	w.BudgetSpent += amount
	return nil
}

// --- In-Memory User Wallet Repo ---

type inMemoryUserWalletRepo struct {
	mu      sync.RWMutex
	wallets map[string]*domain.UserWallet
	secrets map[string]string
}

func newInMemoryUserWalletRepo() *inMemoryUserWalletRepo {
	return &inMemoryUserWalletRepo{
		wallets: make(map[string]*domain.UserWallet),
		secrets: make(map[string]string),
	}
}

func (r *inMemoryUserWalletRepo) Upsert(ctx context.Context, wallet *domain.UserWallet, secretWire string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *wallet
	r.wallets[wallet.UserID] = &cp
	r.secrets[wallet.UserID] = secretWire
	return nil
}

func (r *inMemoryUserWalletRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[userID]
	if !ok {
		return nil, nil
	}
	cp := *w
	if wire := r.secrets[userID]; wire != "" {
		v := domain.ParseSecretValue(wire)
		cp.Secret = &v
	} else {
		cp.Secret = nil
	}
	return &cp, nil
}

func (r *inMemoryUserWalletRepo) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wallets, userID)
	delete(r.secrets, userID)
	return nil
}

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events map[uuid.UUID]*domain.WagerEvent
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{events: make(map[uuid.UUID]*domain.WagerEvent)}
}

func (r *inMemoryEventRepo) Create(ctx context.Context, event *domain.WagerEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *event
	r.events[event.ID] = &cp
	return nil
}

func (r *inMemoryEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WagerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *inMemoryEventRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WagerEvent, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryEventRepo) IncrementParticipants(ctx context.Context, tx pgx.Tx, id uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return 0, fmt.Errorf("event not found")
	}
	e.CurrentParticipants++
	return e.CurrentParticipants, nil
}

func (r *inMemoryEventRepo) TransitionFromActive(ctx context.Context, id uuid.UUID, to domain.EventStatus, winningSlot *int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok || e.Status != domain.EventStatusActive {
		return false, nil
	}
	e.Status = to
	e.WinningSlot = winningSlot
	return true, nil
}

func (r *inMemoryEventRepo) ListExpiredActive(ctx context.Context, now time.Time, limit int) ([]domain.WagerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.WagerEvent
	for _, e := range r.events {
		if e.Status == domain.EventStatusActive && !e.EndsAt.After(now) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndsAt.Before(out[j].EndsAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryEventRepo) SetMessageID(ctx context.Context, id uuid.UUID, messageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return fmt.Errorf("event not found")
	}
	e.MessageID = messageID
	return nil
}

// --- In-Memory Bet Repo ---

type betKey struct {
	eventID uuid.UUID
	userID  string
}

type inMemoryBetRepo struct {
	mu     sync.RWMutex
	bets   map[uuid.UUID]*domain.Bet
	unique map[betKey]uuid.UUID
}

func newInMemoryBetRepo() *inMemoryBetRepo {
	return &inMemoryBetRepo{
		bets:   make(map[uuid.UUID]*domain.Bet),
		unique: make(map[betKey]uuid.UUID),
	}
}

func (r *inMemoryBetRepo) Create(ctx context.Context, tx pgx.Tx, bet *domain.Bet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := betKey{bet.EventID, bet.UserID}
	if _, exists := r.unique[key]; exists {
		return domain.ErrDuplicateBet
	}
	cp := *bet
	r.bets[bet.ID] = &cp
	r.unique[key] = bet.ID
	return nil
}

func (r *inMemoryBetRepo) GetByEventAndUser(ctx context.Context, eventID uuid.UUID, userID string) (*domain.Bet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.unique[betKey{eventID, userID}]
	if !ok {
		return nil, nil
	}
	cp := *r.bets[id]
	return &cp, nil
}

func (r *inMemoryBetRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Bet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Bet
	for _, b := range r.bets {
		if b.EventID == eventID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryBetRepo) UpdatePaymentStatus(ctx context.Context, betID uuid.UUID, status domain.PaymentStatus, signature string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bets[betID]
	if !ok {
		return fmt.Errorf("bet not found")
	}
	b.PaymentStatus = status
	if signature != "" {
		b.PayoutSignature = signature
	}
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryBetRepo) SlotTallies(ctx context.Context, eventID uuid.UUID) ([]domain.SlotTally, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bySlot := make(map[int]*domain.SlotTally)
	for _, b := range r.bets {
		if b.EventID != eventID {
			continue
		}
		t, ok := bySlot[b.ChosenSlot]
		if !ok {
			t = &domain.SlotTally{Slot: b.ChosenSlot}
			bySlot[b.ChosenSlot] = t
		}
		t.Bets++
		t.Amount += b.Amount
	}
	var out []domain.SlotTally
	for _, t := range bySlot {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out, nil
}

// --- In-Memory Qualification Repo ---

type inMemoryQualificationRepo struct {
	mu     sync.RWMutex
	quals  map[uuid.UUID]*domain.Qualification
	unique map[betKey]uuid.UUID
}

func newInMemoryQualificationRepo() *inMemoryQualificationRepo {
	return &inMemoryQualificationRepo{
		quals:  make(map[uuid.UUID]*domain.Qualification),
		unique: make(map[betKey]uuid.UUID),
	}
}

func (r *inMemoryQualificationRepo) Upsert(ctx context.Context, q *domain.Qualification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := betKey{q.EventID, q.UserID}
	if existing, ok := r.unique[key]; ok {
		delete(r.quals, existing)
	}
	cp := *q
	r.quals[q.ID] = &cp
	r.unique[key] = q.ID
	return nil
}

func (r *inMemoryQualificationRepo) GetByEventAndUser(ctx context.Context, eventID uuid.UUID, userID string) (*domain.Qualification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.unique[betKey{eventID, userID}]
	if !ok {
		return nil, nil
	}
	cp := *r.quals[id]
	return &cp, nil
}

func (r *inMemoryQualificationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.QualificationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quals[id]
	if !ok {
		return fmt.Errorf("qualification not found")
	}
	q.Status = status
	now := time.Now().UTC()
	q.ReviewedAt = &now
	return nil
}

func (r *inMemoryQualificationRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Qualification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Qualification
	for _, q := range r.quals {
		if q.EventID == eventID {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

// --- Fake on-chain ledger ---

type chainAccount struct {
	secret  string
	balance float64
}

type transferRecord struct {
	FromAddress string
	ToAddress   string
	Amount      float64
	Signature   string
}

// fakeChain implements ports.LedgerClient over an in-memory balance sheet,
// keyed by address with a secret index for SendFunds.
type fakeChain struct {
	mu        sync.Mutex
	accounts  map[string]*chainAccount // address -> account
	bySecret  map[string]string        // secret -> address
	transfers []transferRecord
	seq       int
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		accounts: make(map[string]*chainAccount),
		bySecret: make(map[string]string),
	}
}

func (c *fakeChain) fund(address, secret string, balance float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts[address] = &chainAccount{secret: secret, balance: balance}
	c.bySecret[secret] = address
}

func (c *fakeChain) balanceOf(address string) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if acct, ok := c.accounts[address]; ok {
		return acct.balance
	}
	return 0
}

func (c *fakeChain) transferCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.transfers)
}

func (c *fakeChain) transfersTo(address string) []transferRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []transferRecord
	for _, tr := range c.transfers {
		if tr.ToAddress == address {
			out = append(out, tr)
		}
	}
	return out
}

func (c *fakeChain) SendFunds(ctx context.Context, secret, toAddress string, amount float64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fromAddr, ok := c.bySecret[secret]
	if !ok {
		return "", fmt.Errorf("unknown signing secret")
	}
	from := c.accounts[fromAddr]
	if from.balance < amount {
		return "", fmt.Errorf("insufficient balance: have %f, need %f", from.balance, amount)
	}

	from.balance -= amount
	to, ok := c.accounts[toAddress]
	if !ok {
		to = &chainAccount{}
		c.accounts[toAddress] = to
	}
	to.balance += amount

	c.seq++
	sig := fmt.Sprintf("sig-%d", c.seq)
	c.transfers = append(c.transfers, transferRecord{
		FromAddress: fromAddr,
		ToAddress:   toAddress,
		Amount:      amount,
		Signature:   sig,
	})
	return sig, nil
}

func (c *fakeChain) GetBalance(ctx context.Context, address string) (float64, error) {
	return c.balanceOf(address), nil
}

func (c *fakeChain) GetAssetPrice(ctx context.Context) (*float64, error) {
	price := 150.0
	return &price, nil
}

// --- Fake sync client ---

// fakeSyncClient plays the ledger service's role for the agent-side stack:
// it serves wallets with transit-wrapped secrets and records pushes.
type fakeSyncClient struct {
	mu           sync.Mutex
	guildWallets map[string]*ports.RemoteWallet
	userWallets  map[string]*ports.RemoteWallet
	unreachable  bool
	pushes       []ports.EventSync
}

func newFakeSyncClient() *fakeSyncClient {
	return &fakeSyncClient{
		guildWallets: make(map[string]*ports.RemoteWallet),
		userWallets:  make(map[string]*ports.RemoteWallet),
	}
}

func (f *fakeSyncClient) setGuildWallet(w *ports.RemoteWallet) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.guildWallets[w.OwnerID] = w
}

func (f *fakeSyncClient) setUserWallet(w *ports.RemoteWallet) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userWallets[w.OwnerID] = w
}

func (f *fakeSyncClient) FetchGuildWallet(ctx context.Context, guildID string) (*ports.RemoteWallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unreachable {
		return nil, fmt.Errorf("sync gateway unreachable")
	}
	return f.guildWallets[guildID], nil
}

func (f *fakeSyncClient) FetchUserWallet(ctx context.Context, userID string) (*ports.RemoteWallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unreachable {
		return nil, fmt.Errorf("sync gateway unreachable")
	}
	return f.userWallets[userID], nil
}

func (f *fakeSyncClient) PushGuildWallet(ctx context.Context, wallet ports.RemoteWallet) {}

func (f *fakeSyncClient) PushEventUpdate(ctx context.Context, update ports.EventSync) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushes = append(f.pushes, update)
}
