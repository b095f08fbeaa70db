package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guild-wager-platform/config"
	httpHandler "guild-wager-platform/internal/adapter/http/handler"
	redisStorage "guild-wager-platform/internal/adapter/storage/redis"
	"guild-wager-platform/internal/core/domain"
	"guild-wager-platform/internal/core/ports"
	"guild-wager-platform/internal/service"
	"guild-wager-platform/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAtRestKey      = "6368616e676520746869732070617373776f726420746f206120736563726574"
	testTransitKey     = "aaaabbbbccccddddeeeeffff00001111222233334444555566667777888899aa"
	testOperatorKey    = "integration-op-key"
	testInternalSecret = "integration-internal-secret"
)

// testApp builds the full agent stack: real HTTP layer, middleware, services,
// codec, and redis stores over miniredis, with in-memory postgres repos, a
// fake on-chain ledger, and a fake sync gateway playing the ledger service.
type testApp struct {
	server   *httptest.Server
	redis    *miniredis.Miniredis
	chain    *fakeChain
	syncgw   *fakeSyncClient
	codec    *service.SecretCodec
	events   *inMemoryEventRepo
	bets     *inMemoryBetRepo
	guilds   *inMemoryGuildWalletRepo
	users    *inMemoryUserWalletRepo
	wagers   *service.WagerService
	settler  *service.SettlementService
	sweeper  *service.Sweeper
	opsToken string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() }) //nolint:errcheck

	log := logger.NewWithWriter("error", bytes.NewBuffer(nil))

	codec, err := service.NewSecretCodec(config.SecretsConfig{
		AtRestKey:      testAtRestKey,
		TransitKey:     testTransitKey,
		MaxUnwrapDepth: 5,
	}, log)
	require.NoError(t, err)

	app := &testApp{
		redis:  mr,
		chain:  newFakeChain(),
		syncgw: newFakeSyncClient(),
		codec:  codec,
		events: newInMemoryEventRepo(),
		bets:   newInMemoryBetRepo(),
		guilds: newInMemoryGuildWalletRepo(),
		users:  newInMemoryUserWalletRepo(),
	}

	qualRepo := newInMemoryQualificationRepo()
	selectionStore := redisStorage.NewSelectionStore(rdb, redisStorage.DefaultSelectionTTL)
	settlementLock := redisStorage.NewSettlementLock(rdb, 0)
	tokenSvc := service.NewJWTTokenService("integration-jwt-secret", time.Hour, "test")
	notifier := service.NewLogNotifier(log)

	reconciler := service.NewWalletReconciler(app.guilds, app.users, app.syncgw, codec, time.Second, log)

	// Winner picker pinned to slot 1 for deterministic payouts.
	app.settler = service.NewSettlementService(
		app.events, app.bets, app.guilds, reconciler, app.chain,
		settlementLock, notifier, app.syncgw,
		func(int) int { return 1 },
		log,
	)
	app.wagers = service.NewWagerService(
		app.events, app.bets, qualRepo, reconciler, app.chain,
		selectionStore, app.settler, notifier, app.syncgw,
		&inMemoryTransactor{}, 0.001, log,
	)
	app.sweeper = service.NewSweeper(app.events, app.settler, time.Minute, 25, log)

	router := httpHandler.SetupAgentRouter(httpHandler.AgentRouterDeps{
		Wagers:         app.wagers,
		Settlements:    app.settler,
		TokenSvc:       tokenSvc,
		OperatorKey:    testOperatorKey,
		InternalSecret: testInternalSecret,
		Logger:         log,
	})
	app.server = httptest.NewServer(router)
	t.Cleanup(app.server.Close)

	app.opsToken = app.login(t)
	return app
}

// fundGuild creates an on-chain account and registers its wallet with the
// fake sync gateway, secret transit-wrapped the way the real peer sends it.
func (a *testApp) fundGuild(t *testing.T, guildID, address, secret string, balance float64) {
	t.Helper()
	a.chain.fund(address, secret, balance)
	wrapped, err := a.codec.EncryptTransit(domain.NewPlainSecret(secret))
	require.NoError(t, err)
	a.syncgw.setGuildWallet(&ports.RemoteWallet{
		OwnerID: guildID,
		Address: address,
		Secret:  wrapped.Wire(),
		Network: "mainnet",
	})
}

func (a *testApp) fundUser(t *testing.T, userID, address, secret string, balance float64) {
	t.Helper()
	a.chain.fund(address, secret, balance)
	wrapped, err := a.codec.EncryptTransit(domain.NewPlainSecret(secret))
	require.NoError(t, err)
	a.syncgw.setUserWallet(&ports.RemoteWallet{
		OwnerID: userID,
		Address: address,
		Secret:  wrapped.Wire(),
		Network: "mainnet",
	})
}

func (a *testApp) login(t *testing.T) string {
	t.Helper()
	resp := a.doJSON(t, http.MethodPost, "/ops/login", "", map[string]string{"operator_key": testOperatorKey})
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result.Data.Token
}

func (a *testApp) doJSON(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(method, a.server.URL+path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (a *testApp) doInternal(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(method, a.server.URL+path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-internal-secret", testInternalSecret)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (a *testApp) createEvent(t *testing.T, body map[string]any) string {
	t.Helper()
	resp := a.doJSON(t, http.MethodPost, "/ops/events", a.opsToken, body)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result.Data.ID
}

func (a *testApp) placeBet(t *testing.T, eventID, userID string, slot int) *http.Response {
	t.Helper()
	return a.doInternal(t, http.MethodPost, "/internal/events/"+eventID+"/bets",
		map[string]any{"user_id": userID, "slot": slot})
}

// TestPotWagerLifecycle runs the full pot flow over HTTP: two 1 SOL entries
// escrow into the treasury, the house fills, settlement pays the winner 1.8
// and the treasury retains the 0.2 rake.
func TestPotWagerLifecycle(t *testing.T) {
	app := newTestApp(t)

	app.fundGuild(t, "guild-1", "TreasuryAddr", "treasury-secret", 10)
	app.fundUser(t, "alice", "AliceAddr", "alice-secret", 5)
	app.fundUser(t, "bob", "BobAddr", "bob-secret", 5)

	eventID := app.createEvent(t, map[string]any{
		"guild_id":         "guild-1",
		"title":            "Grand Final",
		"mode":             "pot",
		"entry_fee":        1.0,
		"min_participants": 2,
		"max_participants": 2,
		"num_slots":        2,
		"duration_minutes": 60,
	})

	resp := app.placeBet(t, eventID, "alice", 1)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	// Bob fills the house, which settles the event inline.
	resp = app.placeBet(t, eventID, "bob", 2)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	// Escrow: 2 entries in, payout: 1.8 out. Treasury nets the 0.2 rake.
	assert.InDelta(t, 10.2, app.chain.balanceOf("TreasuryAddr"), 1e-9)
	assert.InDelta(t, 5.8, app.chain.balanceOf("AliceAddr"), 1e-9)
	assert.InDelta(t, 4.0, app.chain.balanceOf("BobAddr"), 1e-9)

	payouts := app.chain.transfersTo("AliceAddr")
	require.Len(t, payouts, 1)
	assert.InDelta(t, 1.8, payouts[0].Amount, 1e-9)

	// Operator view reflects the terminal state.
	detail := app.doJSON(t, http.MethodGet, "/ops/events/"+eventID, app.opsToken, nil)
	defer detail.Body.Close() //nolint:errcheck
	require.Equal(t, http.StatusOK, detail.StatusCode)

	var result struct {
		Data struct {
			Event struct {
				Status      string `json:"status"`
				WinningSlot *int   `json:"winning_slot"`
			} `json:"event"`
			Bets []struct {
				UserID        string `json:"user_id"`
				PaymentStatus string `json:"payment_status"`
			} `json:"bets"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(detail.Body).Decode(&result))
	assert.Equal(t, "completed", result.Data.Event.Status)
	require.NotNil(t, result.Data.Event.WinningSlot)
	assert.Equal(t, 1, *result.Data.Event.WinningSlot)

	statusByUser := map[string]string{}
	for _, b := range result.Data.Bets {
		statusByUser[b.UserID] = b.PaymentStatus
	}
	assert.Equal(t, "paid", statusByUser["alice"])
	assert.Equal(t, "committed", statusByUser["bob"])
}

// TestCancellationRefundsOnce verifies the cancellation refund and that a
// second cancel is a no-op instead of a double refund.
func TestCancellationRefundsOnce(t *testing.T) {
	app := newTestApp(t)

	app.fundGuild(t, "guild-1", "TreasuryAddr", "treasury-secret", 10)
	app.fundUser(t, "alice", "AliceAddr", "alice-secret", 2)

	eventID := app.createEvent(t, map[string]any{
		"guild_id":         "guild-1",
		"title":            "Cancelled Match",
		"mode":             "pot",
		"entry_fee":        0.5,
		"max_participants": 10,
		"num_slots":        2,
		"duration_minutes": 60,
	})

	resp := app.placeBet(t, eventID, "alice", 1)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck
	assert.InDelta(t, 1.5, app.chain.balanceOf("AliceAddr"), 1e-9)

	cancel := app.doJSON(t, http.MethodPost, "/ops/events/"+eventID+"/cancel", app.opsToken, nil)
	require.Equal(t, http.StatusOK, cancel.StatusCode)
	cancel.Body.Close() //nolint:errcheck

	assert.InDelta(t, 2.0, app.chain.balanceOf("AliceAddr"), 1e-9)
	assert.InDelta(t, 10.0, app.chain.balanceOf("TreasuryAddr"), 1e-9)
	transfersAfterFirst := app.chain.transferCount()

	// Second cancel: event is no longer active, nothing moves.
	cancel = app.doJSON(t, http.MethodPost, "/ops/events/"+eventID+"/cancel", app.opsToken, nil)
	require.Equal(t, http.StatusOK, cancel.StatusCode)
	cancel.Body.Close() //nolint:errcheck

	assert.Equal(t, transfersAfterFirst, app.chain.transferCount())
	assert.InDelta(t, 2.0, app.chain.balanceOf("AliceAddr"), 1e-9)
}

// TestManualSettleIsIdempotent drives settle twice through the operator API
// and verifies a single payout set.
func TestManualSettleIsIdempotent(t *testing.T) {
	app := newTestApp(t)

	app.fundGuild(t, "guild-1", "TreasuryAddr", "treasury-secret", 10)
	app.fundUser(t, "alice", "AliceAddr", "alice-secret", 5)

	eventID := app.createEvent(t, map[string]any{
		"guild_id":         "guild-1",
		"title":            "Manual Settle",
		"mode":             "pot",
		"entry_fee":        1.0,
		"max_participants": 10,
		"num_slots":        2,
		"duration_minutes": 60,
	})

	resp := app.placeBet(t, eventID, "alice", 1)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	for i := 0; i < 2; i++ {
		settle := app.doJSON(t, http.MethodPost, "/ops/events/"+eventID+"/settle", app.opsToken, nil)
		require.Equal(t, http.StatusOK, settle.StatusCode)
		settle.Body.Close() //nolint:errcheck
	}

	// One escrow in, exactly one payout out.
	payouts := app.chain.transfersTo("AliceAddr")
	require.Len(t, payouts, 1)
	assert.InDelta(t, 0.9, payouts[0].Amount, 1e-9)
}

// TestSweeperSettlesExpiredEvents verifies the timeout path end to end.
func TestSweeperSettlesExpiredEvents(t *testing.T) {
	app := newTestApp(t)

	app.fundGuild(t, "guild-1", "TreasuryAddr", "treasury-secret", 10)
	app.fundUser(t, "alice", "AliceAddr", "alice-secret", 5)

	eventID := app.createEvent(t, map[string]any{
		"guild_id":         "guild-1",
		"title":            "Short Match",
		"mode":             "pot",
		"entry_fee":        1.0,
		"max_participants": 10,
		"num_slots":        2,
		"duration_minutes": 1,
	})

	resp := app.placeBet(t, eventID, "alice", 1)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	// Not yet expired: sweep settles nothing.
	require.Equal(t, 0, app.sweeper.Sweep(context.Background()))

	// Force expiry and sweep again.
	id, err := uuid.Parse(eventID)
	require.NoError(t, err)
	app.events.mu.Lock()
	app.events.events[id].EndsAt = time.Now().Add(-time.Minute)
	app.events.mu.Unlock()

	require.Equal(t, 1, app.sweeper.Sweep(context.Background()))

	event, err := app.events.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCompleted, event.Status)
}

// TestBettingRejectionsOverHTTP spot-checks the error surface end to end.
func TestBettingRejectionsOverHTTP(t *testing.T) {
	app := newTestApp(t)

	app.fundGuild(t, "guild-1", "TreasuryAddr", "treasury-secret", 10)
	app.fundUser(t, "poor", "PoorAddr", "poor-secret", 0.2)

	eventID := app.createEvent(t, map[string]any{
		"guild_id":         "guild-1",
		"title":            "Rejections",
		"mode":             "pot",
		"entry_fee":        1.0,
		"max_participants": 10,
		"num_slots":        2,
		"duration_minutes": 60,
	})

	t.Run("insufficient funds", func(t *testing.T) {
		resp := app.placeBet(t, eventID, "poor", 1)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
		assertBodyContains(t, resp, "WLT_003")
	})

	t.Run("no wallet connected", func(t *testing.T) {
		resp := app.placeBet(t, eventID, "stranger", 1)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assertBodyContains(t, resp, "WLT_001")
	})

	t.Run("invalid slot", func(t *testing.T) {
		resp := app.placeBet(t, eventID, "poor", 9)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assertBodyContains(t, resp, "WGR_004")
	})
}

func assertBodyContains(t *testing.T, resp *http.Response, substr string) {
	t.Helper()
	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), substr)
}

