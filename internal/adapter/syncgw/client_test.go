package syncgw

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"guild-wager-platform/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, "internal-secret", time.Second, nil, zerolog.Nop())
	c.backoff = time.Millisecond
	return c
}

func TestClient_FetchGuildWallet(t *testing.T) {
	var gotSecret atomic.Value
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret.Store(r.Header.Get("x-internal-secret"))
		assert.Equal(t, "/internal/guild-wallet/guild-1", r.URL.Path)
		json.NewEncoder(w).Encode(walletEnvelope{Wallet: &ports.RemoteWallet{ //nolint:errcheck
			OwnerID: "guild-1",
			Address: "TreasuryAddr",
			Secret:  "e2e:v1:abc:def:ghi",
			Network: "mainnet",
		}})
	}))

	wallet, err := client.FetchGuildWallet(context.Background(), "guild-1")
	require.NoError(t, err)
	require.NotNil(t, wallet)
	assert.Equal(t, "TreasuryAddr", wallet.Address)
	assert.Equal(t, "e2e:v1:abc:def:ghi", wallet.Secret)
	assert.Equal(t, "internal-secret", gotSecret.Load())
}

func TestClient_FetchUserWallet_NullWalletIsDisconnect(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/user-wallet/user-1", r.URL.Path)
		w.Write([]byte(`{"wallet":null}`)) //nolint:errcheck
	}))

	wallet, err := client.FetchUserWallet(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, wallet)
}

func TestClient_Fetch_RetriesOnceOn5xx(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"wallet":null}`)) //nolint:errcheck
	}))

	wallet, err := client.FetchGuildWallet(context.Background(), "guild-1")
	require.NoError(t, err)
	assert.Nil(t, wallet)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Fetch_FailsAfterSecondAttempt(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.FetchGuildWallet(context.Background(), "guild-1")
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Fetch_DoesNotRetry4xx(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := client.FetchGuildWallet(context.Background(), "guild-1")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_PushEventUpdate(t *testing.T) {
	received := make(chan ports.EventSync, 1)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/wager-event-sync", r.URL.Path)
		var update ports.EventSync
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		received <- update
		w.WriteHeader(http.StatusOK)
	}))

	eventID := uuid.New()
	client.PushEventUpdate(context.Background(), ports.EventSync{
		EventID: eventID,
		Action:  ports.EventSyncBet,
		UserID:  "user-1",
		Slot:    2,
		Amount:  1.5,
	})

	select {
	case update := <-received:
		assert.Equal(t, eventID, update.EventID)
		assert.Equal(t, ports.EventSyncBet, update.Action)
		assert.Equal(t, 2, update.Slot)
	case <-time.After(time.Second):
		t.Fatal("push never reached the server")
	}
}

func TestClient_PushGuildWallet_SwallowsServerFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	// Pushes are best-effort; no panic, no error surfaced.
	client.PushGuildWallet(context.Background(), ports.RemoteWallet{OwnerID: "guild-1"})
}
