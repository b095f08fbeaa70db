package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guild-wager-platform/config"
	"guild-wager-platform/internal/core/domain"
	"guild-wager-platform/internal/core/ports"
	"guild-wager-platform/internal/core/ports/mocks"
	"guild-wager-platform/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubTx satisfies pgx.Tx for handler paths that only commit or roll back.
type stubTx struct{ pgx.Tx }

func (stubTx) Commit(context.Context) error   { return nil }
func (stubTx) Rollback(context.Context) error { return nil }

type stubTransactor struct{}

func (stubTransactor) Begin(context.Context) (pgx.Tx, error) { return stubTx{}, nil }

const (
	testInternalSecret = "internal-test-secret"
	testAtRestKey      = "6368616e676520746869732070617373776f726420746f206120736563726574"
	testTransitKey     = "aaaabbbbccccddddeeeeffff00001111222233334444555566667777888899aa"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type syncFixture struct {
	guildWallets *mocks.MockGuildWalletRepository
	userWallets  *mocks.MockUserWalletRepository
	events       *mocks.MockEventRepository
	bets         *mocks.MockBetRepository
	quals        *mocks.MockQualificationRepository
	codec        *service.SecretCodec
	router       *gin.Engine
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	codec, err := service.NewSecretCodec(config.SecretsConfig{
		AtRestKey:      testAtRestKey,
		TransitKey:     testTransitKey,
		MaxUnwrapDepth: 5,
	}, zerolog.Nop())
	require.NoError(t, err)

	f := &syncFixture{
		guildWallets: mocks.NewMockGuildWalletRepository(ctrl),
		userWallets:  mocks.NewMockUserWalletRepository(ctrl),
		events:       mocks.NewMockEventRepository(ctrl),
		bets:         mocks.NewMockBetRepository(ctrl),
		quals:        mocks.NewMockQualificationRepository(ctrl),
		codec:        codec,
	}
	f.router = SetupLedgerRouter(LedgerRouterDeps{
		GuildWallets:   f.guildWallets,
		UserWallets:    f.userWallets,
		Events:         f.events,
		Bets:           f.bets,
		Qualifications: f.quals,
		Transactor:     stubTransactor{},
		Cipher:         codec,
		InternalSecret: testInternalSecret,
		Logger:         zerolog.Nop(),
	})
	return f
}

func (f *syncFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-internal-secret", testInternalSecret)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// atRestSecret encrypts a plaintext into the stored at-rest form.
func (f *syncFixture) atRestSecret(t *testing.T, plain string) *domain.SecretValue {
	t.Helper()
	v, err := f.codec.EncryptAtRest(domain.NewPlainSecret(plain))
	require.NoError(t, err)
	return &v
}

func TestSyncHandler_RejectsWithoutInternalSecret(t *testing.T) {
	f := newSyncFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/internal/guild-wallet/guild-1", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SEC_001")
}

func TestSyncHandler_GetGuildWallet(t *testing.T) {
	f := newSyncFixture(t)
	f.guildWallets.EXPECT().
		GetByGuildID(gomock.Any(), "guild-1").
		Return(&domain.GuildWallet{
			GuildID: "guild-1",
			Address: "TreasuryAddr",
			Secret:  f.atRestSecret(t, "treasury-key"),
			Network: domain.NetworkMainnet,
		}, nil)

	w := f.do(t, http.MethodGet, "/internal/guild-wallet/guild-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Wallet *ports.RemoteWallet `json:"wallet"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Wallet)
	assert.Equal(t, "TreasuryAddr", resp.Wallet.Address)

	// The secret travels transit-wrapped and unwraps back to the plaintext.
	plain, err := f.codec.UnwrapAll(domain.ParseSecretValue(resp.Wallet.Secret))
	require.NoError(t, err)
	assert.Equal(t, "treasury-key", plain)
}

func TestSyncHandler_GetGuildWallet_NoneIsExplicitNull(t *testing.T) {
	f := newSyncFixture(t)
	f.guildWallets.EXPECT().GetByGuildID(gomock.Any(), "guild-1").Return(nil, nil)

	w := f.do(t, http.MethodGet, "/internal/guild-wallet/guild-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"wallet":null}`, w.Body.String())
}

func TestSyncHandler_SyncGuildWallet_StoresAtRest(t *testing.T) {
	f := newSyncFixture(t)

	transit, err := f.codec.EncryptTransit(domain.NewPlainSecret("new-treasury-key"))
	require.NoError(t, err)

	f.guildWallets.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, wallet *domain.GuildWallet, secretWire string) error {
			assert.Equal(t, "guild-1", wallet.GuildID)
			assert.Equal(t, "TreasuryAddr", wallet.Address)

			stored := domain.ParseSecretValue(secretWire)
			assert.Equal(t, domain.SecretKindAtRest, stored.Kind)
			plain, err := f.codec.UnwrapAll(stored)
			require.NoError(t, err)
			assert.Equal(t, "new-treasury-key", plain)
			return nil
		})

	w := f.do(t, http.MethodPost, "/internal/guild-wallet-sync", ports.RemoteWallet{
		OwnerID: "guild-1",
		Address: "TreasuryAddr",
		Secret:  transit.Wire(),
		Network: "mainnet",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncHandler_SyncGuildWallet_EmptyAddressDeletes(t *testing.T) {
	f := newSyncFixture(t)
	f.guildWallets.EXPECT().Delete(gomock.Any(), "guild-1").Return(nil)

	w := f.do(t, http.MethodPost, "/internal/guild-wallet-sync", ports.RemoteWallet{
		OwnerID: "guild-1",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncHandler_SyncGuildWallet_UnrecoverableSecretStoredWithout(t *testing.T) {
	f := newSyncFixture(t)

	transit, err := f.codec.EncryptTransit(domain.NewPlainSecret("key"))
	require.NoError(t, err)
	tampered := transit.Wire()
	tampered = tampered[:len(tampered)-4] + "AAAA"

	f.guildWallets.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), "").
		Return(nil)

	w := f.do(t, http.MethodPost, "/internal/guild-wallet-sync", ports.RemoteWallet{
		OwnerID: "guild-1",
		Address: "TreasuryAddr",
		Secret:  tampered,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncHandler_GetUserWallet(t *testing.T) {
	f := newSyncFixture(t)
	f.userWallets.EXPECT().
		GetByUserID(gomock.Any(), "user-1").
		Return(&domain.UserWallet{
			UserID:  "user-1",
			Address: "UserAddr",
			Secret:  f.atRestSecret(t, "user-key"),
			Network: domain.NetworkMainnet,
		}, nil)

	w := f.do(t, http.MethodGet, "/internal/user-wallet/user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Wallet *ports.RemoteWallet `json:"wallet"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Wallet)

	plain, err := f.codec.UnwrapAll(domain.ParseSecretValue(resp.Wallet.Secret))
	require.NoError(t, err)
	assert.Equal(t, "user-key", plain)
}

func TestSyncHandler_GetEvent(t *testing.T) {
	f := newSyncFixture(t)
	eventID := uuid.New()
	f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(&domain.WagerEvent{
		ID:       eventID,
		GuildID:  "guild-1",
		Title:    "Grand Final",
		Mode:     domain.WagerModePot,
		NumSlots: 2,
		Status:   domain.EventStatusActive,
		EndsAt:   time.Now().Add(time.Hour),
	}, nil)
	f.bets.EXPECT().SlotTallies(gomock.Any(), eventID).Return([]domain.SlotTally{
		{Slot: 1, Bets: 3, Amount: 3.0},
		{Slot: 2, Bets: 1, Amount: 1.0},
	}, nil)

	w := f.do(t, http.MethodGet, "/internal/wager-event/"+eventID.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grand Final")
	assert.Contains(t, w.Body.String(), `"slots"`)
}

func TestSyncHandler_GetEvent_NotFound(t *testing.T) {
	f := newSyncFixture(t)
	eventID := uuid.New()
	f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(nil, nil)

	w := f.do(t, http.MethodGet, "/internal/wager-event/"+eventID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "WGR_001")
}

func TestSyncHandler_SyncEvent_QualifyPersists(t *testing.T) {
	f := newSyncFixture(t)
	eventID := uuid.New()

	f.quals.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q *domain.Qualification) error {
			assert.Equal(t, eventID, q.EventID)
			assert.Equal(t, "user-1", q.UserID)
			assert.Equal(t, "https://img.example/proof.png", q.ScreenshotURL)
			assert.Equal(t, domain.QualificationStatusPending, q.Status)
			return nil
		})

	w := f.do(t, http.MethodPost, "/internal/wager-event-sync", ports.EventSync{
		EventID:       eventID,
		Action:        ports.EventSyncQualify,
		UserID:        "user-1",
		Username:      "alice",
		ScreenshotURL: "https://img.example/proof.png",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func mirrorSnapshot(eventID uuid.UUID) *domain.WagerEvent {
	return &domain.WagerEvent{
		ID:                  eventID,
		GuildID:             "guild-1",
		Title:               "Grand Final",
		Mode:                domain.WagerModePot,
		NumSlots:            2,
		MaxParticipants:     8,
		CurrentParticipants: 1,
		EntryFee:            1.0,
		Status:              domain.EventStatusActive,
		// UTC() drops the monotonic clock reading so the value compares
		// equal after a JSON round-trip through the request body.
		EndsAt:              time.Now().Add(time.Hour).UTC(),
	}
}

func TestSyncHandler_SyncEvent_StatusUpdateSettlesMirror(t *testing.T) {
	f := newSyncFixture(t)
	eventID := uuid.New()
	slot := 2

	f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(mirrorSnapshot(eventID), nil)
	f.events.EXPECT().
		TransitionFromActive(gomock.Any(), eventID, domain.EventStatusCompleted, &slot).
		Return(true, nil)

	w := f.do(t, http.MethodPost, "/internal/wager-event-sync", ports.EventSync{
		EventID:     eventID,
		Action:      ports.EventSyncStatusUpdate,
		Status:      domain.EventStatusCompleted,
		WinningSlot: &slot,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncHandler_SyncEvent_StatusUpdateCreatesMirrorFromSnapshot(t *testing.T) {
	f := newSyncFixture(t)
	eventID := uuid.New()
	slot := 1
	snapshot := mirrorSnapshot(eventID)
	snapshot.Status = domain.EventStatusCompleted
	snapshot.WinningSlot = &slot

	f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(nil, nil)
	f.events.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, e *domain.WagerEvent) error {
			assert.Equal(t, eventID, e.ID)
			assert.Equal(t, domain.EventStatusCompleted, e.Status)
			require.NotNil(t, e.WinningSlot)
			assert.Equal(t, slot, *e.WinningSlot)
			return nil
		})

	w := f.do(t, http.MethodPost, "/internal/wager-event-sync", ports.EventSync{
		EventID:     eventID,
		Action:      ports.EventSyncStatusUpdate,
		Event:       snapshot,
		Status:      domain.EventStatusCompleted,
		WinningSlot: &slot,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncHandler_SyncEvent_StatusUpdateReplayLeavesSettledMirror(t *testing.T) {
	f := newSyncFixture(t)
	eventID := uuid.New()
	slot := 1
	settled := mirrorSnapshot(eventID)
	settled.Status = domain.EventStatusCompleted
	settled.WinningSlot = &slot

	f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(settled, nil)

	w := f.do(t, http.MethodPost, "/internal/wager-event-sync", ports.EventSync{
		EventID:     eventID,
		Action:      ports.EventSyncStatusUpdate,
		Status:      domain.EventStatusCancelled,
		WinningSlot: nil,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncHandler_SyncEvent_BetPersistsToMirror(t *testing.T) {
	f := newSyncFixture(t)
	eventID := uuid.New()

	f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(mirrorSnapshot(eventID), nil)
	f.bets.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ pgx.Tx, b *domain.Bet) error {
			assert.Equal(t, eventID, b.EventID)
			assert.Equal(t, "user-1", b.UserID)
			assert.Equal(t, 2, b.ChosenSlot)
			assert.Equal(t, 1.5, b.Amount)
			assert.Equal(t, domain.PaymentStatusCommitted, b.PaymentStatus)
			assert.Equal(t, "sig-abc", b.EntryTxSignature)
			return nil
		})
	f.events.EXPECT().IncrementParticipants(gomock.Any(), gomock.Any(), eventID).Return(2, nil)

	w := f.do(t, http.MethodPost, "/internal/wager-event-sync", ports.EventSync{
		EventID:   eventID,
		Action:    ports.EventSyncBet,
		UserID:    "user-1",
		Username:  "alice",
		Slot:      2,
		Amount:    1.5,
		Signature: "sig-abc",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncHandler_SyncEvent_BetCreatesMirrorFromSnapshot(t *testing.T) {
	f := newSyncFixture(t)
	eventID := uuid.New()
	snapshot := mirrorSnapshot(eventID)

	f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(nil, nil)
	f.events.EXPECT().Create(gomock.Any(), snapshot).Return(nil)
	// The snapshot already counts this bet, so no increment here.
	f.bets.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	w := f.do(t, http.MethodPost, "/internal/wager-event-sync", ports.EventSync{
		EventID: eventID,
		Action:  ports.EventSyncBet,
		Event:   snapshot,
		UserID:  "user-1",
		Slot:    1,
		Amount:  1.0,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncHandler_SyncEvent_BetReplayIsNoOp(t *testing.T) {
	f := newSyncFixture(t)
	eventID := uuid.New()

	f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(mirrorSnapshot(eventID), nil)
	f.bets.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrDuplicateBet)

	w := f.do(t, http.MethodPost, "/internal/wager-event-sync", ports.EventSync{
		EventID: eventID,
		Action:  ports.EventSyncBet,
		UserID:  "user-1",
		Slot:    1,
		Amount:  1.0,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncHandler_SyncEvent_UnknownEventWithoutSnapshotDropped(t *testing.T) {
	f := newSyncFixture(t)
	eventID := uuid.New()

	f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(nil, nil)

	w := f.do(t, http.MethodPost, "/internal/wager-event-sync", ports.EventSync{
		EventID: eventID,
		Action:  ports.EventSyncBet,
		UserID:  "user-1",
		Slot:    1,
		Amount:  1.0,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncHandler_SyncEvent_UnknownActionRejected(t *testing.T) {
	f := newSyncFixture(t)

	w := f.do(t, http.MethodPost, "/internal/wager-event-sync", map[string]any{
		"event_id": uuid.New().String(),
		"action":   "detonate",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
