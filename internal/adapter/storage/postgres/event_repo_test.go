package postgres

import (
	"context"
	"testing"
	"time"

	"guild-wager-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventColumnNames() []string {
	return []string{
		"id", "guild_id", "channel_id", "message_id", "title", "mode", "prize_amount", "currency", "entry_fee",
		"min_participants", "max_participants", "current_participants", "num_slots", "winning_slot", "status",
		"ends_at", "created_by", "qualification_url", "created_at",
	}
}

func newTestEvent() *domain.WagerEvent {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.WagerEvent{
		ID:              uuid.New(),
		GuildID:         "guild-1",
		ChannelID:       "chan-1",
		Title:           "finals",
		Mode:            domain.WagerModePot,
		Currency:        "SOL",
		EntryFee:        1,
		MinParticipants: 2,
		MaxParticipants: 8,
		NumSlots:        2,
		Status:          domain.EventStatusActive,
		EndsAt:          now.Add(time.Hour),
		CreatedBy:       "host-1",
		CreatedAt:       now,
	}
}

func eventRow(e *domain.WagerEvent) *pgxmock.Rows {
	return pgxmock.NewRows(eventColumnNames()).AddRow(
		e.ID, e.GuildID, e.ChannelID, e.MessageID, e.Title, string(e.Mode),
		e.PrizeAmount, e.Currency, e.EntryFee,
		e.MinParticipants, e.MaxParticipants, e.CurrentParticipants, e.NumSlots,
		e.WinningSlot, string(e.Status), e.EndsAt, e.CreatedBy, e.QualificationURL, e.CreatedAt,
	)
}

func TestEventRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	e := newTestEvent()

	mock.ExpectExec("INSERT INTO wager_events").
		WithArgs(e.ID, e.GuildID, e.ChannelID, e.MessageID, e.Title, string(e.Mode),
			e.PrizeAmount, e.Currency, e.EntryFee,
			e.MinParticipants, e.MaxParticipants, e.CurrentParticipants, e.NumSlots,
			e.WinningSlot, string(e.Status), e.EndsAt, e.CreatedBy, e.QualificationURL, e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	e := newTestEvent()

	mock.ExpectQuery("SELECT .+ FROM wager_events WHERE id").
		WithArgs(e.ID).
		WillReturnRows(eventRow(e))

	got, err := repo.GetByID(context.Background(), e.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, e.Title, got.Title)
	assert.Equal(t, domain.WagerModePot, got.Mode)
	assert.True(t, got.IsActive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM wager_events WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(eventColumnNames()))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEventRepo_IncrementParticipants(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	e := newTestEvent()

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	mock.ExpectQuery("UPDATE wager_events SET current_participants").
		WithArgs(e.ID).
		WillReturnRows(pgxmock.NewRows([]string{"current_participants"}).AddRow(3))

	count, err := repo.IncrementParticipants(context.Background(), tx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_TransitionFromActive(t *testing.T) {
	t.Run("wins the transition", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewEventRepo(mock)
		id := uuid.New()
		winning := 2

		mock.ExpectExec("UPDATE wager_events SET status").
			WithArgs(string(domain.EventStatusCompleted), &winning, id, string(domain.EventStatusActive)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.TransitionFromActive(context.Background(), id, domain.EventStatusCompleted, &winning)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("no-op when already settled", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewEventRepo(mock)
		id := uuid.New()

		mock.ExpectExec("UPDATE wager_events SET status").
			WithArgs(string(domain.EventStatusCancelled), (*int)(nil), id, string(domain.EventStatusActive)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.TransitionFromActive(context.Background(), id, domain.EventStatusCancelled, nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestEventRepo_ListExpiredActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	e := newTestEvent()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM wager_events").
		WithArgs(string(domain.EventStatusActive), now, 25).
		WillReturnRows(eventRow(e))

	events, err := repo.ListExpiredActive(context.Background(), now, 25)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, e.ID, events[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_SetMessageID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE wager_events SET message_id").
		WithArgs("msg-99", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.SetMessageID(context.Background(), id, "msg-99"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
