package service

import (
	"context"

	"guild-wager-platform/internal/core/domain"

	"github.com/rs/zerolog"
)

// LogNotifier emits milestone and settlement notifications as structured log
// events. The chat rendering surface sits outside this module; anything that
// consumes the log stream can render these.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) MilestoneReached(_ context.Context, event *domain.WagerEvent) error {
	n.log.Info().
		Str("event_id", event.ID.String()).
		Str("guild_id", event.GuildID).
		Str("channel_id", event.ChannelID).
		Int("participants", event.CurrentParticipants).
		Msg("event reached its minimum participant milestone")
	return nil
}

func (n *LogNotifier) EventSettled(_ context.Context, event *domain.WagerEvent, reason domain.SettleReason) error {
	e := n.log.Info().
		Str("event_id", event.ID.String()).
		Str("guild_id", event.GuildID).
		Str("status", string(event.Status)).
		Str("reason", string(reason))
	if event.WinningSlot != nil {
		e = e.Int("winning_slot", *event.WinningSlot)
	}
	e.Msg("event settled")
	return nil
}
