package system

import (
	"context"
	"log/slog"

	"castle-defense/internal/event"
)

// EventLogger writes the event stream to a structured logger. Game over is
// logged at info, everything else at debug.
type EventLogger struct {
	log *slog.Logger
}

func NewEventLogger(log *slog.Logger, eventDispatcher *event.Dispatcher) *EventLogger {
	l := &EventLogger{log: log}
	eventDispatcher.SubscribeAll(l)
	return l
}

func (l *EventLogger) OnEvent(e event.Event) {
	level := slog.LevelDebug
	if e.Type == event.GameOver {
		level = slog.LevelInfo
	}
	if !l.log.Enabled(context.Background(), level) {
		return
	}
	l.log.Log(context.Background(), level, string(e.Type), eventAttrs(e)...)
}

func eventAttrs(e event.Event) []any {
	switch data := e.Data.(type) {
	case event.EnemyData:
		return []any{"enemy", data.EnemyID, "x", data.X, "y", data.Y, "reward", data.Reward, "castle", data.Castle}
	case event.TowerData:
		return []any{"tower", data.TowerID, "kind", data.Kind.String(), "x", data.X, "y", data.Y, "gold", data.Gold, "reason", data.Reason}
	case event.ProjectileData:
		return []any{"projectile", data.ProjectileID, "tower", data.TowerID, "target", data.TargetID, "damage", data.Damage, "t", data.At, "fired_at", data.FiredAt}
	case event.SpawnRateData:
		return []any{"interval", data.Interval}
	case event.GameOverData:
		return []any{"t", data.At}
	default:
		return nil
	}
}
