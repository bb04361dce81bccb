package reminders

import (
	"context"
	"time"

	"github.com/calendar-todo/backend/internal/model"
	"go.uber.org/zap"
)

// Notifier delivers a single reminder. Implementations decide the channel;
// the sender only decides when to fire.
type Notifier interface {
	Notify(ctx context.Context, occurrence *model.Occurrence, lead time.Duration) error
}

// LogNotifier writes reminders to the application log. It is the default
// delivery channel until a push or mail notifier is plugged in.
type LogNotifier struct {
	logger *zap.SugaredLogger
}

func NewLogNotifier(logger *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, occurrence *model.Occurrence, lead time.Duration) error {
	n.logger.Infow("reminder",
		"occurrence_id", occurrence.ID,
		"title", occurrence.Title,
		"starts_at", occurrence.StartTime,
		"lead", lead,
	)

	return nil
}
