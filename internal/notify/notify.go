// Package notify carries user-facing notifications out of the core. Sinks are
// fire-and-forget: the core never consumes a return value.
package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Kind classifies a notification for presentation.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Sink receives notifications after the core completes a state transition.
type Sink interface {
	Notify(ctx context.Context, message string, kind Kind)
}

// LogSink writes notifications to the structured log. It is the default sink
// when no presentation layer is attached.
type LogSink struct {
	Logger *logrus.Logger
}

// Notify logs the notification at a level matching its kind.
func (s *LogSink) Notify(ctx context.Context, message string, kind Kind) {
	entry := s.Logger.WithField("notificationKind", string(kind))
	switch kind {
	case KindError:
		entry.Error(message)
	default:
		entry.Info(message)
	}
}

// NopSink discards notifications.
type NopSink struct{}

func (NopSink) Notify(ctx context.Context, message string, kind Kind) {}
