package logger

import (
	"fmt"

	"github.com/getsentry/sentry-go"
)

// A SentryLogger decorates a SkipLogger, shipping warning-and-above events
// to Sentry in addition to writing them locally.
type SentryLogger struct {
	l SkipLogger
}

// NewSentryLogger constructs a SentryLogger based off the provided ArborLogger.
func NewSentryLogger(al *ArborLogger, dsn string) Logger {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:          dsn,
		Environment:  al.env,
		IgnoreErrors: []string{"write: broken pipe"},
	})
	if err != nil {
		err = fmt.Errorf("unable to init Sentry: %s", err)
		al.Error(err.Error(), nil)
		return al
	}

	l := al.AddSkip(1 + al.Skip())
	return &SentryLogger{l: l}
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
func (sl *SentryLogger) AddSkip(i int) SkipLogger { return sl.l.AddSkip(i) }

// Debug writes a debug log.
func (sl *SentryLogger) Debug(msg string, ctx *LogContext) {
	sl.l.Debug(msg, ctx)
}

// Error writes an error log and sends it to Sentry.
func (sl *SentryLogger) Error(msg string, ctx *LogContext) {
	if sl.l.LogLevel() > LogLevelError {
		return
	}

	sl.l.Error(msg, ctx)
	sl.send(sentry.LevelError, ctx)
}

// Fatal writes a fatal log and sends it to Sentry.
func (sl *SentryLogger) Fatal(msg string, ctx *LogContext) {
	if sl.l.LogLevel() > LogLevelFatal {
		return
	}

	sl.l.Fatal(msg, ctx)
	sl.send(sentry.LevelFatal, ctx)
}

// Info writes an info log.
func (sl *SentryLogger) Info(msg string, ctx *LogContext) {
	sl.l.Info(msg, ctx)
}

// Warn writes a warning log and sends it to Sentry.
func (sl *SentryLogger) Warn(msg string, ctx *LogContext) {
	if sl.l.LogLevel() > LogLevelWarn {
		return
	}

	sl.l.Warn(msg, ctx)
	sl.send(sentry.LevelWarning, ctx)
}

// LogLevel returns the LogLevel set for the SentryLogger.
func (sl *SentryLogger) LogLevel() LogLevel { return sl.l.LogLevel() }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (sl *SentryLogger) Skip() int { return sl.l.Skip() }

// send scopes an event with the data available in ctx
// and captures it in Sentry.
func (sl *SentryLogger) send(level sentry.Level, ctx *LogContext) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		if ctx == nil {
			return
		}

		if ctx.Data != nil {
			scope.SetContext("data", fmt.Sprint(ctx.Data))
		}

		if ctx.Request != nil {
			scope.SetTag("method", ctx.Request.Method)
			scope.SetTag("path", ctx.Request.Path)
		}

		if ctx.User != nil {
			scope.SetUser(sentry.User{
				ID:    fmt.Sprint(ctx.User.GetID()),
				Email: ctx.User.GetEmail(),
			})
		}

		if ctx.Error != nil {
			sentry.CaptureException(ctx.Error)
			return
		}

		sentry.CaptureMessage(string(level) + " event")
	})
}
