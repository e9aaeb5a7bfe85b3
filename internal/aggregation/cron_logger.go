package aggregation

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

var _ cron.Logger = cronLogger{}

func newCronLogger(logger *slog.Logger) cronLogger {
	return cronLogger{logger: logger}
}

// Info is used by cron for routine scheduling chatter, so it logs at debug.
func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("[Cron] "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("[Cron] "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
