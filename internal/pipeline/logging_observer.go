package pipeline

import "log/slog"

// LoggingObserver logs every lifecycle event using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer; a nil logger means slog.Default()
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Debug("plot_lifecycle",
		"event", event.Type,
		"run_id", event.RunID,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
