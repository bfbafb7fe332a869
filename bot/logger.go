package bot

import (
	"fmt"
	"log/slog"
)

// Logger routes a third-party library's internal messages into the process
// slog stream, tagged with the component they came from.
type Logger struct {
	log *slog.Logger
}

func NewLogger(component string) Logger {
	return Logger{
		log: slog.Default().With("component", component),
	}
}

func (l Logger) Debugf(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

func (l Logger) Errorf(format string, args ...any) {
	l.log.Error(fmt.Sprintf(format, args...))
}
