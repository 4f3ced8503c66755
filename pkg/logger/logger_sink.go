package logger

import (
	"fmt"

	"directory-api/pkg/utilities/timeutil"

	"github.com/rs/zerolog"
)

// SinkFunc receives every message emitted through a Logger, alongside its
// level and UTC timestamp. Sinks must not log through the same Logger.
type SinkFunc func(msg string, level zerolog.Level, timestamp timeutil.TimeUTC)

func AddSinkToLoggerInstance(loggerInstance *Logger, sinkFunction SinkFunc) {
	loggerInstance.sink = sinkFunction
}

func (l *Logger) activateSinkFormatted(level zerolog.Level, format string, v ...interface{}) {
	if l.sink == nil {
		return
	}
	msg := fmt.Sprintf(format, v...)
	l.activateSink(msg, level)
}
