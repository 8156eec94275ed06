package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLoggerProperties configures a logger built with NewLogrus
type LogrusLoggerProperties struct {
	// Level is the minimum level of the entries that are written
	Level logrus.Level

	// Output is where entries are written. Defaults to os.Stderr
	Output io.Writer

	// Formatter of the entries. Defaults to a logrus.TextFormatter
	Formatter logrus.Formatter
}

type logrusFields logrus.Fields

func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrus creates a Logger that writes through logrus
func NewLogrus(props LogrusLoggerProperties) Logger {
	if props.Output == nil {
		props.Output = os.Stderr
	}
	if props.Formatter == nil {
		props.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	logger := logrus.New()
	logger.SetLevel(props.Level)
	logger.SetOutput(props.Output)
	logger.SetFormatter(props.Formatter)

	return &logrusLogger{entry: logrus.NewEntry(logger)}
}

func (l *logrusLogger) Debug(ctx context.Context, msg string, loggable Loggable) {
	l.log(ctx, logrus.DebugLevel, msg, loggable)
}

func (l *logrusLogger) Info(ctx context.Context, msg string, loggable Loggable) {
	l.log(ctx, logrus.InfoLevel, msg, loggable)
}

func (l *logrusLogger) Warn(ctx context.Context, msg string, loggable Loggable) {
	l.log(ctx, logrus.WarnLevel, msg, loggable)
}

func (l *logrusLogger) Error(ctx context.Context, msg string, loggable Loggable) {
	l.log(ctx, logrus.ErrorLevel, msg, loggable)
}

func (l *logrusLogger) ForClass(pkg, class string) Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields{
		"package": pkg,
		"class":   class,
	})}
}

func (l *logrusLogger) log(ctx context.Context, level logrus.Level, msg string, loggable Loggable) {
	if !l.entry.Logger.IsLevelEnabled(level) {
		return
	}

	fields := make(logrusFields)
	if loggable != nil {
		loggable.Log(fields)
	}
	if traceID := GetTraceID(ctx); traceID != 0 {
		fields.Add("trace_id", traceID)
	}

	l.entry.WithFields(logrus.Fields(fields)).Log(level, msg)
}
