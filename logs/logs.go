// Package logs defines the structured logger used across the
// module and its logrus backed implementation.
package logs

import "context"

type contextKey int

// ContextKeyTraceID is the context key under which the trace id
// of an operation is kept
const ContextKeyTraceID contextKey = iota

// Fields collects the key value pairs attached to a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by any type that knows how to describe
// itself as log fields
type Loggable interface {
	Log(fields Fields)
}

// MapFields allows a map to act as a Loggable
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for key, value := range f {
		fields.Add(key, value)
	}
}

// Logger writes structured log entries. The trace id found in the
// context, if any, is added to every entry
type Logger interface {
	Debug(ctx context.Context, msg string, loggable Loggable)
	Info(ctx context.Context, msg string, loggable Loggable)
	Warn(ctx context.Context, msg string, loggable Loggable)
	Error(ctx context.Context, msg string, loggable Loggable)

	// ForClass returns a logger that tags every entry with the
	// package and the type that produced it
	ForClass(pkg, class string) Logger
}

// WithTraceID returns a copy of ctx carrying the trace id
func WithTraceID(ctx context.Context, traceID int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

// GetTraceID returns the trace id carried by ctx, or 0 if
// there is none
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	traceID, ok := ctx.Value(ContextKeyTraceID).(int64)
	if !ok {
		return 0
	}

	return traceID
}
