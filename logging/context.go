package logging

import "log/slog"

// WithComponent returns a child logger tagged with a subsystem name,
// so repeated logs from one component carry the field for free.
func WithComponent(name string) *slog.Logger {
	return GetLogger().With("component", name)
}

// WithError returns a child logger carrying err as a structured field.
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
