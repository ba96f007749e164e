package impl

import "log/slog"

// newDiscardLogger keeps use case log output out of test results.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
