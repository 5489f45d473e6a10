package observability

import (
	"log/slog"
	"os"
)

// NewLogger returns the process-wide structured logger. JSON output in
// production, text for local development.
func NewLogger(production bool) *slog.Logger {
	if production {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
