package shakufu

import (
	"log/slog"

	"github.com/hogaku/shakufu/internal/logging"
)

// SetLogger configures the logger for shakufu and all its sub-packages.
// By default, shakufu produces no log output. Call SetLogger to enable
// logging. Pass nil to disable logging (restore default silent
// behavior).
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically.
//
// Log levels used by shakufu:
//   - [slog.LevelDebug]: per-render diagnostics (column counts, sizes)
//   - [slog.LevelInfo]: lifecycle events (render completed, server
//     requests)
//   - [slog.LevelWarn]: non-fatal issues (unbalanced group close,
//     unknown color or symbol)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	shakufu.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger used by shakufu. Sub-packages share
// the same logger configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
