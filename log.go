package anchor

import (
	"log/slog"
	"os"
)

// anchorLogLevel controls the log level for engine debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var anchorLogLevel = new(slog.LevelVar)

// anchorLogger is the default logger of every Context.
var anchorLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: anchorLogLevel}))

// SetVerbose enables or disables verbose/debug logging for the engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		anchorLogLevel.Set(slog.LevelDebug)
	} else {
		anchorLogLevel.Set(slog.LevelInfo)
	}
}

// anchorVerbose returns true if debug logging is enabled.
func anchorVerbose() bool {
	return anchorLogLevel.Level() <= slog.LevelDebug
}
