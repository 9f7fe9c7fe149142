package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

var (
	level = new(slog.LevelVar)
	log   = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
)

// Setup replaces the default stderr logger. With logFile set, records are
// also appended to that file as JSON. The returned func closes the file.
func Setup(debug bool, logFile string) (func() error, error) {
	if debug {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(os.Stderr, opts)}
	closeFn := func() error { return nil }

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return closeFn, errors.Wrap(err, "open log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
		closeFn = f.Close
	}

	log = slog.New(slogmulti.Fanout(handlers...))
	return closeFn, nil
}

func D(fm string, a ...any) {
	log.Debug(fmt.Sprintf(fm, a...))
}

func I(fm string, a ...any) {
	log.Info(fmt.Sprintf(fm, a...))
}

func W(fm string, a ...any) {
	log.Warn(fmt.Sprintf(fm, a...))
}

func E(fm string, a ...any) {
	log.Error(fmt.Sprintf(fm, a...))
}
