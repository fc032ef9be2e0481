package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// slogLogger adapts a slog.Logger to the Logger interface.
type slogLogger struct {
	log    *slog.Logger
	closer io.Closer
}

// NewText returns a logger writing human-readable output to w. Colors are
// enabled only when w is a terminal.
func NewText(w io.Writer, level Level) Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:      slogLevel(level),
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    noColor,
	})
	return &slogLogger{log: slog.New(handler)}
}

// NewJSON returns a logger writing one JSON object per record to w.
func NewJSON(w io.Writer, level Level) Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slogLevel(level),
	})
	return &slogLogger{log: slog.New(handler)}
}

// NewFile returns a JSON logger appending to the file at path, creating it
// and its parent directory as needed. Closing the logger closes the file.
func NewFile(path string, level Level) (Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: slogLevel(level),
	})
	return &slogLogger{log: slog.New(handler), closer: file}, nil
}

func (l *slogLogger) Debug(msg string, fields Fields) {
	l.log.Debug(msg, attrs(fields)...)
}

func (l *slogLogger) Info(msg string, fields Fields) {
	l.log.Info(msg, attrs(fields)...)
}

func (l *slogLogger) Warn(msg string, fields Fields) {
	l.log.Warn(msg, attrs(fields)...)
}

func (l *slogLogger) Error(msg string, err error, fields Fields) {
	args := attrs(fields)
	if err != nil {
		args = append(args, slog.Any("error", err))
	}
	l.log.Error(msg, args...)
}

func (l *slogLogger) WithFields(fields Fields) Logger {
	return &slogLogger{log: l.log.With(attrs(fields)...), closer: l.closer}
}

func (l *slogLogger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func attrs(fields Fields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return args
}

func slogLevel(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
