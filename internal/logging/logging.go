package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LogFileName имя файла журнала одного запуска
func LogFileName(now time.Time) string {
	return fmt.Sprintf("inventario_%s.log", now.Format("20060102_150405"))
}

// ParseLevel разбирает уровень логирования; пустая строка означает INFO
func ParseLevel(level string) (slog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// New создает структурированный логгер.
// format: "json" (по умолчанию) или "text". Если file указывает на каталог,
// в нем создается файл журнала с отметкой времени; иначе file - путь к файлу.
// Возвращаемый io.Closer закрывает файл журнала.
func New(level, format, file string, stdout io.Writer) (*slog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = stdout
	var closer io.Closer = nopCloser{}

	if file != "" {
		path := file
		if info, statErr := os.Stat(file); statErr == nil && info.IsDir() {
			path = filepath.Join(file, LogFileName(time.Now()))
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = io.MultiWriter(stdout, f)
		closer = f
	}

	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: true, // Добавляем информацию об источнике (файл, строка)
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	return slog.New(handler), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
