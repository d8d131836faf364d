package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Severity важность события прогона
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Sink принимает события прогона
type Sink interface {
	Log(message string, severity Severity)
}

// Event событие, сохраненное MemorySink
type Event struct {
	Time     time.Time `json:"time"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
}

// SlogSink пересылает события в slog
type SlogSink struct {
	logger *slog.Logger
	attrs  []any
}

// NewSlogSink создает sink поверх логгера; attrs добавляются к каждой записи
func NewSlogSink(logger *slog.Logger, attrs ...any) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger, attrs: attrs}
}

// Log пишет событие с уровнем по важности
func (s *SlogSink) Log(message string, severity Severity) {
	attrs := append([]any{"severity", string(severity)}, s.attrs...)
	s.logger.Log(context.Background(), severity.Level(), message, attrs...)
}

// Level уровень slog для важности события
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MemorySink хранит события в памяти
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// NewMemorySink создает пустой MemorySink
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Log сохраняет событие
func (m *MemorySink) Log(message string, severity Severity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, Event{Time: time.Now(), Message: message, Severity: severity})
}

// Events возвращает копию сохраненных событий
func (m *MemorySink) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	events := make([]Event, len(m.events))
	copy(events, m.events)
	return events
}

// MultiSink рассылает события во все вложенные sink
type MultiSink []Sink

// Log передает событие каждому sink по порядку
func (ms MultiSink) Log(message string, severity Severity) {
	for _, s := range ms {
		if s != nil {
			s.Log(message, severity)
		}
	}
}
