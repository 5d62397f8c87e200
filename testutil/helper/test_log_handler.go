package helper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// TestLogHandler is a slog.Handler implementation that captures log records for testing.
type TestLogHandler struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewTestLogHandler creates a new TestLogHandler
// Switchable to log to stdout, which can be useful for debugging tests by seeing the actual log output.
func NewTestLogHandler(logToStdOut bool) *TestLogHandler {
	return &TestLogHandler{
		records:     make([]slog.Record, 0),
		logToStdout: logToStdOut,
	}
}

// Handle implements slog.Handler interface.
func (h *TestLogHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record)

	if h.logToStdout {
		textHandler := slog.NewTextHandler(os.Stdout, nil)
		_ = textHandler.Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler interface.
func (h *TestLogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true // Always enabled for testing
}

// WithAttrs implements slog.Handler interface.
func (h *TestLogHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler interface.
func (h *TestLogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// GetRecordCount returns the number of captured log records.
func (h *TestLogHandler) GetRecordCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.records)
}

// GetRecords returns a copy of all captured log records.
func (h *TestLogHandler) GetRecords() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	records := make([]slog.Record, len(h.records))
	copy(records, h.records)

	return records
}

// RecordsAtLevel returns the captured records of exactly the given level.
func (h *TestLogHandler) RecordsAtLevel(level slog.Level) []slog.Record {
	matching := make([]slog.Record, 0)
	for _, record := range h.GetRecords() {
		if record.Level == level {
			matching = append(matching, record)
		}
	}

	return matching
}

// HasMessage reports whether any captured record carries msg.
func (h *TestLogHandler) HasMessage(msg string) bool {
	for _, record := range h.GetRecords() {
		if record.Message == msg {
			return true
		}
	}

	return false
}

// Reset clears all captured log records.
func (h *TestLogHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = h.records[:0]
}

// RecordAttr returns the string form of the attribute key of record, or "" when it is absent.
func RecordAttr(record slog.Record, key string) string {
	var value string

	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == key {
			value = fmt.Sprint(attr.Value.Any())
			return false
		}
		return true
	})

	return value
}
