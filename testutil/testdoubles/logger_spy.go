package testdoubles

import (
	"github.com/AntonStoeckl/library-patterns-go/eventstore"
)

// LoggerSpy is a Logger implementation that captures logging calls for testing.
type LoggerSpy struct {
	records     []SpyLogRecord
	recordCalls bool
}

// SpyLogRecord represents a recorded log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
}

// NewLoggerSpy creates a new LoggerSpy instance.
func NewLoggerSpy(recordCalls bool) *LoggerSpy {
	return &LoggerSpy{
		recordCalls: recordCalls,
	}
}

// Debug implements the Logger interface for testing.
func (s *LoggerSpy) Debug(msg string, args ...any) {
	s.record("debug", msg, args)
}

// Info implements the Logger interface for testing.
func (s *LoggerSpy) Info(msg string, args ...any) {
	s.record("info", msg, args)
}

// Warn implements the Logger interface for testing.
func (s *LoggerSpy) Warn(msg string, args ...any) {
	s.record("warn", msg, args)
}

// Error implements the Logger interface for testing.
func (s *LoggerSpy) Error(msg string, args ...any) {
	s.record("error", msg, args)
}

func (s *LoggerSpy) record(level string, msg string, args []any) {
	if !s.recordCalls {
		return
	}

	s.records = append(s.records, SpyLogRecord{
		Level:   level,
		Message: msg,
		Args:    args,
	})
}

// Reset clears all recorded log calls.
func (s *LoggerSpy) Reset() {
	s.records = s.records[:0]
}

// Records returns a copy of all log records in call order.
func (s *LoggerSpy) Records() []SpyLogRecord {
	return append([]SpyLogRecord(nil), s.records...)
}

// DebugCount returns how many debug logs with the specified message were recorded.
func (s *LoggerSpy) DebugCount(message string) int {
	return s.count("debug", message)
}

// HasDebugLog checks if a debug log with the specified message exists.
func (s *LoggerSpy) HasDebugLog(message string) bool {
	return s.count("debug", message) > 0
}

// HasInfoLog checks if an info log with the specified message exists.
func (s *LoggerSpy) HasInfoLog(message string) bool {
	return s.count("info", message) > 0
}

// HasErrorLog checks if an error log with the specified message exists.
func (s *LoggerSpy) HasErrorLog(message string) bool {
	return s.count("error", message) > 0
}

func (s *LoggerSpy) count(level string, message string) int {
	n := 0

	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			n++
		}
	}

	return n
}

// Compile-time check to ensure LoggerSpy implements the Logger interface.
var _ eventstore.Logger = (*LoggerSpy)(nil)
