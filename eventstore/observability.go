package eventstore

// Logger interface for operational logging, warnings, and error reporting.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

const (
	// LogMsgEventAppended is logged at debug level for every event appended to the Journal.
	LogMsgEventAppended = "event appended to journal"

	// LogAttrEventType is the log attribute key for the event type.
	LogAttrEventType = "event_type"

	// LogAttrSequenceNumber is the log attribute key for the sequence number.
	LogAttrSequenceNumber = "sequence_number"
)
