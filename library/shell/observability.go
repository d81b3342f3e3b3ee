package shell

const (
	// LogMsgLibraryChanged is logged for every change of a library.
	LogMsgLibraryChanged = "library changed"

	// LogMsgRunStarted is logged when the demo run begins.
	LogMsgRunStarted = "library demo started"

	// LogMsgRunCompleted is logged when the demo run succeeds.
	LogMsgRunCompleted = "library demo completed"

	// LogMsgRunFailed is logged when the demo run fails.
	LogMsgRunFailed = "library demo failed"

	// LogAttrEventType is the log attribute key for the event type.
	LogAttrEventType = "event_type"

	// LogAttrBookCount is the log attribute key for the number of books in the library.
	LogAttrBookCount = "book_count"

	// LogAttrTitles is the log attribute key for the list of titles.
	LogAttrTitles = "titles"

	// LogAttrCorrelationID is the log attribute key for the correlation ID of a run.
	LogAttrCorrelationID = "correlation_id"

	// LogAttrJournaledEvents is the log attribute key for the number of journaled events.
	LogAttrJournaledEvents = "journaled_events"

	// LogAttrError is the log attribute key for errors.
	LogAttrError = "error"
)
