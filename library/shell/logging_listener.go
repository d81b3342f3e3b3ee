package shell

import (
	"github.com/AntonStoeckl/library-patterns-go/eventstore"
	"github.com/AntonStoeckl/library-patterns-go/library/collection"
	"github.com/AntonStoeckl/library-patterns-go/library/core"
)

// LoggingListener logs every change of a library at debug level.
type LoggingListener struct {
	logger eventstore.Logger
}

// NewLoggingListener creates a LoggingListener.
func NewLoggingListener(logger eventstore.Logger) LoggingListener {
	return LoggingListener{logger: logger}
}

// LibraryChanged never fails.
func (l LoggingListener) LibraryChanged(change collection.Change) error {
	l.logger.Debug(
		LogMsgLibraryChanged,
		LogAttrEventType, change.Event.EventType(),
		LogAttrBookCount, len(change.Books),
		LogAttrTitles, core.Titles(change.Books),
	)

	return nil
}

var _ collection.Listener = LoggingListener{}
