package shell

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-patterns-go/eventstore"
	"github.com/AntonStoeckl/library-patterns-go/library/collection"
)

// AppendsEvents defines the interface needed by the JournalListener.
type AppendsEvents interface {
	Append(storableEvents ...eventstore.StorableEvent) (eventstore.MaxSequenceNumberUint, error)
}

// JournalListener records every change of a library as a storable event.
//
// All events recorded by one JournalListener share its correlation ID.
// Each event is its own cause, there are no commands in this demo.
type JournalListener struct {
	journal       AppendsEvents
	correlationID uuid.UUID
}

// NewJournalListener creates a JournalListener appending to journal.
func NewJournalListener(journal AppendsEvents, correlationID uuid.UUID) JournalListener {
	return JournalListener{
		journal:       journal,
		correlationID: correlationID,
	}
}

// LibraryChanged converts the change's domain event and appends it.
func (l JournalListener) LibraryChanged(change collection.Change) error {
	messageID := uuid.New()
	metadata := BuildEventMetadata(messageID, messageID, l.correlationID)

	storableEvent, err := StorableEventFrom(change.Event, metadata)
	if err != nil {
		return err
	}

	_, err = l.journal.Append(storableEvent)

	return err
}

var _ collection.Listener = JournalListener{}
