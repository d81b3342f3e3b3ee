package core

import (
	"time"
)

// BookAddedToLibraryEventType is the event type identifier.
const BookAddedToLibraryEventType = "BookAddedToLibrary"

// BookAddedToLibrary represents when a book was added to a library's collection.
type BookAddedToLibrary struct {
	BookID     BookIDString
	Title      string
	Kind       string
	OccurredAt OccurredAt
}

// BuildBookAddedToLibrary creates a new BookAddedToLibrary event.
func BuildBookAddedToLibrary(book Book, occurredAt time.Time) BookAddedToLibrary {
	return BookAddedToLibrary{
		BookID:     book.ID(),
		Title:      book.Title(),
		Kind:       book.Kind().String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookAddedToLibrary) EventType() string {
	return BookAddedToLibraryEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToLibrary) HasOccurredAt() time.Time {
	return e.OccurredAt
}
