package core

import (
	"time"
)

// BookRemovedFromLibraryEventType is the event type identifier.
const BookRemovedFromLibraryEventType = "BookRemovedFromLibrary"

// BookRemovedFromLibrary represents when a book was removed from a library's collection.
type BookRemovedFromLibrary struct {
	BookID     BookIDString
	Title      string
	Kind       string
	OccurredAt OccurredAt
}

// BuildBookRemovedFromLibrary creates a new BookRemovedFromLibrary event.
func BuildBookRemovedFromLibrary(book Book, occurredAt time.Time) BookRemovedFromLibrary {
	return BookRemovedFromLibrary{
		BookID:     book.ID(),
		Title:      book.Title(),
		Kind:       book.Kind().String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookRemovedFromLibrary) EventType() string {
	return BookRemovedFromLibraryEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRemovedFromLibrary) HasOccurredAt() time.Time {
	return e.OccurredAt
}
