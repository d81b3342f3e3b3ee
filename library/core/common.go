package core

import (
	"errors"
	"time"
)

var (
	// ErrBookNotFound is returned when no prototype is registered under the requested identifier.
	ErrBookNotFound = errors.New("book not found")

	// ErrCloneFailed is returned when a book cannot be copied into an independent instance.
	ErrCloneFailed = errors.New("cloning book failed")

	// ErrUnknownBookKind is returned for a Kind outside the known variants.
	ErrUnknownBookKind = errors.New("unknown book kind")

	// ErrBookNotInLibrary is returned when removing a book that the library does not hold.
	ErrBookNotInLibrary = errors.New("book not in library")
)

// BookIDString represents a book identifier
type BookIDString = string

// OccurredAt represents when an event occurred
type OccurredAt = time.Time

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}
