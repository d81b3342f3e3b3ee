package collection

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/AntonStoeckl/library-patterns-go/library/core"
)

var (
	// ErrNotifyingListenerFailed is returned when a listener fails to handle a change.
	ErrNotifyingListenerFailed = errors.New("notifying listener failed")

	// ErrListenerNotAttached is returned when detaching an unknown ListenerID.
	ErrListenerNotAttached = errors.New("listener not attached")
)

// Change is what listeners receive after each mutation.
type Change struct {
	Event core.DomainEvent

	// Books is the listener's own copy of the collection after the mutation.
	Books core.Books
}

// Listener handles changes of a Library.
type Listener interface {
	LibraryChanged(change Change) error
}

// ListenerFunc adapts an ordinary function to the Listener interface.
type ListenerFunc func(change Change) error

// LibraryChanged calls f(change).
func (f ListenerFunc) LibraryChanged(change Change) error {
	return f(change)
}

// ListenerID is the handle returned by Attach.
type ListenerID uint

type registration struct {
	id       ListenerID
	listener Listener
}

// Library is an ordered collection of books that notifies attached listeners of every change.
// It is not safe for concurrent use.
type Library struct {
	books     core.Books
	listeners []registration
	lastID    ListenerID
	now       func() time.Time
}

// Option defines a functional option for configuring a Library.
type Option func(*Library)

// WithClock sets the time source used to stamp domain events.
func WithClock(now func() time.Time) Option {
	return func(l *Library) {
		l.now = now
	}
}

// New creates an empty Library without listeners.
func New(options ...Option) *Library {
	l := &Library{
		books: make(core.Books, 0),
		now:   time.Now,
	}

	for _, option := range options {
		option(l)
	}

	return l
}

// Attach registers a listener for all future changes and returns its handle.
// Listeners are notified in the order they were attached.
func (l *Library) Attach(listener Listener) ListenerID {
	l.lastID++
	l.listeners = append(l.listeners, registration{id: l.lastID, listener: listener})

	return l.lastID
}

// Detach unregisters the listener with the given handle.
func (l *Library) Detach(id ListenerID) error {
	i := slices.IndexFunc(l.listeners, func(r registration) bool { return r.id == id })
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrListenerNotAttached, id)
	}

	l.listeners = slices.Delete(l.listeners, i, i+1)

	return nil
}

// Add appends the book and notifies all listeners before returning.
//
// If a listener fails, the remaining listeners are not notified and the error is returned.
// The book stays added.
func (l *Library) Add(book core.Book) error {
	l.books = append(l.books, book)

	return l.notifyAll(core.BuildBookAddedToLibrary(book, l.now()))
}

// Remove removes the first book equal to the given one and notifies all listeners before returning.
// It returns core.ErrBookNotInLibrary, without notifying, if there is no such book.
//
// Listener failures are handled like in Add.
func (l *Library) Remove(book core.Book) error {
	i := slices.Index(l.books, book)
	if i < 0 {
		return fmt.Errorf("%w: id %q, title %q", core.ErrBookNotInLibrary, book.ID(), book.Title())
	}

	l.books = slices.Delete(l.books, i, i+1)

	return l.notifyAll(core.BuildBookRemovedFromLibrary(book, l.now()))
}

// Books returns a copy of the current contents, in insertion order.
func (l *Library) Books() core.Books {
	return slices.Clone(l.books)
}

// Len returns the number of books.
func (l *Library) Len() int {
	return len(l.books)
}

func (l *Library) notifyAll(event core.DomainEvent) error {
	for _, r := range l.listeners {
		change := Change{
			Event: event,
			Books: l.Books(),
		}

		if err := r.listener.LibraryChanged(change); err != nil {
			return errors.Join(ErrNotifyingListenerFailed, err)
		}
	}

	return nil
}
