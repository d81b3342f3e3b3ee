package testdoubles

import (
	"github.com/AntonStoeckl/library-patterns-go/library/collection"
)

// ListenerSpy is a collection.Listener that records every change it receives.
//
// Several spies can share one CallLog to verify the order in which they were notified.
type ListenerSpy struct {
	name    string
	changes []collection.Change
	callLog *CallLog
	err     error
}

// CallLog records the names of notified spies in notification order.
type CallLog struct {
	names []string
}

// Names returns the recorded spy names.
func (c *CallLog) Names() []string {
	return append([]string(nil), c.names...)
}

// NewListenerSpy creates a ListenerSpy. callLog may be nil.
func NewListenerSpy(name string, callLog *CallLog) *ListenerSpy {
	return &ListenerSpy{
		name:    name,
		callLog: callLog,
	}
}

// FailWith makes every following notification fail with err.
func (s *ListenerSpy) FailWith(err error) *ListenerSpy {
	s.err = err

	return s
}

// LibraryChanged implements the collection.Listener interface for testing.
func (s *ListenerSpy) LibraryChanged(change collection.Change) error {
	s.changes = append(s.changes, change)

	if s.callLog != nil {
		s.callLog.names = append(s.callLog.names, s.name)
	}

	return s.err
}

// Changes returns all received changes.
func (s *ListenerSpy) Changes() []collection.Change {
	return append([]collection.Change(nil), s.changes...)
}

// CallCount returns how often the spy was notified.
func (s *ListenerSpy) CallCount() int {
	return len(s.changes)
}

var _ collection.Listener = (*ListenerSpy)(nil)
