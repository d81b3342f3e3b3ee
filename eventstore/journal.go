package eventstore

import (
	"slices"
)

// Journal is an append-only, in-memory list of StorableEvents.
//
// It assigns a strictly increasing SequenceNumber (starting at 1) to each appended event.
// It is not safe for concurrent use, the library demo runs on a single goroutine.
type Journal struct {
	events StorableEvents
	logger Logger
}

// Option defines a functional option for configuring a Journal.
type Option func(*Journal)

// WithLogger sets the logger for the Journal.
func WithLogger(logger Logger) Option {
	return func(j *Journal) {
		j.logger = logger
	}
}

// NewJournal creates an empty Journal.
func NewJournal(options ...Option) *Journal {
	j := &Journal{
		events: make(StorableEvents, 0),
	}

	for _, option := range options {
		option(j)
	}

	return j
}

// Append stores the events in the given order and returns the new max sequence number.
func (j *Journal) Append(storableEvents ...StorableEvent) (MaxSequenceNumberUint, error) {
	if len(storableEvents) == 0 {
		return j.maxSequenceNumber(), ErrNoEventsSupplied
	}

	for _, event := range storableEvents {
		event.SequenceNumber = j.maxSequenceNumber() + 1
		event.PayloadJSON = slices.Clone(event.PayloadJSON)
		event.MetadataJSON = slices.Clone(event.MetadataJSON)
		j.events = append(j.events, event)

		if j.logger != nil {
			j.logger.Debug(LogMsgEventAppended,
				LogAttrEventType, event.EventType,
				LogAttrSequenceNumber, event.SequenceNumber,
			)
		}
	}

	return j.maxSequenceNumber(), nil
}

// Query returns copies of all events matching the filter, in sequence order,
// plus the max sequence number among them (0 if none matched).
func (j *Journal) Query(filter Filter) (StorableEvents, MaxSequenceNumberUint) {
	result := make(StorableEvents, 0)
	var maxSequenceNumber MaxSequenceNumberUint

	for _, event := range j.events {
		if !filter.Matches(event) {
			continue
		}

		event.PayloadJSON = slices.Clone(event.PayloadJSON)
		event.MetadataJSON = slices.Clone(event.MetadataJSON)
		result = append(result, event)
		maxSequenceNumber = event.SequenceNumber
	}

	return result, maxSequenceNumber
}

// Len returns the number of events in the Journal.
func (j *Journal) Len() int {
	return len(j.events)
}

func (j *Journal) maxSequenceNumber() MaxSequenceNumberUint {
	if len(j.events) == 0 {
		return 0
	}

	return j.events[len(j.events)-1].SequenceNumber
}
