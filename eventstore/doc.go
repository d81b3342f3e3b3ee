// Package eventstore provides an in-memory journal of storable events
// for the book library demo.
//
// Events are kept for the lifetime of the process only. There is no persistence.
//
// Key types:
//   - StorableEvent: an event serialized to JSON, agnostic of the domain event types
//   - Filter: criteria for querying events back out of the Journal
//   - Journal: an append-only, sequence-numbered list of StorableEvents
//
// Common usage pattern:
//
//	filter := BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(core.BookAddedToLibraryEventType).
//		AndAnyPredicateOf(P("BookID", "1")).
//		Finalize()
//
//	events, maxSeq := journal.Query(filter)
//
//	newEvent, err := eventstore.BuildStorableEvent(eventType, time.Now(), payload, metadata)
//	maxSeq, err = journal.Append(newEvent)
package eventstore
