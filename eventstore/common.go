package eventstore

import (
	"errors"
)

var ErrNoEventsSupplied = errors.New("no events supplied to append")

// MaxSequenceNumberUint is a type alias for uint, representing the highest sequence number in the Journal
// (or in a query result).
type MaxSequenceNumberUint = uint
