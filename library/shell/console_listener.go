package shell

import (
	"fmt"
	"io"

	"github.com/AntonStoeckl/library-patterns-go/library/collection"
)

// ConsoleListener prints the current titles of the library after every change.
type ConsoleListener struct {
	out io.Writer
}

// NewConsoleListener creates a ConsoleListener writing to out. It does not attach itself to any library.
func NewConsoleListener(out io.Writer) ConsoleListener {
	return ConsoleListener{out: out}
}

// LibraryChanged writes the update header followed by one " - <title>" line per book.
func (l ConsoleListener) LibraryChanged(change collection.Change) error {
	if _, err := fmt.Fprintln(l.out, "Library has been updated. Current books:"); err != nil {
		return err
	}

	for _, book := range change.Books {
		if _, err := fmt.Fprintf(l.out, " - %s\n", book.Title()); err != nil {
			return err
		}
	}

	return nil
}

var _ collection.Listener = ConsoleListener{}
