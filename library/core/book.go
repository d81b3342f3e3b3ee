package core

import (
	"errors"
	"fmt"
	"io"
)

// Kind is the closed set of book variants.
type Kind uint8

const (
	// FictionKind is the variant titled "Fiction Book".
	FictionKind Kind = iota + 1

	// ScienceKind is the variant titled "Science Book".
	ScienceKind
)

const (
	FictionBookTitle = "Fiction Book"
	ScienceBookTitle = "Science Book"
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case FictionKind:
		return "Fiction"
	case ScienceKind:
		return "Science"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IsValid reports whether k is one of the known variants.
func (k Kind) IsValid() bool {
	return k == FictionKind || k == ScienceKind
}

func (k Kind) title() string {
	switch k {
	case FictionKind:
		return FictionBookTitle
	case ScienceKind:
		return ScienceBookTitle
	default:
		return ""
	}
}

// Books is a slice of Book values.
type Books = []Book

// Book is a value type. Its title and kind are fixed at construction, only the ID may be assigned later.
//
// Books are comparable, two books are equal when ID, title and kind are equal.
type Book struct {
	id    BookIDString
	title string
	kind  Kind
}

// NewBook creates a book of the given variant without an ID.
func NewBook(kind Kind) (Book, error) {
	if !kind.IsValid() {
		return Book{}, fmt.Errorf("%w: %s", ErrUnknownBookKind, kind)
	}

	return Book{title: kind.title(), kind: kind}, nil
}

// NewFictionBook creates a fiction book without an ID.
func NewFictionBook() Book {
	return Book{title: FictionBookTitle, kind: FictionKind}
}

// NewScienceBook creates a science book without an ID.
func NewScienceBook() Book {
	return Book{title: ScienceBookTitle, kind: ScienceKind}
}

func (b Book) ID() BookIDString {
	return b.id
}

func (b Book) Title() string {
	return b.title
}

func (b Book) Kind() Kind {
	return b.kind
}

// SetID assigns the identifier.
func (b *Book) SetID(id BookIDString) {
	b.id = id
}

// Read writes the variant-specific read message.
func (b Book) Read(w io.Writer) error {
	switch b.kind {
	case FictionKind:
		_, err := fmt.Fprintln(w, "Reading a Fiction Book")
		return err
	case ScienceKind:
		_, err := fmt.Fprintln(w, "Reading a Science Book")
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownBookKind, b.kind)
	}
}

// Clone copies every field into a new Book of the same variant.
// The zero Book, or any book with an unknown kind, cannot be cloned.
func (b Book) Clone() (Book, error) {
	if !b.kind.IsValid() {
		return Book{}, errors.Join(ErrCloneFailed, fmt.Errorf("%w: %s", ErrUnknownBookKind, b.kind))
	}

	clone := Book{
		id:    b.id,
		title: b.title,
		kind:  b.kind,
	}

	return clone, nil
}

// Titles returns the titles of the books, in order.
func Titles(books Books) []string {
	titles := make([]string, 0, len(books))

	for _, book := range books {
		titles = append(titles, book.Title())
	}

	return titles
}
