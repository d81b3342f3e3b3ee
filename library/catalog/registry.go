package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/AntonStoeckl/library-patterns-go/library/core"
)

// ErrEmptyBookID is returned when registering a prototype without an identifier.
var ErrEmptyBookID = errors.New("empty book id supplied")

const (
	// FictionBookID is the identifier Load seeds the fiction prototype under.
	FictionBookID = "1"

	// ScienceBookID is the identifier Load seeds the science prototype under.
	ScienceBookID = "2"
)

// Registry maps identifiers to prototype books.
type Registry struct {
	prototypes map[core.BookIDString]core.Book
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		prototypes: make(map[core.BookIDString]core.Book),
	}
}

// Load seeds the registry with the fiction book under FictionBookID and the science book under ScienceBookID.
// Calling it again resets those two entries to their initial state.
func (r *Registry) Load() {
	fiction := core.NewFictionBook()
	fiction.SetID(FictionBookID)
	r.prototypes[fiction.ID()] = fiction

	science := core.NewScienceBook()
	science.SetID(ScienceBookID)
	r.prototypes[science.ID()] = science
}

// Register stores a copy of the book as prototype under id. The book's own ID is overwritten with id.
func (r *Registry) Register(id core.BookIDString, book core.Book) error {
	if id == "" {
		return ErrEmptyBookID
	}

	prototype, err := book.Clone()
	if err != nil {
		return err
	}

	prototype.SetID(id)
	r.prototypes[id] = prototype

	return nil
}

// Get returns a fresh clone of the prototype stored under id.
func (r *Registry) Get(id core.BookIDString) (core.Book, error) {
	prototype, ok := r.prototypes[id]
	if !ok {
		return core.Book{}, fmt.Errorf("%w: id %q", core.ErrBookNotFound, id)
	}

	clone, err := prototype.Clone()
	if err != nil {
		return core.Book{}, fmt.Errorf("getting book %q: %w", id, err)
	}

	return clone, nil
}

// IDs returns the registered identifiers in ascending order.
func (r *Registry) IDs() []core.BookIDString {
	ids := make([]core.BookIDString, 0, len(r.prototypes))

	for id := range r.prototypes {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}
