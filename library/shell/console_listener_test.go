package shell_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-patterns-go/library/collection"
	"github.com/AntonStoeckl/library-patterns-go/library/core"
	"github.com/AntonStoeckl/library-patterns-go/library/shell"
)

func givenBook(t *testing.T, kind core.Kind, id string) core.Book {
	t.Helper()

	book, err := core.NewBook(kind)
	require.NoError(t, err)
	book.SetID(id)

	return book
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func Test_ConsoleListener_PrintsCurrentTitlesOnEveryChange(t *testing.T) {
	// arrange
	out := new(bytes.Buffer)
	library := collection.New()
	library.Attach(shell.NewConsoleListener(out))

	// act
	require.NoError(t, library.Add(givenBook(t, core.FictionKind, "1")))
	require.NoError(t, library.Add(givenBook(t, core.ScienceKind, "2")))

	// assert
	expected := "Library has been updated. Current books:\n" +
		" - Fiction Book\n" +
		"Library has been updated. Current books:\n" +
		" - Fiction Book\n" +
		" - Science Book\n"

	assert.Equal(t, expected, out.String())
}

func Test_ConsoleListener_EmptyLibrary(t *testing.T) {
	out := new(bytes.Buffer)
	fiction := givenBook(t, core.FictionKind, "1")

	err := shell.NewConsoleListener(out).LibraryChanged(collection.Change{
		Event: core.BuildBookRemovedFromLibrary(fiction, fixedClock()),
		Books: core.Books{},
	})

	require.NoError(t, err)
	assert.Equal(t, "Library has been updated. Current books:\n", out.String())
}
