package printing_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-patterns-go/library/core"
	"github.com/AntonStoeckl/library-patterns-go/library/printing"
)

var errPrinterJammed = errors.New("printer jammed")

type detailedPrinterStub struct {
	printed []core.Book
	failOn  string
}

func (s *detailedPrinterStub) PrintDetailedBook(book core.Book) error {
	if book.ID() == s.failOn {
		return errPrinterJammed
	}

	s.printed = append(s.printed, book)

	return nil
}

func givenBook(kind core.Kind, id string) core.Book {
	book, _ := core.NewBook(kind)
	book.SetID(id)

	return book
}

func Test_DetailedBookPrinter_PrintDetailedBook(t *testing.T) {
	out := new(bytes.Buffer)

	err := printing.NewDetailedBookPrinter(out).PrintDetailedBook(givenBook(core.FictionKind, "1"))

	require.NoError(t, err)
	assert.Equal(t, "Book ID: 1\nBook Title: Fiction Book\n", out.String())
}

func Test_PrinterAdapter_PrintBook_DelegatesToDetailedPrinter(t *testing.T) {
	// arrange
	out := new(bytes.Buffer)
	adapter := printing.NewPrinterAdapter(printing.NewDetailedBookPrinter(out))

	// act
	err := adapter.PrintBook(givenBook(core.ScienceKind, "2"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Book ID: 2\nBook Title: Science Book\n", out.String())
}

func Test_PrinterAdapter_PrintBook_PassesCollaboratorErrorThrough(t *testing.T) {
	stub := &detailedPrinterStub{failOn: "1"}
	adapter := printing.NewPrinterAdapter(stub)

	err := adapter.PrintBook(givenBook(core.FictionKind, "1"))

	assert.ErrorIs(t, err, errPrinterJammed)
	assert.Empty(t, stub.printed)
}

func Test_PrintAll_PrintsInOrder(t *testing.T) {
	// arrange
	out := new(bytes.Buffer)
	adapter := printing.NewPrinterAdapter(printing.NewDetailedBookPrinter(out))
	books := core.Books{givenBook(core.FictionKind, "1"), givenBook(core.ScienceKind, "2")}

	// act
	err := printing.PrintAll(adapter, books)

	// assert
	require.NoError(t, err)
	assert.Equal(
		t,
		"Book ID: 1\nBook Title: Fiction Book\nBook ID: 2\nBook Title: Science Book\n",
		out.String(),
	)
}

func Test_PrintAll_StopsAtFirstError(t *testing.T) {
	stub := &detailedPrinterStub{failOn: "2"}
	books := core.Books{
		givenBook(core.FictionKind, "1"),
		givenBook(core.ScienceKind, "2"),
		givenBook(core.FictionKind, "3"),
	}

	err := printing.PrintAll(printing.NewPrinterAdapter(stub), books)

	assert.ErrorIs(t, err, errPrinterJammed)
	require.Len(t, stub.printed, 1)
	assert.Equal(t, "1", stub.printed[0].ID())
}
