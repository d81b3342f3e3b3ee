package printing

import (
	"fmt"
	"io"

	"github.com/AntonStoeckl/library-patterns-go/library/core"
)

// BookPrinter is the narrow printing capability clients depend on.
type BookPrinter interface {
	PrintBook(book core.Book) error
}

// DetailedPrinter is the differently shaped collaborator the PrinterAdapter delegates to.
type DetailedPrinter interface {
	PrintDetailedBook(book core.Book) error
}

// DetailedBookPrinter writes the ID and title of a book, one line each.
type DetailedBookPrinter struct {
	out io.Writer
}

// NewDetailedBookPrinter creates a DetailedBookPrinter writing to out.
func NewDetailedBookPrinter(out io.Writer) DetailedBookPrinter {
	return DetailedBookPrinter{out: out}
}

// PrintDetailedBook writes "Book ID: <id>" and "Book Title: <title>".
func (p DetailedBookPrinter) PrintDetailedBook(book core.Book) error {
	if _, err := fmt.Fprintf(p.out, "Book ID: %s\n", book.ID()); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.out, "Book Title: %s\n", book.Title())

	return err
}

// PrinterAdapter exposes a DetailedPrinter as a BookPrinter.
type PrinterAdapter struct {
	detailedPrinter DetailedPrinter
}

// NewPrinterAdapter creates a PrinterAdapter delegating to detailedPrinter.
func NewPrinterAdapter(detailedPrinter DetailedPrinter) PrinterAdapter {
	return PrinterAdapter{detailedPrinter: detailedPrinter}
}

// PrintBook delegates to PrintDetailedBook and returns its error unchanged.
func (a PrinterAdapter) PrintBook(book core.Book) error {
	return a.detailedPrinter.PrintDetailedBook(book)
}

// PrintAll prints the books in order and stops at the first error.
func PrintAll(printer BookPrinter, books core.Books) error {
	for _, book := range books {
		if err := printer.PrintBook(book); err != nil {
			return err
		}
	}

	return nil
}

var _ BookPrinter = PrinterAdapter{}
var _ DetailedPrinter = DetailedBookPrinter{}
