package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-patterns-go/eventstore"
	"github.com/AntonStoeckl/library-patterns-go/library/catalog"
	"github.com/AntonStoeckl/library-patterns-go/library/collection"
	"github.com/AntonStoeckl/library-patterns-go/library/core"
	"github.com/AntonStoeckl/library-patterns-go/library/printing"
	"github.com/AntonStoeckl/library-patterns-go/library/shell"
)

// ErrRunFailed wraps every error that aborts a run.
var ErrRunFailed = errors.New("library demo run failed")

// Report summarizes a successful run.
type Report struct {
	CorrelationID   uuid.UUID
	Titles          []string
	JournaledEvents int
}

// Run writes the demo's console output to out and its diagnostics to logger.
//
// The sequence is fixed: load the registry, clone and read both books, add them to a
// library with an attached console listener, then print every book through the adapter.
func Run(out io.Writer, logger eventstore.Logger) (Report, error) {
	correlationID := uuid.New()
	logger.Info(shell.LogMsgRunStarted, shell.LogAttrCorrelationID, correlationID.String())

	report, err := run(out, logger, correlationID)
	if err != nil {
		logger.Error(
			shell.LogMsgRunFailed,
			shell.LogAttrCorrelationID, correlationID.String(),
			shell.LogAttrError, err.Error(),
		)

		return Report{}, errors.Join(ErrRunFailed, err)
	}

	logger.Info(
		shell.LogMsgRunCompleted,
		shell.LogAttrCorrelationID, correlationID.String(),
		shell.LogAttrTitles, report.Titles,
		shell.LogAttrJournaledEvents, report.JournaledEvents,
	)

	return report, nil
}

func run(out io.Writer, logger eventstore.Logger, correlationID uuid.UUID) (Report, error) {
	registry := catalog.NewRegistry()
	registry.Load()

	clonedFiction, err := cloneAndRead(out, registry, catalog.FictionBookID)
	if err != nil {
		return Report{}, err
	}

	clonedScience, err := cloneAndRead(out, registry, catalog.ScienceBookID)
	if err != nil {
		return Report{}, err
	}

	journal := eventstore.NewJournal(eventstore.WithLogger(logger))

	library := collection.New()
	library.Attach(shell.NewConsoleListener(out))
	library.Attach(shell.NewJournalListener(journal, correlationID))
	library.Attach(shell.NewLoggingListener(logger))

	for _, book := range []core.Book{clonedFiction, clonedScience} {
		if err = library.Add(book); err != nil {
			return Report{}, err
		}
	}

	if _, err = fmt.Fprintln(out, "Detailed book information:"); err != nil {
		return Report{}, err
	}

	printer := printing.NewPrinterAdapter(printing.NewDetailedBookPrinter(out))
	if err = printing.PrintAll(printer, library.Books()); err != nil {
		return Report{}, err
	}

	return Report{
		CorrelationID:   correlationID,
		Titles:          core.Titles(library.Books()),
		JournaledEvents: journal.Len(),
	}, nil
}

func cloneAndRead(out io.Writer, registry *catalog.Registry, id core.BookIDString) (core.Book, error) {
	book, err := registry.Get(id)
	if err != nil {
		return core.Book{}, err
	}

	if _, err = fmt.Fprintf(out, "Book: %s\n", book.Title()); err != nil {
		return core.Book{}, err
	}

	if err = book.Read(out); err != nil {
		return core.Book{}, err
	}

	return book, nil
}
