package collection_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-patterns-go/library/collection"
	"github.com/AntonStoeckl/library-patterns-go/library/core"
	"github.com/AntonStoeckl/library-patterns-go/testutil/testdoubles"
)

var errListenerBroken = errors.New("listener broken")

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

func Test_Library_Add_AppendsAsLastElement(t *testing.T) {
	// arrange
	library := collection.New()
	fiction := givenBook(t, core.FictionKind, "1")
	science := givenBook(t, core.ScienceKind, "2")
	require.NoError(t, library.Add(fiction))

	// act
	err := library.Add(science)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.Books{fiction, science}, library.Books())
	assert.Equal(t, 2, library.Len())
}

func Test_Library_Add_NotifiesEachListenerOnceInAttachmentOrder(t *testing.T) {
	// arrange
	callLog := new(testdoubles.CallLog)
	first := testdoubles.NewListenerSpy("first", callLog)
	second := testdoubles.NewListenerSpy("second", callLog)

	library := collection.New(collection.WithClock(fixedClock))
	library.Attach(first)
	library.Attach(second)

	fiction := givenBook(t, core.FictionKind, "1")

	// act
	err := library.Add(fiction)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, callLog.Names())
	assert.Equal(t, 1, first.CallCount())
	assert.Equal(t, 1, second.CallCount())

	change := first.Changes()[0]
	assert.Equal(t, core.BuildBookAddedToLibrary(fiction, fixedClock()), change.Event)
	assert.Equal(t, core.Books{fiction}, change.Books)
}

func Test_Library_Add_SecondNotificationReportsBothBooksInInsertionOrder(t *testing.T) {
	spy := testdoubles.NewListenerSpy("spy", nil)
	library := collection.New()
	library.Attach(spy)

	require.NoError(t, library.Add(givenBook(t, core.FictionKind, "1")))
	require.NoError(t, library.Add(givenBook(t, core.ScienceKind, "2")))

	require.Equal(t, 2, spy.CallCount())
	assert.Equal(t, []string{"Fiction Book"}, core.Titles(spy.Changes()[0].Books))
	assert.Equal(t, []string{"Fiction Book", "Science Book"}, core.Titles(spy.Changes()[1].Books))
}

func Test_Library_Add_AttachIsNeverImplicit(t *testing.T) {
	spy := testdoubles.NewListenerSpy("spy", nil)
	library := collection.New()

	require.NoError(t, library.Add(givenBook(t, core.FictionKind, "1")))

	assert.Zero(t, spy.CallCount())
}

func Test_Library_Remove_ExcludesExactlyThatBook(t *testing.T) {
	// arrange
	spy := testdoubles.NewListenerSpy("spy", nil)
	library := collection.New(collection.WithClock(fixedClock))
	library.Attach(spy)

	fiction := givenBook(t, core.FictionKind, "1")
	science := givenBook(t, core.ScienceKind, "2")
	require.NoError(t, library.Add(fiction))
	require.NoError(t, library.Add(science))
	require.NoError(t, library.Add(fiction))

	// act
	err := library.Remove(fiction)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.Books{science, fiction}, library.Books())
	require.Equal(t, 4, spy.CallCount())

	change := spy.Changes()[3]
	assert.Equal(t, core.BuildBookRemovedFromLibrary(fiction, fixedClock()), change.Event)
	assert.Equal(t, core.Books{science, fiction}, change.Books)
}

func Test_Library_Remove_AbsentBook(t *testing.T) {
	// arrange
	spy := testdoubles.NewListenerSpy("spy", nil)
	library := collection.New()
	library.Attach(spy)

	fiction := givenBook(t, core.FictionKind, "1")
	require.NoError(t, library.Add(fiction))

	// act
	err := library.Remove(givenBook(t, core.FictionKind, "other"))

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotInLibrary)
	assert.Equal(t, core.Books{fiction}, library.Books())
	assert.Equal(t, 1, spy.CallCount())
}

func Test_Library_Books_IsReadOnlyCopy(t *testing.T) {
	library := collection.New()
	require.NoError(t, library.Add(givenBook(t, core.FictionKind, "1")))

	books := library.Books()
	books[0].SetID("mutated")

	assert.Equal(t, "1", library.Books()[0].ID())
}

func Test_Library_ListenerFailure_StopsDeliveryAndPropagates(t *testing.T) {
	// arrange
	callLog := new(testdoubles.CallLog)
	failing := testdoubles.NewListenerSpy("failing", callLog).FailWith(errListenerBroken)
	after := testdoubles.NewListenerSpy("after", callLog)

	library := collection.New()
	library.Attach(failing)
	library.Attach(after)

	fiction := givenBook(t, core.FictionKind, "1")

	// act
	err := library.Add(fiction)

	// assert
	assert.ErrorIs(t, err, collection.ErrNotifyingListenerFailed)
	assert.ErrorIs(t, err, errListenerBroken)
	assert.Equal(t, []string{"failing"}, callLog.Names())
	assert.Equal(t, core.Books{fiction}, library.Books())
}

func Test_Library_Detach(t *testing.T) {
	// arrange
	kept := testdoubles.NewListenerSpy("kept", nil)
	detached := testdoubles.NewListenerSpy("detached", nil)

	library := collection.New()
	library.Attach(kept)
	id := library.Attach(detached)

	// act
	err := library.Detach(id)
	require.NoError(t, err)
	require.NoError(t, library.Add(givenBook(t, core.FictionKind, "1")))

	// assert
	assert.Equal(t, 1, kept.CallCount())
	assert.Zero(t, detached.CallCount())
	assert.ErrorIs(t, library.Detach(id), collection.ErrListenerNotAttached)
}

func Test_ListenerFunc(t *testing.T) {
	var received []collection.Change

	library := collection.New()
	library.Attach(collection.ListenerFunc(func(change collection.Change) error {
		received = append(received, change)
		return nil
	}))

	require.NoError(t, library.Add(givenBook(t, core.ScienceKind, "2")))

	require.Len(t, received, 1)
	assert.Equal(t, core.BookAddedToLibraryEventType, received[0].Event.EventType())
}
