// Package testdoubles provides spies for testing the book library demo.
//
// LoggerSpy captures calls to the eventstore.Logger interface, ListenerSpy captures
// notifications delivered by a collection.Library.
package testdoubles
