// Package shell provides the listeners that react to library changes and the conversion
// between domain events and storable events for the book library demo.
//
// This package implements the "imperative shell" around the functional core: it writes
// to the console, logs, and journals domain events as storable events.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
