// Package core contains the domain of the book library demo: books and the
// domain events that describe changes to a library's collection.
//
// Books come in a closed set of variants (Kind). Variant-specific behavior
// (title, read message) is dispatched over Kind in one place instead of being
// spread over types.
//
// All domain events implement the DomainEvent interface with EventType() and
// HasOccurredAt() methods, so they can be journaled.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
