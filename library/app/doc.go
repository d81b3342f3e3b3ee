// Package app runs the fixed demo sequence of the book library:
// prototype registry, observed collection, and adapted printing.
package app
