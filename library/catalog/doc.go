// Package catalog provides the prototype registry of the book library demo.
//
// The Registry owns one template Book per identifier and never hands it out.
// Get always returns an independent clone, so callers may mutate what they get
// without affecting the registry or any other clone.
package catalog
