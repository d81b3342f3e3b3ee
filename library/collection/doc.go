// Package collection provides the observable book collection of a library.
//
// A Library notifies its attached listeners synchronously, in attachment order,
// on every Add and Remove. The notifying call returns only after every listener
// has handled the change. Listeners are attached explicitly by the caller, never
// as a side effect of constructing them.
package collection
