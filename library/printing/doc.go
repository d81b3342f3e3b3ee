// Package printing adapts the detailed book printer to the narrow BookPrinter interface.
package printing
