// Package config provides the logging configuration for the book library demo.
//
// The demo consumes no flags or environment variables, configuration lives in code.
package config
