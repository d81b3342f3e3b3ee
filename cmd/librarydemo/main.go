package main

import (
	"os"

	"github.com/AntonStoeckl/library-patterns-go/library/app"
	"github.com/AntonStoeckl/library-patterns-go/library/shell/config"
)

func main() {
	logger := config.NewLogger(os.Stderr, config.DefaultLogLevel())

	if _, err := app.Run(os.Stdout, logger); err != nil {
		os.Exit(1)
	}
}
