package main

import (
	"github.com/go-drift/drift/pkg/drift"
	"github.com/go-drift/drift/pkg/errors"

	"github.com/wayfarerhq/wayfarer/internal/logging"
)

func main() {
	// Set WAYFARER_LOG_LEVEL=debug to see detailed logs.
	if err := logging.InitializeFromEnv(); err != nil {
		// Ignore error, GetLogger will create a fallback logger
		_ = err
	}
	defer logging.Sync()

	// Route framework errors through the structured logger.
	errors.SetHandler(logging.NewFrameworkHandler())

	drift.NewApp(App()).Run()
}
