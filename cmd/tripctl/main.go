// Command tripctl computes trip metrics from a seed file and manages the database schema.
package main

import (
	"os"

	"github.com/NomadCrew/travel-timeline-backend/logger"
)

func main() {
	logger.InitLogger()
	defer func() { _ = logger.Close() }()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
