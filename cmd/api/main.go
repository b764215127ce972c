package main

import (
	"os"

	"github.com/yigit/academics/internal/pkg/logger"
	"github.com/yigit/academics/internal/server"
)

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Falls back to the logger set up by the logger package's init
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
