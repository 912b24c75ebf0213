package main

import (
	"os"

	"github.com/sophiaacademy/careerguide/internal/pkg/logger"
	"github.com/sophiaacademy/careerguide/internal/server"
)

// @title Sophia Academy Career Guidance API
// @version 1.0
// @description Collects SSLC career aptitude questionnaires, scores them and serves PDF guidance reports.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /api
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Details are logged by the setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
