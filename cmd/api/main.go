package main

import (
	"os"

	"github.com/ayeshchamikara/gradepoint/internal/pkg/logger"
	"github.com/ayeshchamikara/gradepoint/internal/server"
)

// @title GradePoint API
// @version 1.0
// @description Local GPA tracker serving a single-page UI over an embedded store

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
