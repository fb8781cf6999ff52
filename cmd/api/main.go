package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"datalens/internal/api"
	"datalens/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	if err := cfg.EnsureDirs(); err != nil {
		logrus.WithError(err).Fatal("failed to prepare directories")
	}

	server := api.NewServer(cfg.Paths.DataDir, cfg.Paths.OutputDir)
	if err := server.Start(cfg.Server.APIPort); err != nil {
		logrus.WithError(err).Fatal("api server stopped")
	}
}
