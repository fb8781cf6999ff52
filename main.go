package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"datalens/internal/config"
	"datalens/internal/testkit"
	"datalens/ui"
	"datalens/ui/services"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	configureLogging(cfg.Log.Level)

	// Explicit bootstrap: data/ and outputs/ exist before any Analyzer runs.
	if err := cfg.EnsureDirs(); err != nil {
		logrus.WithError(err).Fatal("failed to prepare directories")
	}
	seedIfEmpty(cfg.Paths.DataDir)

	app, err := ui.NewApp(ui.Config{
		Port:      cfg.Server.Port,
		DataDir:   cfg.Paths.DataDir,
		OutputDir: cfg.Paths.OutputDir,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create dashboard")
	}

	if err := app.Start(cfg.Server.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

// seedIfEmpty drops a demo dataset into an empty data directory so a fresh
// install has something to browse.
func seedIfEmpty(dataDir string) {
	files, err := services.NewDataService(dataDir).ListSourceFiles()
	if err != nil || len(files) > 0 {
		return
	}
	if _, err := testkit.SeedDemoData(dataDir, 500); err != nil {
		logrus.WithError(err).Warn("failed to seed demo data")
		return
	}
	logrus.WithField("dir", dataDir).Info("seeded demo dataset")
}

func configureLogging(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
	logrus.SetOutput(os.Stderr)
}
