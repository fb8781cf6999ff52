// Package ui is the interactive dashboard shell. It discovers source files,
// constructs an Analyzer per request, and renders summaries, charts, and the
// browsable table. All analysis lives in internal/analyzer; this package is
// presentation only.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"datalens/internal/analyzer"
	"datalens/ui/services"
)

//go:embed templates/*.html
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router    *chi.Mux
	data      *services.DataService
	outputDir string
	templates *template.Template
}

// Config holds UI application configuration
type Config struct {
	Port      string
	DataDir   string
	OutputDir string
}

// NewApp creates a new UI application
func NewApp(config Config) (*App, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		data:      services.NewDataService(config.DataDir),
		outputDir: config.OutputDir,
		templates: templates,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
	a.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
	}))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/datasets/{name}", a.handleSummary)
	a.router.Get("/datasets/{name}/charts", a.handleCharts)
	a.router.Get("/datasets/{name}/charts/{kind}.png", a.handleChartImage)
	a.router.Get("/datasets/{name}/table", a.handleTable)
}

// Start starts the HTTP server
func (a *App) Start(port string) error {
	addr := ":" + port
	logrus.WithField("addr", addr).Info("starting datalens dashboard")
	return http.ListenAndServe(addr, a.router)
}

// newAnalyzer resolves a file name and constructs a fresh Analyzer over it.
// The shell is stateless: every request gets its own Analyzer.
func (a *App) newAnalyzer(name string) (*analyzer.Analyzer, error) {
	path, err := a.data.Resolve(name)
	if err != nil {
		return nil, err
	}
	return analyzer.New(path, a.outputDir)
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		logrus.WithError(err).Error("template error")
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
