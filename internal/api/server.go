// Package api exposes the analyzer over a JSON API for programmatic
// clients, alongside the html dashboard in ui.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"datalens/domain/chart"
	"datalens/domain/core"
	"datalens/internal/analyzer"
	"datalens/ui/services"
)

// Server is the JSON API over the data directory.
type Server struct {
	engine    *gin.Engine
	data      *services.DataService
	outputDir string
}

// NewServer builds the API router.
func NewServer(dataDir, outputDir string) *Server {
	s := &Server{
		engine:    gin.New(),
		data:      services.NewDataService(dataDir),
		outputDir: outputDir,
	}
	s.engine.Use(gin.Recovery())

	s.engine.GET("/api/datasets", s.handleListDatasets)
	s.engine.GET("/api/datasets/:name/summary", s.handleSummary)
	s.engine.GET("/api/datasets/:name/charts/:kind", s.handleChart)
	return s
}

// Start serves the API on the given port.
func (s *Server) Start(port string) error {
	addr := ":" + port
	logrus.WithField("addr", addr).Info("starting datalens API")
	return s.engine.Run(addr)
}

func (s *Server) handleListDatasets(c *gin.Context) {
	files, err := s.data.ListSourceFiles()
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"datasets": files})
}

func (s *Server) handleSummary(c *gin.Context) {
	an, err := s.newAnalyzer(c.Param("name"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, an.Summarize())
}

type chartQuery struct {
	Column string `form:"column"`
	TopN   int    `form:"top_n"`
	Bins   int    `form:"bins"`
	Save   bool   `form:"save"`
}

func (s *Server) handleChart(c *gin.Context) {
	an, err := s.newAnalyzer(c.Param("name"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	var q chartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var art *chart.Artifact
	switch chart.Kind(c.Param("kind")) {
	case chart.KindBar:
		art, err = an.BarChart(q.Column, q.TopN, q.Save)
	case chart.KindPie:
		art, err = an.PieChart(q.Column, q.TopN, q.Save)
	case chart.KindHistogram:
		art, err = an.Histogram(q.Column, q.Bins, q.Save)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown chart kind"})
		return
	}
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", art.PNG)
}

func (s *Server) newAnalyzer(name string) (*analyzer.Analyzer, error) {
	path, err := s.data.Resolve(name)
	if err != nil {
		return nil, err
	}
	return analyzer.New(path, s.outputDir)
}

func (s *Server) abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case core.IsNotFound(err):
		status = http.StatusNotFound
	case core.IsNotNumeric(err):
		status = http.StatusBadRequest
	}
	logrus.WithError(err).Warn("api request failed")
	c.JSON(status, gin.H{"error": err.Error()})
}
