package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"datalens/internal/testkit"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	_, err := testkit.WriteSampleCSV(dir, "inventory.csv")
	require.NoError(t, err)
	return NewServer(dir, filepath.Join(dir, "outputs"))
}

func (s *Server) get(t *testing.T, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func TestListDatasets(t *testing.T) {
	s := newTestServer(t)
	rec := s.get(t, "/api/datasets")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Datasets []struct {
			Name string `json:"name"`
		} `json:"datasets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Datasets, 1)
	require.Equal(t, "inventory.csv", body.Datasets[0].Name)
}

func TestSummaryEndpoint(t *testing.T) {
	s := newTestServer(t)

	t.Run("known dataset", func(t *testing.T) {
		rec := s.get(t, "/api/datasets/inventory.csv/summary")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			DisplayName string `json:"display_name"`
			Rows        int    `json:"rows"`
			Cols        int    `json:"cols"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "inventory", body.DisplayName)
		require.Equal(t, 6, body.Rows)
		require.Equal(t, 4, body.Cols)
	})

	t.Run("unknown dataset", func(t *testing.T) {
		rec := s.get(t, "/api/datasets/ghost.csv/summary")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestChartEndpoint(t *testing.T) {
	s := newTestServer(t)

	t.Run("pie chart PNG", func(t *testing.T) {
		rec := s.get(t, "/api/datasets/inventory.csv/charts/pie_chart?column=product&top_n=5")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	})

	t.Run("histogram on text column", func(t *testing.T) {
		rec := s.get(t, "/api/datasets/inventory.csv/charts/histogram?column=product")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown kind", func(t *testing.T) {
		rec := s.get(t, "/api/datasets/inventory.csv/charts/scatter?column=product")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
