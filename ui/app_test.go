package ui

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"datalens/internal/testkit"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	_, err := testkit.WriteSampleCSV(dir, "inventory.csv")
	require.NoError(t, err)

	app, err := NewApp(Config{
		DataDir:   dir,
		OutputDir: filepath.Join(dir, "outputs"),
	})
	require.NoError(t, err)
	return app
}

func (a *App) get(t *testing.T, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func TestHandleIndex(t *testing.T) {
	app := newTestApp(t)
	rec := app.get(t, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "inventory.csv")
}

func TestHandleSummary(t *testing.T) {
	app := newTestApp(t)

	t.Run("known dataset", func(t *testing.T) {
		rec := app.get(t, "/datasets/inventory.csv")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Dataset Summary for inventory")
	})

	t.Run("unknown dataset is 404, session survives", func(t *testing.T) {
		rec := app.get(t, "/datasets/ghost.csv")
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "ghost.csv")
	})
}

func TestHandleChartImage(t *testing.T) {
	app := newTestApp(t)

	t.Run("bar chart PNG", func(t *testing.T) {
		rec := app.get(t, "/datasets/inventory.csv/charts/bar_chart.png?column=product&top_n=10")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	})

	t.Run("histogram on text column is 400", func(t *testing.T) {
		rec := app.get(t, "/datasets/inventory.csv/charts/histogram.png?column=product")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown column is 404", func(t *testing.T) {
		rec := app.get(t, "/datasets/inventory.csv/charts/bar_chart.png?column=ghost")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleTable(t *testing.T) {
	app := newTestApp(t)

	t.Run("filter narrows rows", func(t *testing.T) {
		rec := app.get(t, "/datasets/inventory.csv/table?filter_column=product&filter=widget")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "3 rows")
	})

	t.Run("filter with no match yields zero rows", func(t *testing.T) {
		rec := app.get(t, "/datasets/inventory.csv/table?filter_column=product&filter=zzz")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "0 rows")
	})

	t.Run("sort descending on numeric column", func(t *testing.T) {
		rec := app.get(t, "/datasets/inventory.csv/table?sort=price&order=desc")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		require.Less(t, strings.Index(body, "120.00"), strings.Index(body, "3.75"))
	})
}
