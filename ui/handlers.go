package ui

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"datalens/domain/chart"
	"datalens/domain/core"
	"datalens/domain/dataset"
	"datalens/internal/analyzer"
)

// handleIndex lists the selectable source files in the data directory.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	files, err := a.data.ListSourceFiles()
	if err != nil {
		a.renderError(w, err)
		return
	}
	a.renderTemplate(w, "index.html", map[string]interface{}{
		"Files": files,
	})
}

// handleSummary shows the summary tab for one dataset.
func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	an, err := a.newAnalyzer(name)
	if err != nil {
		a.renderError(w, err)
		return
	}

	summary := an.Summarize()
	html := markdown.ToHTML([]byte(summary.Markdown()), nil, nil)

	a.renderTemplate(w, "summary.html", map[string]interface{}{
		"Name":        name,
		"DisplayName": an.DisplayName(),
		"SummaryHTML": template.HTML(html),
		"SummaryText": summary.Text(),
	})
}

// handleCharts shows the visualization tab: column picker plus the rendered
// bar/pie charts and, for numeric columns, the histogram. When saving is
// requested the applicable charts are persisted concurrently; the Analyzer
// is read-only after construction so the parallel calls are safe.
func (a *App) handleCharts(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	an, err := a.newAnalyzer(name)
	if err != nil {
		a.renderError(w, err)
		return
	}

	column := r.URL.Query().Get("column")
	names := an.Dataset().Names()
	if column == "" && len(names) > 0 {
		column = names[0]
	}
	topN := clamp(queryInt(r, "top_n", analyzer.DefaultBarTopN), 5, 20)
	bins := clamp(queryInt(r, "bins", analyzer.DefaultHistBins), 5, 50)
	save := r.URL.Query().Get("save") == "on"

	col, ok := an.Dataset().Column(column)
	if !ok {
		a.renderError(w, core.NewColumnNotFoundError(column))
		return
	}
	numeric := col.Kind == dataset.KindNumeric

	if save {
		var g errgroup.Group
		g.Go(func() error { _, err := an.BarChart(column, topN, true); return err })
		g.Go(func() error { _, err := an.PieChart(column, topN, true); return err })
		if numeric {
			g.Go(func() error { _, err := an.Histogram(column, bins, true); return err })
		}
		if err := g.Wait(); err != nil {
			a.renderError(w, err)
			return
		}
	}

	a.renderTemplate(w, "charts.html", map[string]interface{}{
		"Name":    name,
		"Columns": names,
		"Column":  column,
		"TopN":    topN,
		"Bins":    bins,
		"Save":    save,
		"Numeric": numeric,
	})
}

// handleChartImage serves one rendered chart as PNG.
func (a *App) handleChartImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	kind := chart.Kind(chi.URLParam(r, "kind"))

	an, err := a.newAnalyzer(name)
	if err != nil {
		a.renderError(w, err)
		return
	}

	column := r.URL.Query().Get("column")
	topN := clamp(queryInt(r, "top_n", analyzer.DefaultBarTopN), 5, 20)
	bins := clamp(queryInt(r, "bins", analyzer.DefaultHistBins), 5, 50)

	var art *chart.Artifact
	switch kind {
	case chart.KindBar:
		art, err = an.BarChart(column, topN, false)
	case chart.KindPie:
		art, err = an.PieChart(column, topN, false)
	case chart.KindHistogram:
		art, err = an.Histogram(column, bins, false)
	default:
		http.Error(w, "unknown chart kind", http.StatusBadRequest)
		return
	}
	if err != nil {
		a.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(art.PNG); err != nil {
		logrus.WithError(err).Warn("failed to write chart image")
	}
}

// handleTable shows the browsable table with a single-column substring
// filter and a single-column sort.
func (a *App) handleTable(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	an, err := a.newAnalyzer(name)
	if err != nil {
		a.renderError(w, err)
		return
	}

	q := r.URL.Query()
	filterColumn := q.Get("filter_column")
	filterValue := q.Get("filter")
	sortColumn := q.Get("sort")
	order := q.Get("order")

	view := dataset.NewView(an.Dataset())
	if filterColumn != "" && filterValue != "" {
		if view, err = view.Filter(filterColumn, filterValue); err != nil {
			a.renderError(w, err)
			return
		}
	}
	if sortColumn != "" {
		if view, err = view.Sort(sortColumn, order == "desc"); err != nil {
			a.renderError(w, err)
			return
		}
	}

	a.renderTemplate(w, "table.html", map[string]interface{}{
		"Name":         name,
		"Columns":      an.Dataset().Names(),
		"Rows":         view.Records(),
		"RowCount":     view.Len(),
		"FilterColumn": filterColumn,
		"Filter":       filterValue,
		"Sort":         sortColumn,
		"Order":        order,
	})
}

// renderError maps analyzer errors onto HTTP statuses and shows them in-page
// so a bad request never kills the session.
func (a *App) renderError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case core.IsNotFound(err):
		status = http.StatusNotFound
	case core.IsNotNumeric(err):
		status = http.StatusBadRequest
	}
	logrus.WithError(err).Warn("request failed")
	w.WriteHeader(status)
	a.renderTemplate(w, "error.html", map[string]interface{}{
		"Message": err.Error(),
	})
}

func queryInt(r *http.Request, key string, fallback int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

// clamp keeps a user-chosen value inside a sane UI range.
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
