package ui

import (
	"html/template"
	"log"
	"net/http"
	"net/url"

	"econdash/internal/compare"

	"github.com/gin-gonic/gin"
)

const comparisonHistoryLimit = 5

func (s *Server) handleCompareForm(c *gin.Context) {
	view := s.newCompareView(c, compare.Countries[0], compare.Countries[1], compare.DefaultMetricNames())
	s.renderTemplate(c, http.StatusOK, "compare.html", view)
}

func (s *Server) handleCompare(c *gin.Context) {
	country1 := c.DefaultPostForm("country1", compare.Countries[0])
	country2 := c.DefaultPostForm("country2", compare.Countries[1])
	metrics := c.PostFormArray("metrics")

	result, err := compare.Compare(country1, country2, metrics, s.compareSeed)
	if err != nil {
		view := s.newCompareView(c, country1, country2, metrics)
		view.Warning = err.Error()
		s.renderTemplate(c, statusFor(err), "compare.html", view)
		return
	}

	if s.views != nil {
		if _, err := s.views.RecordComparison(c.Request.Context(), country1, country2, metrics); err != nil {
			log.Printf("[Compare] Failed to record comparison: %v", err)
		}
	}

	view := s.newCompareView(c, country1, country2, metrics)
	view.Result = result
	query := comparisonQuery(country1, country2, metrics)
	view.ChartURL = template.URL("/compare/chart.png?" + query)
	view.ExportURL = template.URL("/compare/export.xlsx?" + query)
	s.renderTemplate(c, http.StatusOK, "compare.html", view)
}

func (s *Server) newCompareView(c *gin.Context, country1, country2 string, selected []string) compareView {
	view := compareView{
		page:      s.newPage(c, "compare"),
		Countries: compare.Countries,
		Metrics:   compare.Metrics,
		Country1:  country1,
		Country2:  country2,
		Selected:  selected,
	}
	if s.views != nil {
		history, err := s.views.RecentComparisons(c.Request.Context(), comparisonHistoryLimit)
		if err != nil {
			log.Printf("[Compare] Failed to load history: %v", err)
		}
		view.History = history
	}
	return view
}

// handleCompareChart regenerates the comparison from the query and draws it
func (s *Server) handleCompareChart(c *gin.Context) {
	result, ok := s.comparisonFromQuery(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "image/png")
	if err := compare.WriteChart(c.Writer, result); err != nil {
		log.Printf("[Compare] Chart failed: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// handleCompareExport regenerates the comparison and sends it as a workbook
func (s *Server) handleCompareExport(c *gin.Context) {
	result, ok := s.comparisonFromQuery(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="comparison.xlsx"`)
	if err := compare.WriteWorkbook(c.Writer, result); err != nil {
		log.Printf("[Compare] Export failed: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

func (s *Server) comparisonFromQuery(c *gin.Context) (*compare.Result, bool) {
	result, err := compare.Compare(c.Query("country1"), c.Query("country2"), c.QueryArray("metrics"), s.compareSeed)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return nil, false
	}
	return result, true
}

func comparisonQuery(country1, country2 string, metrics []string) string {
	q := url.Values{}
	q.Set("country1", country1)
	q.Set("country2", country2)
	for _, m := range metrics {
		q.Add("metrics", m)
	}
	return q.Encode()
}
