package ui

import (
	"log"
	"net/http"

	"econdash/internal/dataset"
	"econdash/internal/errors"
	"econdash/internal/forecast"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleDashboardsList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dashboards": s.registry.All()})
}

func (s *Server) handleModelInfo(c *gin.Context) {
	resp := gin.H{"diagnostics": forecast.Diagnose(s.res.Model)}
	if s.res.ModelLoaded() {
		resp["r2"] = s.res.Model.R2()
	}
	if s.res.ModelErr != nil {
		resp["error"] = s.res.ModelErr.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleForecastAPI(c *gin.Context) {
	in := forecast.DefaultInput()
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	result, err := forecast.Forecast(s.res.Model, in)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "code": errors.GetCode(err)})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleDataSummary(c *gin.Context) {
	data := s.res.Data
	if data == nil {
		data = dataset.Empty()
	}
	resp := gin.H{
		"source":    data.Source,
		"columns":   data.Headers,
		"rows":      data.Len(),
		"summaries": dataset.Summarize(data),
	}
	if s.res.DataErr != nil {
		resp["error"] = s.res.DataErr.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleViewCounts(c *gin.Context) {
	if s.views == nil {
		c.JSON(http.StatusOK, gin.H{"views": []interface{}{}})
		return
	}
	counts, err := s.views.Counts(c.Request.Context())
	if err != nil {
		log.Printf("[API] Failed to count views: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load view counts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"views": counts})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"model_loaded": s.res.ModelLoaded(),
		"data_rows":    s.res.Data.Len(),
	})
}
