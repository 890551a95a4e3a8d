package ui

import (
	"net/http"
	"strconv"

	"econdash/internal/errors"
	"econdash/internal/forecast"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleForecastForm(c *gin.Context) {
	s.renderForecast(c, http.StatusOK, forecast.DefaultInput(), nil, nil)
}

func (s *Server) handleForecast(c *gin.Context) {
	in, err := parseForecastInput(c)
	if err != nil {
		s.renderForecast(c, http.StatusBadRequest, in, nil, err)
		return
	}

	result, err := forecast.Forecast(s.res.Model, in)
	if err != nil {
		s.renderForecast(c, statusFor(err), in, nil, err)
		return
	}
	s.renderForecast(c, http.StatusOK, in, result, nil)
}

func (s *Server) renderForecast(c *gin.Context, status int, in forecast.Input, result *forecast.Result, err error) {
	view := forecastView{
		page:        s.newPage(c, "forecast"),
		ModelLoaded: s.res.ModelLoaded(),
		Input:       in,
		Regions:     forecast.Regions,
		Result:      result,
		Error:       errorText(err),
		Sliders: []slider{
			{Field: "gdp_growth", Label: "GDP Growth Rate (%)", Range: forecast.GDPGrowthRange, Value: in.GDPGrowth},
			{Field: "inflation_rate", Label: "Inflation Rate (%)", Range: forecast.InflationRange, Value: in.InflationRate},
			{Field: "unemployment_rate", Label: "Unemployment Rate (%)", Range: forecast.UnemploymentRange, Value: in.UnemploymentRate},
			{Field: "trade_balance", Label: "Trade Balance (% of GDP)", Range: forecast.TradeBalanceRange, Value: in.TradeBalance},
		},
	}
	s.renderTemplate(c, status, "forecast.html", view)
}

// parseForecastInput reads the form, keeping defaults for absent fields
func parseForecastInput(c *gin.Context) (forecast.Input, error) {
	in := forecast.DefaultInput()
	fields := []struct {
		name   string
		target *float64
	}{
		{"gdp_growth", &in.GDPGrowth},
		{"inflation_rate", &in.InflationRate},
		{"unemployment_rate", &in.UnemploymentRate},
		{"trade_balance", &in.TradeBalance},
	}
	for _, f := range fields {
		raw, ok := c.GetPostForm(f.name)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return in, errors.InvalidInput(f.name + " must be a number")
		}
		*f.target = v
	}
	if region := c.PostForm("region"); region != "" {
		in.Region = region
	}
	return in, nil
}

// statusFor maps error codes to HTTP statuses
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeModelLoad, errors.CodeModelShape:
		return http.StatusServiceUnavailable
	case errors.CodePrediction:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
