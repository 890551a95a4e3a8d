package ui

import (
	"html/template"

	"econdash/internal/compare"
	"econdash/internal/dashboard"
	"econdash/internal/forecast"
	"econdash/internal/viewlog"
)

const (
	pageTitle   = "Global Economy Analysis"
	embedHeight = 800
)

type popularDashboard struct {
	Name  string
	Views int64
}

type sidebarView struct {
	About   template.HTML
	Creator template.HTML
	Popular []popularDashboard
}

// page carries what the shared head/sidebar partials need
type page struct {
	PageTitle string
	Tab       string
	Sidebar   sidebarView
}

type indexView struct {
	page
	Diagnostics    forecast.Diagnostics
	ModelError     string
	DataError      string
	Columns        [][]dashboard.Dashboard
	Selection      dashboard.Selection
	FullScreenHint string
	ShowPreviews   bool
	EmbedHeight    int
}

type embedView struct {
	Name  string
	Embed template.HTML
}

type slider struct {
	Field string
	Label string
	Range forecast.Range
	Value float64
}

type forecastView struct {
	page
	ModelLoaded bool
	Input       forecast.Input
	Sliders     []slider
	Regions     []string
	Result      *forecast.Result
	Error       string
}

type compareView struct {
	page
	Countries []string
	Metrics   []compare.Metric
	Country1  string
	Country2  string
	Selected  []string
	Warning   string
	Result    *compare.Result
	ChartURL  template.URL
	ExportURL template.URL
	History   []viewlog.Comparison
}
