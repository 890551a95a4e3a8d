package ui

import (
	"context"
	"html/template"
	"log"
	"net/http"

	"econdash/internal/dashboard"
	"econdash/internal/resources"
	"econdash/internal/viewlog"

	"github.com/gin-gonic/gin"
)

// ViewStore records what visitors open. A nil store disables the view log.
type ViewStore interface {
	RecordView(ctx context.Context, dashboardKey string) (*viewlog.View, error)
	Counts(ctx context.Context) ([]viewlog.Count, error)
	RecordComparison(ctx context.Context, country1, country2 string, metrics []string) (*viewlog.Comparison, error)
	RecentComparisons(ctx context.Context, limit int) ([]viewlog.Comparison, error)
}

// Options configures a Server
type Options struct {
	Resources   *resources.Resources
	Registry    *dashboard.Registry
	Views       ViewStore
	ImagesDir   string
	CompareSeed int64
	GinMode     string
}

// Server represents the web server for the dashboard
type Server struct {
	router      *gin.Engine
	templates   *template.Template
	res         *resources.Resources
	registry    *dashboard.Registry
	views       ViewStore
	compareSeed int64
	imagesDir   string
	previews    bool
	sidebar     sidebarContent
}

// NewServer creates a server with parsed templates and registered routes
func NewServer(opts Options) (*Server, error) {
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}
	if opts.Registry == nil {
		opts.Registry = dashboard.Default
	}
	if opts.Resources == nil {
		opts.Resources = &resources.Resources{}
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:      gin.New(),
		templates:   templates,
		res:         opts.Resources,
		registry:    opts.Registry,
		views:       opts.Views,
		compareSeed: opts.CompareSeed,
		imagesDir:   opts.ImagesDir,
		sidebar:     newSidebarContent(),
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/embed/:key", s.handleEmbed)

	s.router.GET("/forecast", s.handleForecastForm)
	s.router.POST("/forecast", s.handleForecast)

	s.router.GET("/compare", s.handleCompareForm)
	s.router.POST("/compare", s.handleCompare)
	s.router.GET("/compare/chart.png", s.handleCompareChart)
	s.router.GET("/compare/export.xlsx", s.handleCompareExport)

	api := s.router.Group("/api")
	api.GET("/dashboards", s.handleDashboardsList)
	api.GET("/model", s.handleModelInfo)
	api.POST("/model/forecast", s.handleForecastAPI)
	api.GET("/data/summary", s.handleDataSummary)
	api.GET("/views", s.handleViewCounts)

	s.router.GET("/healthz", s.handleHealth)
}

// Handler exposes the router for tests and custom listeners
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("[Server] Starting dashboard on http://%s", addr)
	return s.router.Run(addr)
}
