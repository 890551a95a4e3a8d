package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"econdash/internal/dashboard"
	"econdash/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// App is the lightweight gallery: the dashboard cards and embeds only,
// without the dataset, model or view log.
type App struct {
	router    *chi.Mux
	registry  *dashboard.Registry
	templates *template.Template
	port      string
}

// Config holds gallery configuration
type Config struct {
	Port     string
	Registry *dashboard.Registry
}

// NewApp creates a gallery application
func NewApp(config Config) (*App, error) {
	if config.Registry == nil {
		config.Registry = dashboard.Default
	}
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	app := &App{
		router:    chi.NewRouter(),
		registry:  config.Registry,
		templates: templates,
		port:      config.Port,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		log.Printf("[Gallery] Error creating static filesystem: %v", err)
		return
	}
	a.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleGallery)
	a.router.Get("/embed/{key}", a.handleEmbed)
}

// ServeHTTP lets the gallery be mounted or tested as a plain handler
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Start starts the gallery server
func (a *App) Start() error {
	addr := fmt.Sprintf(":%s", a.port)
	log.Printf("[Gallery] Starting on http://localhost%s", addr)
	return http.ListenAndServe(addr, a.router)
}

func (a *App) handleGallery(w http.ResponseWriter, r *http.Request) {
	left, right := a.registry.Columns()
	data := struct {
		Columns   [][]dashboard.Dashboard
		Selection dashboard.Selection
	}{
		Columns:   [][]dashboard.Dashboard{left, right},
		Selection: a.registry.Resolve(r.URL.Query()["view"]...),
	}
	a.render(w, "gallery.html", data)
}

func (a *App) handleEmbed(w http.ResponseWriter, r *http.Request) {
	d, ok := a.registry.ByKey(chi.URLParam(r, "key"))
	if !ok {
		err := errors.NotFound("dashboard " + chi.URLParam(r, "key"))
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	a.render(w, "embed.html", embedView{Name: d.Name, Embed: template.HTML(d.Embed)})
}

func (a *App) render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("[Gallery] Template error for %s: %v", name, err)
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
