package ui

import (
	"html/template"
	"log"
	"net/http"

	"econdash/internal/dashboard"
	"econdash/internal/errors"
	"econdash/internal/forecast"

	"github.com/gin-gonic/gin"
)

// newPage builds the shared page chrome, including the most viewed dashboards
func (s *Server) newPage(c *gin.Context, tab string) page {
	p := page{
		PageTitle: pageTitle,
		Tab:       tab,
		Sidebar:   sidebarView{About: s.sidebar.About, Creator: s.sidebar.Creator},
	}
	if s.views == nil {
		return p
	}

	counts, err := s.views.Counts(c.Request.Context())
	if err != nil {
		log.Printf("[Sidebar] Failed to load view counts: %v", err)
		return p
	}
	for _, count := range counts {
		if d, ok := s.registry.ByKey(count.DashboardKey); ok {
			p.Sidebar.Popular = append(p.Sidebar.Popular, popularDashboard{Name: d.Name, Views: count.Views})
		}
	}
	return p
}

// handleIndex renders the dashboard gallery; ?view=<key> presses a button
func (s *Server) handleIndex(c *gin.Context) {
	selection := s.registry.Resolve(c.QueryArray("view")...)

	if selection.Dashboard != nil && s.views != nil {
		if _, err := s.views.RecordView(c.Request.Context(), selection.Dashboard.Key); err != nil {
			log.Printf("[Index] Failed to record view of %s: %v", selection.Dashboard.Key, err)
		}
	}

	left, right := s.registry.Columns()
	view := indexView{
		Diagnostics:    forecast.Diagnose(s.res.Model),
		ModelError:     errorText(s.res.ModelErr),
		DataError:      errorText(s.res.DataErr),
		Columns:        [][]dashboard.Dashboard{left, right},
		Selection:      selection,
		FullScreenHint: dashboard.FullScreenMessage,
		ShowPreviews:   s.previews,
		EmbedHeight:    embedHeight,
	}
	// page is read after recording so the sidebar includes this view
	view.page = s.newPage(c, "dashboards")

	s.renderTemplate(c, http.StatusOK, "index.html", view)
}

// handleEmbed serves one embed blob as its own document for the sandboxed iframe
func (s *Server) handleEmbed(c *gin.Context) {
	d, ok := s.registry.ByKey(c.Param("key"))
	if !ok {
		err := errors.NotFound("dashboard " + c.Param("key"))
		c.String(statusFor(err), err.Error())
		return
	}
	// blobs are compile-time constants pointing at Tableau Public only
	s.renderTemplate(c, http.StatusOK, "embed.html", embedView{Name: d.Name, Embed: template.HTML(d.Embed)})
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
