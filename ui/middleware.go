package ui

import (
	"io/fs"
	"log"
	"net/http"
	"os"

	"econdash/ui/middleware"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware and static assets
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID())
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		log.Printf("[Static] Error creating static filesystem: %v", err)
	} else {
		s.router.StaticFS("/static", http.FS(staticFS))
	}

	if s.imagesDir == "" {
		return
	}
	if _, err := os.Stat(s.imagesDir); err != nil {
		log.Printf("[Static] Images directory unavailable, dashboard previews will be missing: %v", err)
		return
	}
	s.router.Static("/images", s.imagesDir)
	s.previews = true
}
