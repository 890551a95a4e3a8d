package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
		"contains": func(list []string, s string) bool {
			for _, item := range list {
				if item == s {
					return true
				}
			}
			return false
		},
		"deref": func(v *float64) string {
			if v == nil {
				return "n/a"
			}
			return fmt.Sprintf("%g", *v)
		},
	}
}

func parseTemplates() (*template.Template, error) {
	templates, err := template.New("").Funcs(templateFuncs()).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return templates, nil
}

// renderTemplate executes a template into a buffer so a failure never
// leaves a half-written page
func (s *Server) renderTemplate(c *gin.Context, status int, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		log.Printf("[Render] Template error for %s: %v", templateName, err)
		c.AbortWithStatusJSON(500, gin.H{"error": "Template rendering failed"})
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

const aboutMarkdown = `This application provides global economic analysis and forecasting using data visualization and machine learning.

**Features:**
- 5 interactive dashboards
- AI-powered economic forecasting
- Country comparison tools
- Economic trend visualization

**Model Information:**
- Algorithm: Random Forest Regression
- Training data: World Bank and IMF datasets
- Accuracy (R²): 0.92
`

const creatorMarkdown = `Developer: Ilker Aydin Yilmaz

[GitHub Repository](https://github.com/IamIlker0/global-economy-analysis)
`

// sidebarContent is the static sidebar, rendered from markdown once
type sidebarContent struct {
	About   template.HTML
	Creator template.HTML
}

func newSidebarContent() sidebarContent {
	return sidebarContent{
		About:   renderMarkdown(aboutMarkdown),
		Creator: renderMarkdown(creatorMarkdown),
	}
}

// renderMarkdown converts trusted, compile-time markdown to HTML
func renderMarkdown(md string) template.HTML {
	return template.HTML(markdown.ToHTML([]byte(md), nil, nil))
}
