package ui

import "embed"

//go:embed templates/*.html static/css/*
var embeddedFiles embed.FS
