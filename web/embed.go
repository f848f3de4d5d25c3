// Package web holds the page templates and static assets, embedded into the
// server binary.
package web

import "embed"

// TemplatesFS holds the dashboard and invoice page templates.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS holds app.js and app.css.
//
//go:embed static/*
var StaticFS embed.FS
