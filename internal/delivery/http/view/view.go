package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Engine renders the embedded page templates. It satisfies fiber's Views
// interface so handlers can use c.Render.
type Engine struct {
	tmpl *template.Template
}

func NewEngine() (*Engine, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"join": func(items []string) string { return strings.Join(items, ", ") },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Engine{tmpl: tmpl}, nil
}

func (e *Engine) Load() error {
	return nil
}

func (e *Engine) Render(w io.Writer, name string, bind any, _ ...string) error {
	return e.tmpl.ExecuteTemplate(w, name, bind)
}
