// Package view renders screen session views for the terminal demo.
package view

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stocklens/stocklens-mobile/internal/detail"
	"github.com/stocklens/stocklens-mobile/web"
)

// Engine renders text templates.
type Engine struct {
	templates *template.Template
}

// NewEngine parses the embedded templates.
func NewEngine() (*Engine, error) {
	printer := message.NewPrinter(language.English)
	funcMap := template.FuncMap{
		"money": func(v float64) string {
			return printer.Sprintf("₹%.2f", v)
		},
		"qty": func(v float64) string {
			return printer.Sprintf("%v", v)
		},
		"margin": func(v *float64) string {
			if v == nil {
				return ""
			}
			return printer.Sprintf("%.1f", *v)
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"formatDate": func(t *time.Time) string {
			if t == nil || t.IsZero() {
				return ""
			}
			return t.Format("02 Jan 2006")
		},
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// RenderDetail writes the rendering of a product detail view.
func (e *Engine) RenderDetail(w io.Writer, v detail.View) error {
	if e == nil {
		return fmt.Errorf("view engine not initialised")
	}
	var name string
	switch v.Outcome {
	case detail.OutcomeLoading:
		name = "detail_loading"
	case detail.OutcomeError:
		name = "detail_error"
	case detail.OutcomePopulated:
		name = "detail_populated"
	default:
		return fmt.Errorf("view: unknown outcome %d", v.Outcome)
	}
	return e.templates.ExecuteTemplate(w, name, v)
}
