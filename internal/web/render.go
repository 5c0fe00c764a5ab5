package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page es el dato que recibe el layout; Body es específico de cada página.
type Page struct {
	Title     string
	Brand     string
	BrandHref string
	Nav       []NavItem
	Body      any
}

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	r := &renderer{pages: map[string]*template.Template{}}
	for _, name := range []string{"home", "dashboard", "search"} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// render ejecuta a un buffer primero para no mandar HTML a medias si falla.
func (r *renderer) render(w http.ResponseWriter, req *http.Request, name, title string, body any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, "layout", Page{
		Title:     title,
		Brand:     BrandName,
		BrandHref: BrandHref,
		Nav:       Navigation(req.URL.Path),
		Body:      body,
	})
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
	return nil
}
