// Package view is the rendering collaborator: handlers supply a view name and
// a data payload, never markup. Templates are embedded at build time.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var files embed.FS

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

func New() *Renderer {
	return &Renderer{tmpl: template.Must(template.ParseFS(files, "templates/*.html"))}
}

// Render executes the template <name>.html with the given data.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name+".html", data)
}
