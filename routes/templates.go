package routes

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/render"
	"github.com/rimatec/vistoria/httpx"
)

//go:embed templates
var templateFiles embed.FS

var templates = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

// renderPage executes the named template into a buffer before writing,
// so a template error yields a clean 500 instead of a half-written page.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	buf := &bytes.Buffer{}
	err := templates.ExecuteTemplate(buf, name, data)
	if err != nil {
		httpx.LogInternalError(w, "render."+name, err)
		return
	}
	render.HTML(w, r, buf.String())
}
