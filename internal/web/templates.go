package web

import (
	"embed"         // Embedded template files
	"html/template" // HTML template engine
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates for gin's HTML renderer
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
