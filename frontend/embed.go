package frontend

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

// FS embeds the stylesheet and page templates
//
//go:embed all:static templates/*.html
var FS embed.FS

// GetHTTPFS returns the embedded static files for HTTP serving
func GetHTTPFS() (http.FileSystem, error) {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		return nil, err
	}

	// style.css is required by every page
	if _, err := fs.Stat(sub, "style.css"); err != nil {
		return nil, err
	}

	return http.FS(sub), nil
}

// ParseTemplates parses all page templates with the given functions
func ParseTemplates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("pages").Funcs(funcs).ParseFS(FS, "templates/*.html")
}
