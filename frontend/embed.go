package frontend

import (
	"embed"
	"io/fs"
	"net/http"
)

// Templates embeds the HTML page templates
//
//go:embed templates/*.html
var Templates embed.FS

// Static embeds the stylesheet and placeholder images
//
//go:embed static
var Static embed.FS

// PageTemplates returns the template filesystem rooted at templates/
func PageTemplates() (fs.FS, error) {
	return fs.Sub(Templates, "templates")
}

// GetHTTPFS returns the embedded static assets for HTTP serving
func GetHTTPFS() (http.FileSystem, error) {
	sub, err := fs.Sub(Static, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}
