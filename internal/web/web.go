// Package web holds the page template and static assets compiled into the binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed public
var publicFS embed.FS

const IndexTemplate = "index.html"

// PageData feeds the index template. At most one of Weather and Error is set.
type PageData struct {
	Weather string
	Error   string
}

func Templates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

// Static returns the public tree rooted so that public/css/style.css is served as /css/style.css.
func Static() fs.FS {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
