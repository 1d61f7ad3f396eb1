// Package web holds the page templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"scholar-portal/pkg/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	// embedURL lets image and pdf data URIs through html/template's URL
	// filter. Anything else is neutralised.
	"embedURL": func(s string) template.URL {
		if models.ClassifyProof(s) == models.ProofLink {
			return template.URL("#")
		}
		return template.URL(s)
	},
}

// Templates parses every page; each is addressed by its file name.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
