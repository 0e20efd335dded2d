// Package views holds the HTML templates of the web form and result page.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var files embed.FS

// Templates parses the embedded templates. Each template is addressed by its
// file name, e.g. "index.tmpl".
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(files, "templates/*.tmpl"))
}
