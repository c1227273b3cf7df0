// Package templates holds the embedded HTML pages and their helpers.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed *.html
var pagesFS embed.FS

// New parses the embedded page templates.
// The resulting template set is handed to the gin engine once at startup.
func New() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"lines": lines,
	}).ParseFS(pagesFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return tmpl, nil
}

// lines splits text on newlines so templates can render poem line
// breaks as <br> while the text itself stays HTML-escaped.
func lines(text string) []string {
	return strings.Split(text, "\n")
}
