package http

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// loadTemplates parses the embedded views, or the ones in dir when set.
func loadTemplates(dir string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"percent": func(part, total int) int {
			if total == 0 {
				return 0
			}
			return part * 100 / total
		},
	}

	tmpl := template.New("").Funcs(funcMap)
	var err error
	if dir == "" {
		tmpl, err = tmpl.ParseFS(templateFS, "templates/*.html")
	} else {
		tmpl, err = tmpl.ParseGlob(dir + "/*.html")
	}
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
