// Package web embeds the console's HTML templates and stylesheet.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"regexp"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

// colorStyle renders property: hex, or nothing for an empty or malformed code.
func colorStyle(property, hex string) template.CSS {
	if !hexColor.MatchString(hex) {
		return ""
	}
	return template.CSS(property + ": " + hex)
}

var funcs = template.FuncMap{
	"sortIcon": func(dir string) string {
		switch dir {
		case "asc":
			return "↑"
		case "desc":
			return "↓"
		}
		return "↕"
	},
	"orDash": func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	},
	"borderColor": func(hex string) template.CSS { return colorStyle("border-color", hex) },
	"dotColor":    func(hex string) template.CSS { return colorStyle("background-color", hex) },
}

// Templates parses every page template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templates, "templates/*.html")
}

// Static serves the stylesheet.
func Static() http.FileSystem {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
