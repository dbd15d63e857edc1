package format_test

import (
	"strings"
	"text/template"
)

func renderTemplate(text string, funcs map[string]any, data any) (string, error) {
	tmpl, err := template.New("test").Funcs(template.FuncMap(funcs)).Parse(text)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
