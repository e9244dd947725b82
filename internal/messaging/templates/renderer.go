package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// Template is a parsed text template for outbound messages. Missing keys
// fail rendering instead of printing "<no value>".
type Template struct {
	name string
	tmpl *template.Template
}

// Parse compiles tmpl under name.
func Parse(name, tmpl string) (*Template, error) {
	if tmpl == "" {
		return nil, fmt.Errorf("templates: template text required")
	}
	t, err := template.New(name).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("templates: parse %s: %w", name, err)
	}
	return &Template{name: name, tmpl: t}, nil
}

// MustParse is Parse for package-level templates.
func MustParse(name, tmpl string) *Template {
	t, err := Parse(name, tmpl)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the template name.
func (t *Template) Name() string {
	return t.name
}

// Render executes the template against data.
func (t *Template) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("templates: execute %s: %w", t.name, err)
	}
	return buf.String(), nil
}
