package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateRenderer renders a named template with data.
type TemplateRenderer interface {
	Render(name string, data TemplateData) (string, error)
}

const welcomeTemplate = `
<html>
  <body style="font-family: sans-serif;">
    <h2>Welcome to Novanest, {{.Name}}!</h2>
    <p>Your {{.Role}} account is ready.</p>
    {{if eq .Role "entrepreneur"}}
    <p>Post your startup and start connecting with investors and mentors.</p>
    {{else}}
    <p>Browse the startup catalog and reach out to founders directly.</p>
    {{end}}
  </body>
</html>`

// templateManager keeps the built-in templates parsed once.
type templateManager struct {
	templates map[string]*template.Template
}

func newTemplateManager() (*templateManager, error) {
	sources := map[string]string{
		"welcome": welcomeTemplate,
	}

	tm := &templateManager{templates: make(map[string]*template.Template)}
	for name, src := range sources {
		t, err := template.New(name).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tm.templates[name] = t
	}
	return tm, nil
}

func (tm *templateManager) Render(name string, data TemplateData) (string, error) {
	t, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
