// Package report renders extraction results as markdown summaries for CLI
// and editor surfaces.
package report

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-schemex/pkg/schema"
)

const defaultTemplate = `# {{ component }}

## Fields
{% if fields %}{% for field in fields %}- ` + "`{{ field.Name }}`" + ` ({{ field.Type }}){% if field.Label %} — {{ field.Label }}{% endif %}{% if field.Validation %} [{{ field.Validation.Type }}]{% endif %}
{% endfor %}{% else %}_No form fields found._
{% endif %}
## API Calls
{% if calls %}{% for call in calls %}- {{ call.Method }} ` + "`{{ call.Endpoint }}`" + `
{% endfor %}{% else %}_No API calls found._
{% endif %}
## TypeScript

` + "```typescript\n{{ typescript }}```" + `
`

// Option customises the renderer before construction.
type Option func(*config)

type config struct {
	template string
}

// WithTemplate replaces the built-in markdown template. The template receives
// component, fields, calls, validations, and typescript context values.
func WithTemplate(tpl string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(tpl) != "" {
			cfg.template = tpl
		}
	}
}

// Renderer renders extraction results through a compiled template. Safe for
// concurrent use.
type Renderer struct {
	tpl *pongo2.Template
}

// New compiles the report template.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{template: defaultTemplate}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	tpl, err := pongo2.FromString(cfg.template)
	if err != nil {
		return nil, fmt.Errorf("report: compile template: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render produces the markdown report for one component's extraction result.
func (r *Renderer) Render(componentName string, result *schema.ExtractionResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("report: extraction result is required")
	}
	name := strings.TrimSpace(componentName)
	if name == "" {
		name = "Component"
	}
	out, err := r.tpl.Execute(pongo2.Context{
		"component":   name,
		"fields":      result.FormFields,
		"calls":       result.APICalls,
		"validations": result.Validations,
		"typescript":  result.TypeScript,
	})
	if err != nil {
		return "", fmt.Errorf("report: render %s: %w", name, err)
	}
	return out, nil
}
