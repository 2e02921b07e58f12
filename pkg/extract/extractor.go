// Package extract recovers form-field and API-call descriptors from React
// component source text. The shipped strategy is pattern-based: it scans for
// the idioms named by the pattern library and skips anything it does not
// recognise. Unrecognised constructs are a coverage tradeoff, never an error;
// only an empty source fails a whole call.
package extract

import (
	"errors"
	"strings"

	"github.com/goliatone/go-schemex/pkg/patterns"
	"github.com/goliatone/go-schemex/pkg/schema"
)

// Result is the raw material handed to the schema builder.
type Result struct {
	FormFields []schema.FormField
	APICalls   []schema.APICall
}

// Extractor is a pure strategy object: implementations hold no per-call
// state and are safe to share across goroutines.
type Extractor interface {
	Extract(source string) (Result, error)
}

// Option customises the extractor configuration.
type Option func(*extractor)

// WithPatterns replaces the default pattern set, typically with one carrying
// host overrides.
func WithPatterns(set *patterns.Set) Option {
	return func(e *extractor) {
		if set != nil {
			e.patterns = set
		}
	}
}

// New constructs the pattern-based extractor.
func New(options ...Option) Extractor {
	e := &extractor{patterns: patterns.Default()}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

type extractor struct {
	patterns *patterns.Set
}

// Ensure the implementation satisfies the public interface.
var _ Extractor = (*extractor)(nil)

// Extract scans the component source and collects field and API-call
// descriptors. Fields found by more than one scan are deduplicated by name;
// the first descriptor carrying validation wins over ones that do not.
func (e *extractor) Extract(source string) (Result, error) {
	if strings.TrimSpace(source) == "" {
		return Result{}, errors.New("extract: empty source")
	}

	var fields []schema.FormField
	fields = append(fields, e.scanMarkup(source)...)
	fields = append(fields, e.scanHooks(source)...)
	fields = append(fields, e.scanCustomComponents(source)...)

	return Result{
		FormFields: dedupeFields(fields),
		APICalls:   e.scanAPICalls(source),
	}, nil
}

// dedupeFields keeps the first descriptor per name, unless a later duplicate
// carries validation and the kept one does not. Order of first appearance is
// preserved.
func dedupeFields(fields []schema.FormField) []schema.FormField {
	if len(fields) == 0 {
		return nil
	}
	index := make(map[string]int, len(fields))
	out := make([]schema.FormField, 0, len(fields))
	for _, field := range fields {
		at, seen := index[field.Name]
		if !seen {
			index[field.Name] = len(out)
			out = append(out, field)
			continue
		}
		if out[at].Validation == nil && field.Validation != nil {
			out[at] = field
		}
	}
	return out
}
