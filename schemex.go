// Package schemex statically analyses React component source to recover form
// fields, outbound API calls, and a unified data schema, and validates
// arbitrary data against the recovered schema. The root package is the
// library facade; the pieces live under pkg.
package schemex

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-schemex/pkg/builder"
	"github.com/goliatone/go-schemex/pkg/extract"
	"github.com/goliatone/go-schemex/pkg/schema"
	"github.com/goliatone/go-schemex/pkg/validate"
)

// Re-exported result types for callers that only import the root package.
type (
	ExtractionResult = schema.ExtractionResult
	DataSchema       = schema.DataSchema
	FormField        = schema.FormField
	APICall          = schema.APICall
	ValidationRule   = schema.ValidationRule
	Result           = validate.Result
	Violation        = validate.Violation
)

// Option customises the facade.
type Option func(*Schemex)

// WithExtractor injects a custom extraction strategy, typically one carrying
// pattern overrides. The default pattern-based extractor is used otherwise.
func WithExtractor(e extract.Extractor) Option {
	return func(s *Schemex) {
		if e != nil {
			s.extractor = e
		}
	}
}

// Schemex runs the extraction pipeline. Instances are pure strategy objects:
// safe to memoize and share across goroutines.
type Schemex struct {
	extractor extract.Extractor
}

// New constructs a Schemex with the default extractor.
func New(options ...Option) *Schemex {
	s := &Schemex{extractor: extract.New()}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ExtractSchemaFromCode extracts the schema bundle from one component's
// source text. A parse failure fails the whole call; callers catch it and
// substitute an empty result if they want to degrade.
func (s *Schemex) ExtractSchemaFromCode(source string, componentName ...string) (*schema.ExtractionResult, error) {
	name := "Component"
	if len(componentName) > 0 && strings.TrimSpace(componentName[0]) != "" {
		name = strings.TrimSpace(componentName[0])
	}

	raw, err := s.extractor.Extract(source)
	if err != nil {
		return nil, fmt.Errorf("schemex: extract %s: %w", name, err)
	}

	ds := builder.Build(raw.FormFields, raw.APICalls)

	var validations []schema.ValidationRule
	for _, field := range raw.FormFields {
		if field.Validation != nil {
			validations = append(validations, *field.Validation)
		}
	}

	return &schema.ExtractionResult{
		DataSchema:  ds,
		FormFields:  raw.FormFields,
		APICalls:    raw.APICalls,
		Validations: validations,
		TypeScript:  builder.RenderTypeScript(name, ds),
		JSONSchema:  builder.RenderJSONSchema(ds),
	}, nil
}

// ExtractSchemaFromMDX scans a document for fenced JS/JSX/TS/TSX code blocks
// and extracts each one. Results are keyed Component0, Component1, … in
// document order; a block that fails extraction is omitted without aborting
// the rest of the scan, though it still consumes its index.
func (s *Schemex) ExtractSchemaFromMDX(document string) map[string]*schema.ExtractionResult {
	results := make(map[string]*schema.ExtractionResult)
	for index, block := range extract.CodeBlocks(document) {
		name := fmt.Sprintf("Component%d", index)
		result, err := s.ExtractSchemaFromCode(block, name)
		if err != nil {
			continue
		}
		results[name] = result
	}
	return results
}

// ExtractSchemaFromCode extracts using a default shared pipeline.
func ExtractSchemaFromCode(source string, componentName ...string) (*schema.ExtractionResult, error) {
	return defaultSchemex.ExtractSchemaFromCode(source, componentName...)
}

// ExtractSchemaFromMDX extracts every tagged code block using a default
// shared pipeline.
func ExtractSchemaFromMDX(document string) map[string]*schema.ExtractionResult {
	return defaultSchemex.ExtractSchemaFromMDX(document)
}

// Validate checks data against a data schema. It never returns an error:
// violations are the expected outcome, carried in the result.
func Validate(data any, ds *schema.DataSchema) validate.Result {
	return validate.Validate(data, ds)
}

var defaultSchemex = New()
