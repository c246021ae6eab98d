// Package validation checks API request bodies against JSON schemas before
// they are decoded into domain types.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error joins the individual failures into one line.
func (r *ValidationResult) Error() string {
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return strings.Join(parts, "; ")
}

// Registry holds compiled schemas by name.
type Registry struct {
	schemas map[string]*gojsonschema.Schema
}

// NewRegistry compiles every schema in sources. A schema that fails to compile
// is a programming error and is reported immediately.
func NewRegistry(sources map[string]string) (*Registry, error) {
	r := &Registry{schemas: make(map[string]*gojsonschema.Schema, len(sources))}
	for name, src := range sources {
		s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		r.schemas[name] = s
	}
	return r, nil
}

// MustDefaultRegistry compiles the portal request schemas.
func MustDefaultRegistry() *Registry {
	r, err := NewRegistry(RequestSchemas)
	if err != nil {
		panic(err)
	}
	return r
}

// Names lists the registered schema names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.schemas))
	for n := range r.schemas {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ValidateJSON validates a raw JSON document against the named schema.
func (r *Registry) ValidateJSON(name string, body []byte) (*ValidationResult, error) {
	return r.validate(name, gojsonschema.NewBytesLoader(body))
}

// ValidateInput validates an already decoded document.
func (r *Registry) ValidateInput(name string, input interface{}) (*ValidationResult, error) {
	return r.validate(name, gojsonschema.NewGoLoader(input))
}

func (r *Registry) validate(name string, doc gojsonschema.JSONLoader) (*ValidationResult, error) {
	schema, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}

	result, err := schema.Validate(doc)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	return out, nil
}
