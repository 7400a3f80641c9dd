package hypermedia

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var ErrUnknownSchema = errors.New("unknown schema")

// InvalidDocumentError carries the validation messages of a rejected body.
type InvalidDocumentError struct {
	Messages []string
}

func (e *InvalidDocumentError) Error() string {
	return "invalid document: " + strings.Join(e.Messages, "; ")
}

// Validator compiles named JSON schemas once and checks request bodies
// against them.
type Validator struct {
	mu      sync.RWMutex
	schemas map[string]*jsonschema.Schema
}

func NewValidator() *Validator {
	return &Validator{schemas: map[string]*jsonschema.Schema{}}
}

func (v *Validator) Register(name string, schema any) error {
	raw, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("encode schema %s: %w", name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode schema %s: %w", name, err)
	}

	url := "mem:///" + name + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, doc); err != nil {
		return fmt.Errorf("add schema %s: %w", name, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return fmt.Errorf("compile schema %s: %w", name, err)
	}

	v.mu.Lock()
	v.schemas[name] = compiled
	v.mu.Unlock()
	return nil
}

// MustRegister panics on a schema that does not compile.
func (v *Validator) MustRegister(name string, schema any) *Validator {
	if err := v.Register(name, schema); err != nil {
		panic(err)
	}
	return v
}

// Validate parses body as JSON and checks it against the named schema. Both
// syntax and schema failures come back as *InvalidDocumentError.
func (v *Validator) Validate(name string, body []byte) error {
	v.mu.RLock()
	schema, ok := v.schemas[name]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return &InvalidDocumentError{Messages: []string{err.Error()}}
	}
	if err := schema.Validate(instance); err != nil {
		return &InvalidDocumentError{Messages: validationMessages(err)}
	}
	return nil
}

func validationMessages(err error) []string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []string{err.Error()}
	}
	var messages []string
	for _, line := range strings.Split(verr.Error(), "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		if line == "" || strings.HasPrefix(line, "jsonschema validation failed") {
			continue
		}
		messages = append(messages, line)
	}
	if len(messages) == 0 {
		messages = append(messages, verr.Error())
	}
	return messages
}
