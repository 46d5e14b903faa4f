package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("schema invalid")
	ErrSchemaValidation = errors.New("schema validation failed")
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// Schema is a compiled JSON schema, safe for concurrent use.
type Schema struct {
	compiled *jsonschema.Schema
}

// Compile compiles a JSON schema document expressed as a map.
func Compile(schema map[string]any) (*Schema, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("%w: empty schema", ErrSchemaInvalid)
	}
	compiled, err := compileSchema(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Schema{compiled: compiled}, nil
}

// MustCompile is Compile for package level schema definitions.
func MustCompile(schema map[string]any) *Schema {
	compiled, err := Compile(schema)
	if err != nil {
		panic(err)
	}
	return compiled
}

// Validate checks a decoded JSON document (see DecodeJSON) against the schema.
func (s *Schema) Validate(document any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	if err := s.compiled.Validate(document); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

// ValidateBytes decodes raw JSON and validates it. Malformed JSON is reported
// as a validation error on the document root.
func (s *Schema) ValidateBytes(data []byte) error {
	document, err := DecodeJSON(bytes.NewReader(data))
	if err != nil {
		return &PayloadValidationError{
			Issues: []ValidationIssue{{Location: "", Message: "malformed JSON: " + err.Error()}},
			Cause:  err,
		}
	}
	return s.Validate(document)
}

// DecodeJSON decodes a JSON document keeping numbers as json.Number so
// integer checks stay exact.
func DecodeJSON(r io.Reader) (any, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	var document any
	if err := decoder.Decode(&document); err != nil {
		return nil, err
	}
	if decoder.More() {
		return nil, errors.New("unexpected data after JSON document")
	}
	return document, nil
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
