// Package schemas validates analyzer artifacts against the JSON Schemas
// published under schemas/.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResolveSchemaPath locates a schema file given its repo-relative path,
// walking up a few directory levels so commands and tests resolve the
// schemas/ directory no matter where they run from. Returns "" when the file
// cannot be found.
func ResolveSchemaPath(relativePath string) string {
	prefix := ""
	for i := 0; i < 4; i++ {
		abs, err := filepath.Abs(filepath.Join(prefix, relativePath))
		if err == nil {
			if _, err := os.Stat(abs); err == nil {
				return abs
			}
		}
		prefix = filepath.Join(prefix, "..")
	}
	return ""
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports a document that does not conform to its schema.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SchemaLoadError reports that the schema or document could not be loaded or
// parsed at all, as opposed to a conforming-document failure.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	path := e.Path
	if path == "" {
		path = "(inline)"
	}
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSON validates the document file at jsonPath against the schema
// file at schemaPath.
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaContent, err := readArtifact("schema", schemaPath)
	if err != nil {
		return err
	}
	jsonContent, err := readArtifact("JSON", jsonPath)
	if err != nil {
		return err
	}
	return ValidateJSONString(schemaContent, jsonContent)
}

// ValidateJSONString validates document content against schema content.
// A non-conforming document yields a *ValidationError; content that cannot
// be parsed at all yields a *SchemaLoadError.
func ValidateJSONString(schemaContent, jsonContent string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent),
	)
	if err != nil {
		return &SchemaLoadError{Message: "schema or document could not be parsed", Cause: err}
	}
	return resultError(result)
}

func readArtifact(kind, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s path: %w", kind, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s file not found: %s", kind, abs)
		}
		return "", fmt.Errorf("failed to read %s file: %w", kind, err)
	}
	return string(data), nil
}

// resultError converts a gojsonschema result into a *ValidationError, or nil
// for a conforming document.
func resultError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
