package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://schemas.todo.local/config.schema.json"

const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "log_level": {"type": "string", "enum": ["debug", "info", "warn", "warning", "error"]},
    "log_format": {"type": "string", "enum": ["text", "json", "logfmt"]},
    "log_dir": {"type": "string"},
    "log_file": {"type": "string"},
    "alt_screen": {"type": "boolean"}
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// FileError lists the schema violations found in a config file.
type FileError struct {
	Problems []string
}

func (e *FileError) Error() string {
	return "invalid config: " + strings.Join(e.Problems, "; ")
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaURL, strings.NewReader(configSchema)); err != nil {
			schemaErr = fmt.Errorf("add config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// validateRaw checks decoded TOML against the config schema.
func validateRaw(raw map[string]interface{}) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	// Round-trip through JSON so TOML's int64 and time values become
	// JSON types the validator understands.
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal config for validation: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal config for validation: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		fe := &FileError{}
		collectSchemaErrors(fe, ve)
		return fe
	}
	return nil
}

func collectSchemaErrors(fe *FileError, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		path := jsonPointerToPath(err.InstanceLocation)
		if path == "" {
			fe.Problems = append(fe.Problems, err.Message)
		} else {
			fe.Problems = append(fe.Problems, fmt.Sprintf("%s: %s", path, err.Message))
		}
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(fe, cause)
	}
}

// jsonPointerToPath converts "/foo/0/bar" to "foo[0].bar".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	path := ""
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
