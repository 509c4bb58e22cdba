// Package contracts compiles the embedded JSON Schemas once at startup
// and exposes validation helpers for upstream payloads. Rows that fail
// validation are dropped by the caller, never served.
package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/chivocasa42-sys/sivarcasas-sub001/schemas"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	err := fs.WalkDir(schemas.SchemasFS, "catalog", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := schemas.SchemasFS.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		return compiler.AddResource(path, file)
	})
	if err != nil {
		log.Fatalf("failed to add schema resources: %v", err)
	}

	err = fs.WalkDir(schemas.SchemasFS, "catalog", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		schema, err := compiler.Compile(path)
		if err != nil {
			return fmt.Errorf("compile %s: %w", path, err)
		}
		compiledSchemas[keyFromPath(path)] = schema
		return nil
	})
	if err != nil {
		log.Fatalf("failed to compile schemas: %v", err)
	}
}

// keyFromPath turns "catalog/listing_row.json" into "listing_row".
func keyFromPath(path string) string {
	parts := strings.Split(path, "/")
	name := parts[len(parts)-1]
	return strings.TrimSuffix(name, ".json")
}

// ValidateListingRow checks one raw catalog row against the listing_row
// schema.
func ValidateListingRow(raw json.RawMessage) error {
	return validate("listing_row", raw)
}

func validate(key string, raw json.RawMessage) error {
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("unknown schema %q", key)
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("schema %q violation: %w", key, err)
	}
	return nil
}
