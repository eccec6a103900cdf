package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"hara/internal/catalog"
)

const schemaURL = "https://hara.local/manifest.schema.json"

//go:embed manifest.schema.json
var schemaSource string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func loadSchema() {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		schemaErr = fmt.Errorf("add manifest schema: %w", err)
		return
	}
	schema, schemaErr = compiler.Compile(schemaURL)
	if schemaErr != nil {
		schemaErr = fmt.Errorf("compile manifest schema: %w", schemaErr)
	}
}

// Schema returns the embedded JSON Schema document.
func Schema() string {
	return schemaSource
}

// Validate checks JSON manifest bytes against the embedded schema.
func Validate(data []byte) error {
	schemaOnce.Do(loadSchema)
	if schemaErr != nil {
		return schemaErr
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("manifest schema: %w", err)
	}
	return nil
}

// ValidateCatalog checks c in its JSON form, independent of the output format.
func ValidateCatalog(c catalog.Catalog) error {
	data, err := Encode(c, FormatJSON)
	if err != nil {
		return err
	}
	return Validate(data)
}
