package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// schemaFile is the on-disk shape of a named set of field-collection
// settings, the YAML analogue of constructing FieldCollectionSettings
// directly in Go.
type schemaFile struct {
	Collections []FieldCollectionSettings `yaml:"collections"`
}

// LoadSchema reads a YAML file describing one or more field-collection
// schemas and returns them validated and defaulted. This is an alternative
// to constructing FieldCollectionSettings in Go; both paths converge on the
// same validation.
func LoadSchema(path string) ([]FieldCollectionSettings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	var file schemaFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing schema file: %w", err)
	}

	for i := range file.Collections {
		file.Collections[i].ApplyDefaults()
		if conflicts := file.Collections[i].ValidateFieldNames(); len(conflicts) > 0 {
			return nil, fmt.Errorf("invalid schema for collection '%s': %s", file.Collections[i].Name, strings.Join(conflicts, "; "))
		}
	}

	return file.Collections, nil
}
