package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type document struct {
	Properties []Property `yaml:"properties"`
}

// Parse reads a catalog document. JSON input works too since it is valid YAML.
func Parse(b []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(doc.Properties)
}

func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(b)
}
