package curriculum

import (
	_ "embed"
	"fmt"
	"sync"
)

// defaultYAML holds the built-in curriculum.
//
//go:embed curriculum.yml
var defaultYAML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// DefaultSpec parses and validates the built-in curriculum.
func DefaultSpec() (Spec, error) {
	spec, err := parseYAMLSpec(defaultYAML)
	if err != nil {
		return Spec{}, fmt.Errorf("built-in curriculum: %w", err)
	}
	return NormalizeSpec(spec)
}

// Default returns the catalog for the built-in curriculum. It is built once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		spec, err := DefaultSpec()
		if err != nil {
			defaultErr = err
			return
		}
		defaultCatalog = NewCatalog(spec)
	})
	return defaultCatalog, defaultErr
}

// Load returns the built-in catalog when path is empty, otherwise the file at path.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	spec, err := LoadSpec(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(spec), nil
}
