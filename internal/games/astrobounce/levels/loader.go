package levels

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed packs/classic.yaml
var classicYAML []byte

// Default returns the built-in pack of ten levels.
// It panics if the embedded file is malformed, which tests guard against.
func Default() Pack {
	pack, err := Parse(classicYAML)
	if err != nil {
		panic(fmt.Sprintf("levels: embedded classic pack: %v", err))
	}
	return pack
}

// DefaultYAML returns the embedded classic pack file.
func DefaultYAML() []byte {
	return classicYAML
}

// LoadFile reads and validates a pack file.
func LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	pack, err := Parse(data)
	if err != nil {
		return Pack{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if pack.Name == "" {
		pack.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	pack.Source = path
	return pack, nil
}

// Load returns the pack at path, or the built-in pack when path is empty.
func Load(path string) (Pack, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
