// Package profile loads assembler defaults from a YAML file.
package profile

import (
	"fmt"
	"os"
	"strings"

	"github.com/ChainSafe/ws-asm/renderer"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFormat    = renderer.FormatMark
	DefaultExtension = ".ws"
)

// Profile holds the settings an assemble run falls back to when no flag
// overrides them.
type Profile struct {
	Format    string `yaml:"format"`    // raw or mark
	Extension string `yaml:"extension"` // suffix of the derived output path
}

// Default returns the built-in profile.
func Default() *Profile {
	return &Profile{Format: DefaultFormat, Extension: DefaultExtension}
}

// LoadProfile loads a profile from a YAML file. Missing fields keep their
// defaults.
func LoadProfile(filename string) (*Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}

	prof := Default()
	if err := yaml.Unmarshal(data, prof); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if prof.Format == "" {
		prof.Format = DefaultFormat
	}
	if prof.Extension == "" {
		prof.Extension = DefaultExtension
	}
	if !strings.HasPrefix(prof.Extension, ".") {
		prof.Extension = "." + prof.Extension
	}
	if _, err := renderer.New(prof.Format); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", filename, err)
	}
	return prof, nil
}
