// Package toolchain verifies that the external tools the pipeline shells out
// to are resolvable on PATH before any target is processed.
package toolchain

import (
	"os"

	"gopkg.in/yaml.v3"

	"enumchain/internal/platform/errors"
)

// Tool describes one required external binary.
type Tool struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	VersionArgs []string `yaml:"version_args"`
}

// Manifest is the ordered required-tool chain. The order matches the
// pipeline's execution order.
type Manifest struct {
	Tools []Tool `yaml:"tools"`
}

// DefaultManifest returns the built-in five-tool chain.
func DefaultManifest() Manifest {
	return Manifest{Tools: []Tool{
		{Name: "subfinder", Description: "Enumerating subdomains", VersionArgs: []string{"-version"}},
		{Name: "dnsx", Description: "Resolving active subdomains", VersionArgs: []string{"-version"}},
		{Name: "naabu", Description: "Port scanning (top web ports)", VersionArgs: []string{"-version"}},
		{Name: "httpx", Description: "Probing for live HTTP services", VersionArgs: []string{"-version"}},
		{Name: "katana", Description: "Crawling for endpoints", VersionArgs: []string{"-version"}},
	}}
}

// LoadManifest reads a YAML manifest overriding the built-in chain.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, errors.Wrapf(err, "reading tool manifest %s", path)
	}
	return ParseManifest(data)
}

// ParseManifest decodes manifest YAML and validates it is non-empty.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(err, "parsing tool manifest")
	}
	if len(m.Tools) == 0 {
		return Manifest{}, errors.Wrap(errors.ErrInvalidInput, "tool manifest declares no tools")
	}
	for _, t := range m.Tools {
		if t.Name == "" {
			return Manifest{}, errors.Wrap(errors.ErrInvalidInput, "tool manifest entry without a name")
		}
	}
	return m, nil
}

// Names returns the tool names in chain order.
func (m Manifest) Names() []string {
	names := make([]string, 0, len(m.Tools))
	for _, t := range m.Tools {
		names = append(names, t.Name)
	}
	return names
}
