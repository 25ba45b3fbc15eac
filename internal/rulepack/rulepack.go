// internal/rulepack/rulepack.go
//
// Rule packs extend the stock morphology rule set with user-authored rules
// loaded from YAML files under .glossa/rulepacks/. A pack is declarative
// data only: name, type, marker and gloss per rule, nothing executable.

package rulepack

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/miravel/glossa/internal/morphology"
)

// Pack is one parsed rule pack paired with its on-disk source.
type Pack struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Rules       []RuleSpec `yaml:"rules"`

	// Path records where the pack was loaded from. Not part of the schema.
	Path string `yaml:"-"`
}

// RuleSpec mirrors one rule entry in the on-disk schema.
type RuleSpec struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Marker  string `yaml:"marker,omitempty"`
	Meaning string `yaml:"meaning,omitempty"`
}

// Normalized returns a trimmed copy of the spec.
func (spec RuleSpec) Normalized() RuleSpec {
	return RuleSpec{
		Name:    strings.TrimSpace(spec.Name),
		Type:    strings.ToLower(strings.TrimSpace(spec.Type)),
		Marker:  spec.Marker,
		Meaning: strings.TrimSpace(spec.Meaning),
	}
}

// Validate ensures the spec can be registered with the morphology engine.
func (spec RuleSpec) Validate() error {
	normalized := spec.Normalized()
	if normalized.Name == "" {
		return fmt.Errorf("rulepack: rule name is required")
	}
	if !morphology.RuleType(normalized.Type).Valid() {
		return fmt.Errorf("rulepack: rule %s: unknown type %q", normalized.Name, spec.Type)
	}
	return nil
}

// Normalized returns a trimmed, validated-ready copy of the pack.
func (p Pack) Normalized() Pack {
	clone := Pack{
		Name:        strings.TrimSpace(p.Name),
		Description: strings.TrimSpace(p.Description),
		Path:        p.Path,
	}
	if len(p.Rules) > 0 {
		clone.Rules = make([]RuleSpec, len(p.Rules))
		for i, spec := range p.Rules {
			clone.Rules[i] = spec.Normalized()
		}
	}
	return clone
}

// Validate ensures the pack is well-formed.
func (p Pack) Validate() error {
	normalized := p.Normalized()
	if normalized.Name == "" {
		return fmt.Errorf("rulepack: pack name is required")
	}
	if len(normalized.Rules) == 0 {
		return fmt.Errorf("rulepack: pack %s declares no rules", normalized.Name)
	}
	for idx, spec := range normalized.Rules {
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("rulepack: pack %s: rules[%d]: %w", normalized.Name, idx, err)
		}
	}
	return nil
}

// Install registers every rule of the pack with the morphology engine, in
// pack order. Earlier registrations shadow later ones under the engine's
// first-match lookup, so packs cannot override stock rules already present.
func (p Pack) Install(system *morphology.System) error {
	for _, spec := range p.Normalized().Rules {
		if err := system.AddRule(spec.Name, morphology.RuleType(spec.Type), spec.Marker, spec.Meaning); err != nil {
			return fmt.Errorf("rulepack: pack %s: %w", p.Name, err)
		}
	}
	return nil
}

// ParseYAML decodes and validates a single pack payload.
func ParseYAML(data []byte) (Pack, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Pack{}, fmt.Errorf("rulepack: payload is empty")
	}
	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return Pack{}, fmt.Errorf("rulepack: decode: %w", err)
	}
	if err := pack.Validate(); err != nil {
		return Pack{}, err
	}
	return pack.Normalized(), nil
}

// LoadFile reads one pack from disk.
func LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("rulepack: read %s: %w", path, err)
	}
	pack, err := ParseYAML(data)
	if err != nil {
		return Pack{}, fmt.Errorf("rulepack: %s: %w", path, err)
	}
	pack.Path = filepath.Clean(path)
	return pack, nil
}

// LoadDir scans a directory for *.yaml packs, returned in path order for
// deterministic installation. A missing directory means no packs.
func LoadDir(dir string) ([]Pack, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("rulepack: read %s: %w", trimmed, err)
	}
	var packs []Pack
	for _, entry := range entries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}
		pack, err := LoadFile(filepath.Join(trimmed, entry.Name()))
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}
	sort.Slice(packs, func(i, j int) bool { return packs[i].Path < packs[j].Path })
	return packs, nil
}

func isYAMLFile(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
