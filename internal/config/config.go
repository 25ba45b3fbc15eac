// internal/config/config.go
//
// This package handles configuration and the .glossa directory structure.
// Every project that runs glossa gets a .glossa/ folder seeding the session:
// starting inventories, syllable patterns, word order and generation limits.
// The created language itself is never persisted; config.yaml only decides
// where a session starts.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/miravel/glossa/internal/syntax"
)

const (
	// GlossaDir is the name of the directory we create in each project.
	GlossaDir = ".glossa"

	defaultMaxAttempts       = 10000
	defaultSampleWords       = 15
	defaultSampleSentences   = 3
	defaultShowcaseSentences = 6
	defaultRulepackDir       = "rulepacks"

	maxConsonantLen = 2
	maxVowelLen     = 3
)

const defaultConfigYAML = `# glossa session configuration
version: 1

# Starting inventories for the phonology engine. Edit freely; the walkthrough
# also lets you add and remove graphemes interactively.
language:
  consonants: [p, b, t, d, k, g, m, n, s, z, l, r, ñ, ll, j, ch, f, v, h]
  vowels: [a, e, i, o, u]
  syllable_patterns: [CV, CVC, CVV, V, CCV]
  word_order: SVO

generation:
  # Retry ceiling for the generate-and-test word loop. An inventory that can
  # never satisfy the phonotactic constraints fails after this many attempts
  # instead of spinning forever.
  max_attempts: 10000
  sample_words: 15
  sample_sentences: 3
  showcase_sentences: 6

# Morphology rule packs (*.yaml) are discovered here, relative to .glossa/.
rulepacks:
  dir: rulepacks
`

// LanguageConfig seeds the three engines.
type LanguageConfig struct {
	Consonants       []string `yaml:"consonants"`
	Vowels           []string `yaml:"vowels"`
	SyllablePatterns []string `yaml:"syllable_patterns"`
	WordOrder        string   `yaml:"word_order"`
}

// GenerationConfig bounds and sizes the generators.
type GenerationConfig struct {
	MaxAttempts       int `yaml:"max_attempts"`
	SampleWords       int `yaml:"sample_words"`
	SampleSentences   int `yaml:"sample_sentences"`
	ShowcaseSentences int `yaml:"showcase_sentences"`
}

// RulepackConfig locates morphology rule packs.
type RulepackConfig struct {
	Dir string `yaml:"dir"`
}

// SessionConfig models .glossa/config.yaml.
type SessionConfig struct {
	Version    int              `yaml:"version"`
	Language   LanguageConfig   `yaml:"language"`
	Generation GenerationConfig `yaml:"generation"`
	Rulepacks  RulepackConfig   `yaml:"rulepacks"`
}

// Config holds the runtime configuration for glossa.
type Config struct {
	// ProjectDir is the directory where the user ran `glossa` from.
	ProjectDir string

	// GlossaProjectDir is ProjectDir/.glossa.
	GlossaProjectDir string

	Session SessionConfig
}

// InitGlossaDir creates the .glossa directory structure in the given project
// directory and writes a commented default config.yaml if none exists.
func InitGlossaDir(projectDir string) error {
	glossaDir := filepath.Join(projectDir, GlossaDir)
	dirs := []string{
		filepath.Join(glossaDir, "logs"),
		filepath.Join(glossaDir, defaultRulepackDir),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return ensureSessionConfig(filepath.Join(glossaDir, "config.yaml"))
}

// NewConfig creates a Config populated from .glossa/config.yaml, falling back
// to defaults when the file is absent.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:       projectDir,
		GlossaProjectDir: filepath.Join(projectDir, GlossaDir),
		Session:          defaultSessionConfig(),
	}
	if err := cfg.loadSessionConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.GlossaProjectDir, "logs")
}

// JourneyLogPath returns the walkthrough log file location.
func (c *Config) JourneyLogPath() string {
	return filepath.Join(c.LogsDir(), "journey.log")
}

// RulepacksDir returns the rule pack discovery directory.
func (c *Config) RulepacksDir() string {
	dir := c.Session.Rulepacks.Dir
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.GlossaProjectDir, dir)
}

// SessionConfigPath returns the on-disk location for the session config file.
func (c *Config) SessionConfigPath() string {
	return filepath.Join(c.GlossaProjectDir, "config.yaml")
}

// WordOrder returns the configured starting word order.
func (c *Config) WordOrder() syntax.WordOrder {
	return syntax.Normalize(c.Session.Language.WordOrder)
}

// SetWordOrder updates the starting word order and persists the value back
// to .glossa/config.yaml so the next session opens where this one ended.
func (c *Config) SetWordOrder(value string) error {
	order := syntax.Normalize(value)
	c.Session.Language.WordOrder = string(order)
	return c.saveSessionConfig()
}

func (c *Config) loadSessionConfig() error {
	path := c.SessionConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed SessionConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Session = parsed
	return nil
}

func (c *Config) saveSessionConfig() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Session.applyDefaults()
	c.Session.normalize()
	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.GlossaProjectDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure glossa dir: %w", err)
	}
	data, err := yaml.Marshal(c.Session)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.SessionConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("config: write session config: %w", err)
	}
	return nil
}

func defaultSessionConfig() SessionConfig {
	return SessionConfig{
		Version: 1,
		Language: LanguageConfig{
			Consonants: []string{
				"p", "b", "t", "d", "k", "g", "m", "n", "s", "z",
				"l", "r", "ñ", "ll", "j", "ch", "f", "v", "h",
			},
			Vowels:           []string{"a", "e", "i", "o", "u"},
			SyllablePatterns: []string{"CV", "CVC", "CVV", "V", "CCV"},
			WordOrder:        string(syntax.OrderSVO),
		},
		Generation: GenerationConfig{
			MaxAttempts:       defaultMaxAttempts,
			SampleWords:       defaultSampleWords,
			SampleSentences:   defaultSampleSentences,
			ShowcaseSentences: defaultShowcaseSentences,
		},
		Rulepacks: RulepackConfig{Dir: defaultRulepackDir},
	}
}

func (sc *SessionConfig) applyDefaults() {
	defaults := defaultSessionConfig()
	if sc.Version == 0 {
		sc.Version = defaults.Version
	}
	if len(sc.Language.Consonants) == 0 {
		sc.Language.Consonants = defaults.Language.Consonants
	}
	if len(sc.Language.Vowels) == 0 {
		sc.Language.Vowels = defaults.Language.Vowels
	}
	if len(sc.Language.SyllablePatterns) == 0 {
		sc.Language.SyllablePatterns = defaults.Language.SyllablePatterns
	}
	if sc.Generation.MaxAttempts == 0 {
		sc.Generation.MaxAttempts = defaults.Generation.MaxAttempts
	}
	if sc.Generation.SampleWords == 0 {
		sc.Generation.SampleWords = defaults.Generation.SampleWords
	}
	if sc.Generation.SampleSentences == 0 {
		sc.Generation.SampleSentences = defaults.Generation.SampleSentences
	}
	if sc.Generation.ShowcaseSentences == 0 {
		sc.Generation.ShowcaseSentences = defaults.Generation.ShowcaseSentences
	}
	if strings.TrimSpace(sc.Rulepacks.Dir) == "" {
		sc.Rulepacks.Dir = defaults.Rulepacks.Dir
	}
}

func (sc *SessionConfig) normalize() {
	sc.Language.Consonants = trimAll(sc.Language.Consonants)
	sc.Language.Vowels = trimAll(sc.Language.Vowels)
	patterns := make([]string, 0, len(sc.Language.SyllablePatterns))
	for _, p := range sc.Language.SyllablePatterns {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	sc.Language.SyllablePatterns = patterns
	sc.Language.WordOrder = string(syntax.Normalize(sc.Language.WordOrder))
	sc.Rulepacks.Dir = strings.TrimSpace(sc.Rulepacks.Dir)
}

func (sc *SessionConfig) validate() error {
	if sc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	for i, g := range sc.Language.Consonants {
		if n := len([]rune(g)); n < 1 || n > maxConsonantLen {
			return fmt.Errorf("language.consonants[%d]: %q must be 1-%d characters", i, g, maxConsonantLen)
		}
	}
	for i, g := range sc.Language.Vowels {
		if n := len([]rune(g)); n < 1 || n > maxVowelLen {
			return fmt.Errorf("language.vowels[%d]: %q must be 1-%d characters", i, g, maxVowelLen)
		}
	}
	for i, p := range sc.Language.SyllablePatterns {
		for _, symbol := range p {
			if symbol != 'C' && symbol != 'V' {
				return fmt.Errorf("language.syllable_patterns[%d]: %q may only contain C and V", i, p)
			}
		}
	}
	if sc.Generation.MaxAttempts < 1 {
		return fmt.Errorf("generation.max_attempts must be >= 1")
	}
	if sc.Generation.SampleWords < 1 {
		return fmt.Errorf("generation.sample_words must be >= 1")
	}
	if sc.Generation.SampleSentences < 1 {
		return fmt.Errorf("generation.sample_sentences must be >= 1")
	}
	if sc.Generation.ShowcaseSentences < 1 {
		return fmt.Errorf("generation.showcase_sentences must be >= 1")
	}
	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func ensureSessionConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
