package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Align contains the scoring and matching knobs.
type Align struct {
	// Separator divides an annotated line into text and commentary. Must be
	// a single character.
	Separator string `toml:"separator"`
	// CommentaryWordLimit is how many commentary words are scored. Default: 5
	CommentaryWordLimit int `toml:"commentary_word_limit"`
	// Tolerance is the largest index difference still treated as a match.
	// Zero keeps exact floating-point equality.
	Tolerance float64 `toml:"tolerance"`
	// FinalizeEmptyCommentary multiplies the primary index by its letter
	// count even when the commentary is blank.
	FinalizeEmptyCommentary bool `toml:"finalize_empty_commentary"`
	// Strict fails the run on the first malformed annotated line instead of
	// skipping it.
	Strict bool `toml:"strict"`
}

// Languages names the two sides of the corpus as BCP 47 tags.
type Languages struct {
	Source string `toml:"source"`
	Target string `toml:"target"`
}

// Output contains presentation settings.
type Output struct {
	Format     string `toml:"format"`
	ShowTiming bool   `toml:"show_timing"`
	Color      string `toml:"color"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	Dir    string `toml:"dir"`
}

// Config encapsulates all configuration values for petrenko.
//
// Configuration sections:
//   - Align: separator, commentary word limit, tolerance, strictness
//   - Languages: source and target language tags
//   - Output: report format, timing footer, colour
//   - Logging: log format, level, and optional log directory
type Config struct {
	Align     Align     `toml:"align"`
	Languages Languages `toml:"languages"`
	Output    Output    `toml:"output"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. A missing file
// yields defaults; the returned bool reports whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the log directory when one is configured.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Logging.Dir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.Logging.Dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Logging.Dir, err)
	}
	return nil
}

// SeparatorRune returns the configured separator as a rune.
func (c *Config) SeparatorRune() rune {
	for _, r := range c.Align.Separator {
		return r
	}
	return '|'
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
