package config

import (
	"errors"
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"petrenko/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAlign(); err != nil {
		return err
	}
	if err := c.validateLanguages(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAlign() error {
	if utf8.RuneCountInString(c.Align.Separator) != 1 {
		return fmt.Errorf("align.separator must be a single character, got %q", c.Align.Separator)
	}
	sep, _ := utf8.DecodeRuneInString(c.Align.Separator)
	if unicode.IsLetter(sep) || unicode.IsSpace(sep) || sep == '-' {
		return fmt.Errorf("align.separator %q would collide with scored text or word boundaries", c.Align.Separator)
	}
	if c.Align.CommentaryWordLimit < 1 {
		return errors.New("align.commentary_word_limit must be at least 1")
	}
	if c.Align.Tolerance < 0 || math.IsNaN(c.Align.Tolerance) || math.IsInf(c.Align.Tolerance, 0) {
		return errors.New("align.tolerance must be a finite value >= 0")
	}
	return nil
}

func (c *Config) validateLanguages() error {
	if _, err := language.Parse(c.Languages.Source); err != nil {
		return fmt.Errorf("languages.source: %w", err)
	}
	if _, err := language.Parse(c.Languages.Target); err != nil {
		return fmt.Errorf("languages.target: %w", err)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "plain", "table", "json":
	default:
		return fmt.Errorf("output.format: unsupported value %q (want plain, table, or json)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unsupported value %q (want auto, always, or never)", c.Output.Color)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
