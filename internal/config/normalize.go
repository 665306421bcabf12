package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeAlign()
	c.normalizeLanguages()
	c.normalizeOutput()
	return c.normalizeLogging()
}

func (c *Config) normalizeAlign() {
	if c.Align.Separator == "" {
		c.Align.Separator = defaultSeparator
	}
	if c.Align.CommentaryWordLimit == 0 {
		c.Align.CommentaryWordLimit = defaultCommentaryWordLimit
	}
}

func (c *Config) normalizeLanguages() {
	c.Languages.Source = strings.TrimSpace(c.Languages.Source)
	if c.Languages.Source == "" {
		c.Languages.Source = defaultSourceLanguage
	}
	c.Languages.Target = strings.TrimSpace(c.Languages.Target)
	if c.Languages.Target == "" {
		c.Languages.Target = defaultTargetLanguage
	}
}

func (c *Config) normalizeOutput() {
	if value, ok := os.LookupEnv("PETRENKO_OUTPUT_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Output.Format = value
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultOutputColor
	}
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("PETRENKO_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = ""
		return nil
	}
	var err error
	if c.Logging.Dir, err = expandPath(c.Logging.Dir); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
