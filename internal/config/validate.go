package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSource() error {
	if c.Source.Path == "" {
		return errors.New("source.path must be set")
	}
	switch c.Source.Format {
	case "auto", "csv", "sqlite":
	default:
		return fmt.Errorf("source.format: unsupported value %q (use auto, csv or sqlite)", c.Source.Format)
	}
	switch c.Source.Delimiter {
	case "tab", `\t`:
		return nil
	}
	if utf8.RuneCountInString(c.Source.Delimiter) != 1 {
		return fmt.Errorf("source.delimiter must be a single character, got %q", c.Source.Delimiter)
	}
	if c.Source.Delimiter == `"` || c.Source.Delimiter == "\n" || c.Source.Delimiter == "\r" {
		return fmt.Errorf("source.delimiter %q is not allowed", c.Source.Delimiter)
	}
	return nil
}

func (c *Config) validateReport() error {
	if c.Report.TopN < 0 {
		return errors.New("report.top_n must be >= 0 (0 means no limit)")
	}
	if c.Report.WordTopN < 0 {
		return errors.New("report.word_top_n must be >= 0 (0 means no limit)")
	}
	if c.Report.PreviewRows < 0 {
		return errors.New("report.preview_rows must be >= 0")
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
