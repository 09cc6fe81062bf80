package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeSource(); err != nil {
		return err
	}
	c.normalizeReport()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeSource() error {
	c.Source.Path = strings.TrimSpace(c.Source.Path)
	if c.Source.Path == "" {
		if value, ok := os.LookupEnv(EnvSource); ok && strings.TrimSpace(value) != "" {
			c.Source.Path = strings.TrimSpace(value)
		} else {
			c.Source.Path = defaultSourcePath
		}
	}
	var err error
	if c.Source.Path, err = expandPath(c.Source.Path); err != nil {
		return fmt.Errorf("source.path: %w", err)
	}
	c.Source.Format = strings.ToLower(strings.TrimSpace(c.Source.Format))
	if c.Source.Format == "" {
		c.Source.Format = defaultFormat
	}
	c.Source.Table = strings.TrimSpace(c.Source.Table)
	if c.Source.Table == "" {
		c.Source.Table = defaultSourceTable
	}
	if c.Source.Delimiter == "" {
		c.Source.Delimiter = ","
	}
	return nil
}

func (c *Config) normalizeReport() {
	c.Report.Variant = strings.ToLower(strings.TrimSpace(c.Report.Variant))
	if c.Report.Variant == "" {
		c.Report.Variant = defaultVariant
	}
	c.Report.Sections = normalizeList(c.Report.Sections, strings.ToLower)
	c.Report.StopWords = normalizeList(c.Report.StopWords, nil)
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if value, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		var err error
		if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
			return fmt.Errorf("logging.log_dir: %w", err)
		}
	}
	return nil
}

func normalizeList(values []string, transform func(string) string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if transform != nil {
			v = transform(v)
		}
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
