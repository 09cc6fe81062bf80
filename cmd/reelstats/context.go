package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"reelstats/internal/catalog"
	"reelstats/internal/config"
	"reelstats/internal/logging"
)

type commandContext struct {
	configFlag *string
	sourceFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	catalogOnce sync.Once
	catalog     *catalog.Store
	catalogErr  error
}

func newCommandContext(configFlag, sourceFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		sourceFlag: sourceFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.sourceFlag != nil && strings.TrimSpace(*c.sourceFlag) != "" {
			source, err := config.ExpandPath(strings.TrimSpace(*c.sourceFlag))
			if err != nil {
				c.configErr = fmt.Errorf("resolve source path: %w", err)
				return
			}
			cfg.Source.Path = source
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// ensureCatalog loads the configured source once per invocation.
func (c *commandContext) ensureCatalog(ctx context.Context) (*catalog.Store, error) {
	c.catalogOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.catalogErr = err
			return
		}
		logger, err := c.ensureLogger()
		if err != nil {
			c.catalogErr = err
			return
		}
		src, err := catalog.OpenSource(cfg.Source.Path, catalog.SourceOptions{
			Format:    cfg.Source.Format,
			Table:     cfg.Source.Table,
			Delimiter: cfg.DelimiterRune(),
		})
		if err != nil {
			c.catalogErr = err
			return
		}
		c.catalog, c.catalogErr = catalog.Load(ctx, src, catalog.WithLogger(logger))
	})
	return c.catalog, c.catalogErr
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
