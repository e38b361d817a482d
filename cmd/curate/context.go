package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/UoEMainLibrary/dspace-additions/internal/config"
	"github.com/UoEMainLibrary/dspace-additions/internal/curation"
	"github.com/UoEMainLibrary/dspace-additions/internal/diacritics"
	"github.com/UoEMainLibrary/dspace-additions/internal/logging"
	"github.com/UoEMainLibrary/dspace-additions/internal/repository"
	"github.com/UoEMainLibrary/dspace-additions/internal/tagging"
)

type commandContext struct {
	configFlag *string
	registry   *curation.Registry

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, registry *curation.Registry) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		registry:   registry,
	}
}

func defaultRegistry() *curation.Registry {
	registry := curation.NewRegistry()
	// Names are constants; registration cannot collide.
	_ = registry.Register(tagging.Name, tagging.Summary, tagging.Factory)
	_ = registry.Register(diacritics.Name, diacritics.Summary, diacritics.Factory)
	return registry
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
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) withStore(fn func(*config.Config, *repository.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := repository.Open(cfg)
	if err != nil {
		return fmt.Errorf("open repository store: %w", err)
	}
	defer store.Close()
	return fn(cfg, store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
