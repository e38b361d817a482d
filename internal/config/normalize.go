package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeLoadTags(); err != nil {
		return err
	}
	c.normalizeDiacritics()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if value, ok := os.LookupEnv(envStorePath); ok && strings.TrimSpace(value) != "" {
		c.Paths.StorePath = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.StorePath) == "" {
		c.Paths.StorePath = defaultStorePath
	}
	if c.Paths.StorePath, err = expandPath(strings.TrimSpace(c.Paths.StorePath)); err != nil {
		return fmt.Errorf("paths.store_path: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLoadTags() error {
	var err error
	if value, ok := os.LookupEnv(envTagsFile); ok && strings.TrimSpace(value) != "" {
		c.LoadTags.TagsFile = value
	}
	if value, ok := os.LookupEnv(envStopFile); ok && strings.TrimSpace(value) != "" {
		c.LoadTags.StopFile = value
	}
	if c.LoadTags.TagsFile, err = expandPath(strings.TrimSpace(c.LoadTags.TagsFile)); err != nil {
		return fmt.Errorf("loadtags.tags_file: %w", err)
	}
	if c.LoadTags.StopFile, err = expandPath(strings.TrimSpace(c.LoadTags.StopFile)); err != nil {
		return fmt.Errorf("loadtags.stop_file: %w", err)
	}
	c.LoadTags.MetadataSchema = strings.TrimSpace(c.LoadTags.MetadataSchema)
	c.LoadTags.MetadataElement = strings.TrimSpace(c.LoadTags.MetadataElement)
	c.LoadTags.MetadataQualifier = strings.TrimSpace(c.LoadTags.MetadataQualifier)
	c.LoadTags.Language = strings.TrimSpace(c.LoadTags.Language)
	c.LoadTags.Bundle = strings.TrimSpace(c.LoadTags.Bundle)
	if c.LoadTags.Bundle == "" {
		c.LoadTags.Bundle = defaultBundle
	}
	return nil
}

func (c *Config) normalizeDiacritics() {
	c.Diacritics.Field = strings.TrimSpace(c.Diacritics.Field)
	if c.Diacritics.Field == "" {
		c.Diacritics.Field = defaultDiacriticsField
	}
	c.Diacritics.Language = strings.TrimSpace(c.Diacritics.Language)
	if c.Diacritics.Language == "" {
		c.Diacritics.Language = defaultDiacriticsLang
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
