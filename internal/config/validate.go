package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLoadTags(); err != nil {
		return err
	}
	if err := c.validateDiacritics(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.StorePath) == "" {
		return errors.New("paths.store_path must be set")
	}
	return nil
}

func (c *Config) validateLoadTags() error {
	if c.LoadTags.TagsFile == "" {
		return fmt.Errorf("loadtags.tags_file must be set (or export %s)", envTagsFile)
	}
	if c.LoadTags.StopFile == "" {
		return fmt.Errorf("loadtags.stop_file must be set (or export %s)", envStopFile)
	}
	if c.LoadTags.MetadataSchema == "" {
		return errors.New("loadtags.metadata_schema must be set")
	}
	if c.LoadTags.MetadataElement == "" {
		return errors.New("loadtags.metadata_element must be set")
	}
	if strings.ContainsRune(c.LoadTags.MetadataSchema+c.LoadTags.MetadataElement+c.LoadTags.MetadataQualifier, '.') {
		return errors.New("loadtags metadata schema, element, and qualifier must not contain '.'")
	}
	return nil
}

func (c *Config) validateDiacritics() error {
	parts := strings.Split(c.Diacritics.Field, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("diacritics.field %q must be schema.element or schema.element.qualifier", c.Diacritics.Field)
	}
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			return fmt.Errorf("diacritics.field %q has an empty component", c.Diacritics.Field)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
}
