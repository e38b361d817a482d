package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/UoEMainLibrary/dspace-additions/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Empty vocabulary and stopword files are written so tasks initialize cleanly;
// use WithVocabulary and WithStopwords to fill them.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StorePath = filepath.Join(base, "repository.db")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.LoadTags.TagsFile = filepath.Join(base, "tags.csv")
	cfgVal.LoadTags.StopFile = filepath.Join(base, "stopwords.csv")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	WriteFile(t, cfgVal.LoadTags.TagsFile, "")
	WriteFile(t, cfgVal.LoadTags.StopFile, "")

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithVocabulary writes contents to the configured tags file.
func WithVocabulary(contents string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.LoadTags.TagsFile, contents)
	}
}

// WithStopwords writes contents to the configured stopword file.
func WithStopwords(contents string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.LoadTags.StopFile, contents)
	}
}

// WithTagField overrides the metadata field tags are written to.
func WithTagField(schema, element, qualifier, language string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.LoadTags.MetadataSchema = schema
		b.cfg.LoadTags.MetadataElement = element
		b.cfg.LoadTags.MetadataQualifier = qualifier
		b.cfg.LoadTags.Language = language
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StorePath)
}
