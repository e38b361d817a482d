package config

const (
	defaultConfigPath      = "~/.config/curate/config.toml"
	defaultStorePath       = "~/.local/share/curate/repository.db"
	defaultLogDir          = "~/.local/share/curate/logs"
	defaultTagsFile        = "~/.config/curate/tags.csv"
	defaultStopFile        = "~/.config/curate/stopwords.csv"
	defaultMetadataSchema  = "dc"
	defaultMetadataElement = "subject"
	defaultTagLanguage     = "en"
	defaultBundle          = "ORIGINAL"
	defaultDiacriticsField = "dc.title"
	defaultDiacriticsLang  = "en"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	envTagsFile            = "CURATE_TAGS_FILE"
	envStopFile            = "CURATE_STOP_FILE"
	envStorePath           = "CURATE_STORE_PATH"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StorePath: defaultStorePath,
			LogDir:    defaultLogDir,
		},
		LoadTags: LoadTags{
			TagsFile:        defaultTagsFile,
			StopFile:        defaultStopFile,
			MetadataSchema:  defaultMetadataSchema,
			MetadataElement: defaultMetadataElement,
			Language:        defaultTagLanguage,
			Bundle:          defaultBundle,
		},
		Diacritics: Diacritics{
			Field:    defaultDiacriticsField,
			Language: defaultDiacriticsLang,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
