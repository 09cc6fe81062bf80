package config

const (
	defaultConfigPath  = "~/.config/reelstats/config.toml"
	projectConfigFile  = "reelstats.toml"
	dotEnvFile         = ".env"
	defaultSourcePath  = "netflix_titles.csv"
	defaultSourceTable = "titles"
	defaultFormat      = "auto"
	defaultVariant     = "full"
	defaultTopN        = 10
	defaultWordTopN    = 25
	defaultPreviewRows = 5
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Environment fallbacks consulted when the config file leaves a value empty.
const (
	EnvSource   = "REELSTATS_SOURCE"
	EnvLogLevel = "REELSTATS_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults. Source.Path is
// left empty so the REELSTATS_SOURCE fallback can apply during normalization.
func Default() Config {
	return Config{
		Source: Source{
			Format:    defaultFormat,
			Table:     defaultSourceTable,
			Delimiter: ",",
		},
		Report: Report{
			Variant:     defaultVariant,
			TopN:        defaultTopN,
			WordTopN:    defaultWordTopN,
			PreviewRows: defaultPreviewRows,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
