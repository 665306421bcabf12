package config

const (
	defaultSeparator           = "|"
	defaultCommentaryWordLimit = 5
	defaultSourceLanguage      = "ru"
	defaultTargetLanguage      = "en"
	defaultOutputFormat        = "plain"
	defaultOutputColor         = "auto"
	defaultLogFormat           = "console"
	defaultLogLevel            = "warn"
	defaultConfigPath          = "~/.config/petrenko/config.toml"
	projectConfigName          = "petrenko.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Align: Align{
			Separator:           defaultSeparator,
			CommentaryWordLimit: defaultCommentaryWordLimit,
		},
		Languages: Languages{
			Source: defaultSourceLanguage,
			Target: defaultTargetLanguage,
		},
		Output: Output{
			Format:     defaultOutputFormat,
			ShowTiming: true,
			Color:      defaultOutputColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
