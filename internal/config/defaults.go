package config

const (
	defaultOutputFormat   = "human"
	defaultOutputColor    = "auto"
	defaultPactlBinary    = "pactl"
	defaultAplayBinary    = "aplay"
	defaultSystemctl      = "systemctl"
	defaultCommandTimeout = 5
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultOutputColor,
		},
		Tools: Tools{
			Pactl:          defaultPactlBinary,
			Aplay:          defaultAplayBinary,
			Systemctl:      defaultSystemctl,
			CommandTimeout: defaultCommandTimeout,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
