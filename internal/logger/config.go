package logger

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is the output format: json or console.
	Format string `mapstructure:"format"`
	// Output selects the destination: stdout or stderr.
	Output string `mapstructure:"output"`
	// NoColor disables colorized console output.
	NoColor bool `mapstructure:"no_color"`
	// Timestamp adds a timestamp field to every event.
	Timestamp bool `mapstructure:"timestamp"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
}
