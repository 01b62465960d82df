package logger

// LoggerConfig defines logging configuration
type LoggerConfig struct {
	Level       string `json:"level" yaml:"level"`
	Format      string `json:"format" yaml:"format"` // json or console
	Development bool   `json:"development" yaml:"development"`
}

// DefaultConfig returns the configuration used when none is saved.
func DefaultConfig() LoggerConfig {
	return LoggerConfig{
		Level:       "info",
		Format:      "console",
		Development: false,
	}
}

// DevelopmentConfig returns development configuration
func DevelopmentConfig() LoggerConfig {
	return LoggerConfig{
		Level:       "debug",
		Format:      "console",
		Development: true,
	}
}
