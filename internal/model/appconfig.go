package model

import "github.com/piwi3910/ShapeBoard/internal/logger"

// AppConfig holds application-wide preferences.
type AppConfig struct {
	Locale       string  `json:"locale" yaml:"locale"` // "en", "ru", or any BCP 47 tag
	Theme        string  `json:"theme" yaml:"theme"`   // "light", "dark", "system"
	WindowWidth  float64 `json:"window_width" yaml:"window_width"`
	WindowHeight float64 `json:"window_height" yaml:"window_height"`
	RandomSeed   int64   `json:"random_seed" yaml:"random_seed"` // 0 = seed from the clock
	ShowToolTips bool    `json:"show_tooltips" yaml:"show_tooltips"`

	Logging logger.LoggerConfig `json:"logging" yaml:"logging"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Locale:       "en",
		Theme:        "system",
		WindowWidth:  900,
		WindowHeight: 600,
		RandomSeed:   0,
		ShowToolTips: true,
		Logging:      logger.DefaultConfig(),
	}
}

// Normalize fills zero-valued fields from the defaults so a partially
// written config file still yields a usable configuration.
func (c *AppConfig) Normalize() {
	d := DefaultAppConfig()
	if c.Locale == "" {
		c.Locale = d.Locale
	}
	switch c.Theme {
	case "light", "dark", "system":
	default:
		c.Theme = d.Theme
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = d.WindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = d.WindowHeight
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
}

// Messages returns the feedback catalog for the configured locale.
func (c AppConfig) Messages() Messages {
	return MessagesFor(c.Locale)
}
