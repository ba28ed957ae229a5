package config

import (
	"time"

	"github.com/alexisbeaulieu97/domkit/internal/debounce"
	"github.com/alexisbeaulieu97/domkit/internal/theme"
)

// Config is the domkit configuration document.
type Config struct {
	Log      LogSettings      `yaml:"log"`
	Debounce DebounceSettings `yaml:"debounce"`
	Theme    ThemeSettings    `yaml:"theme"`
}

// LogSettings controls the application logger.
type LogSettings struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}

// DebounceSettings controls the quiet period used by debounced operations.
type DebounceSettings struct {
	Delay time.Duration `yaml:"delay" validate:"nonnegative_duration"`
}

// ThemeSettings configures the theme toggle.
type ThemeSettings struct {
	Selector  string `yaml:"selector" validate:"required"`
	Attribute string `yaml:"attribute" validate:"required,attr_name"`
	OnTrue    string `yaml:"on_true" validate:"required"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	th := theme.DefaultOptions()
	return &Config{
		Log:      LogSettings{Level: "info", HumanReadable: true},
		Debounce: DebounceSettings{Delay: debounce.DefaultDelay},
		Theme: ThemeSettings{
			Selector:  th.Selector,
			Attribute: th.Attribute,
			OnTrue:    th.OnTrue,
		},
	}
}

// ThemeOptions converts the theme settings for theme.Bind.
func (c *Config) ThemeOptions() theme.Options {
	return theme.Options{
		Selector:  c.Theme.Selector,
		Attribute: c.Theme.Attribute,
		OnTrue:    c.Theme.OnTrue,
	}
}

// DebounceOptions converts the debounce settings for debounce.New.
func (c *Config) DebounceOptions() debounce.Options {
	opts := debounce.DefaultOptions()
	opts.Delay = c.Debounce.Delay
	return opts
}
