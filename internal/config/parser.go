package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	domerrors "github.com/alexisbeaulieu97/domkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the configuration at path over the defaults and validates it. An
// empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domerrors.NewParseError(path, 0, fmt.Errorf("config file not found: %w", err))
		}
		return nil, domerrors.NewParseError(path, 0, err)
	}

	if err := Parse(data, cfg); err != nil {
		var parseErr *domerrors.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML data into cfg, keeping fields the document omits, and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return domerrors.NewParseError("<input>", extractLine(err), err)
	}
	return Validate(cfg)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
