package config

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
)

const maxTabWidth = 16

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks that the configuration is valid. Field problems are
// reported together as criterio.FieldErrors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("viewer.tab_width", c.Viewer.TabWidth, tabWidthInRange),
		criterio.Run("log.level", c.Log.Level, knownLogLevel),
		c.validateTheme(),
	)
}

func (c *Config) validateTheme() error {
	var errs criterio.FieldErrorsBuilder
	for _, color := range []struct{ field, value string }{
		{"theme.header", c.Theme.Header},
		{"theme.footer", c.Theme.Footer},
		{"theme.content", c.Theme.Content},
		{"theme.highlight", c.Theme.Highlight},
		{"theme.current", c.Theme.Current},
		{"theme.status", c.Theme.Status},
	} {
		if err := validColor(color.value); err != nil {
			errs = errs.Append(color.field, err)
		}
	}
	return errs.ToError()
}

func tabWidthInRange(width int) error {
	if width < 1 || width > maxTabWidth {
		return fmt.Errorf("must be between 1 and %d, got %d", maxTabWidth, width)
	}
	return nil
}

func knownLogLevel(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("unknown level %q", level)
	}
	return nil
}

// validColor accepts ANSI color codes and hex colors.
func validColor(value string) error {
	if hexColor.MatchString(value) {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 255 {
		return fmt.Errorf("invalid color %q: want an ANSI code 0-255 or #rrggbb", value)
	}
	return nil
}
