package config

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// Validate checks that the configuration is structurally valid: systems are
// complete, identifier patterns compile, and protected globs parse.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateSystems(),
		c.validateProtected(),
	)
}

func (c *Config) validateSystems() error {
	var errs criterio.FieldErrorsBuilder

	for i, sys := range c.Systems {
		field := fmt.Sprintf("systems[%d]", i)

		if sys.Name == "" {
			errs = errs.Append(field+".name", fmt.Errorf("name is required"))
		}
		if !sys.Type.IsValid() {
			errs = errs.Append(field+".type", fmt.Errorf("unknown system type %q", sys.Type))
		}
		if sys.Command == "" {
			errs = errs.Append(field+".command", fmt.Errorf("command is required"))
		}
		if len(sys.Patterns) == 0 {
			errs = errs.Append(field+".patterns", fmt.Errorf("at least one pattern is required"))
		}

		for j, p := range sys.Patterns {
			if _, err := regexp.Compile(p); err != nil {
				errs = errs.Append(fmt.Sprintf("%s.patterns[%d]", field, j), fmt.Errorf("invalid regex %q: %w", p, err))
			}
		}

		if sys.MessageFormat != "" && sys.MessageFormat != MessageFormatGeneric {
			errs = errs.Append(field+".message-format", fmt.Errorf("unknown message format %q", sys.MessageFormat))
		}
	}

	return errs.ToError()
}

func (c *Config) validateProtected() error {
	var errs criterio.FieldErrorsBuilder

	for i, pattern := range c.Protected {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("protected[%d]", i), fmt.Errorf("invalid glob %q", pattern))
		}
	}

	return errs.ToError()
}
