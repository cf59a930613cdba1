package bootstrap

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	DefaultLegacyClass = "lt-ie9"
	DefaultReadyClass  = "js-ready"
)

// Config names the marker classes read from and written to the document root.
type Config struct {
	// LegacyClass marks an old browser, usually injected by a conditional comment.
	LegacyClass string
	// ReadyClass is added once initialization completes.
	ReadyClass string
}

func DefaultConfig() Config {
	return Config{
		LegacyClass: DefaultLegacyClass,
		ReadyClass:  DefaultReadyClass,
	}
}

func (c Config) Validate() error {
	if err := validateClass(c.LegacyClass); err != nil {
		return errors.Wrap(err, "invalid legacy class")
	}
	if err := validateClass(c.ReadyClass); err != nil {
		return errors.Wrap(err, "invalid ready class")
	}
	return nil
}

// validateClass rejects tokens classList.add would throw on.
func validateClass(class string) error {
	if class == "" {
		return errors.New("class name is empty")
	}
	if strings.IndexFunc(class, unicode.IsSpace) >= 0 {
		return errors.Errorf("class name %q contains whitespace", class)
	}
	return nil
}
