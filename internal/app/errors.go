package app

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when the scene does not hold exactly one Entrance and one Exit.
	ErrConfiguration = errors.New("scene configuration error")
	// ErrRoutingFailure is returned when no path leads from the Entrance to the Exit.
	ErrRoutingFailure = errors.New("unable to create a path from the entrance to the exit")
)

// ConfigError reports how many active units carry an anchor name.
type ConfigError struct {
	Name  string
	Count int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: expected a single unit named %q, found %d", ErrConfiguration, e.Name, e.Count)
}

// Is makes errors.Is(err, ErrConfiguration) hold for any *ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}
