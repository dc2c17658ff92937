package smallworld

import "errors"

// Sentinel errors for experiment configuration and execution.
var (
	// ErrInvalidConfig indicates a Config field outside its domain.
	ErrInvalidConfig = errors.New("smallworld: invalid config")

	// ErrUnknownFormat indicates an unsupported report format.
	ErrUnknownFormat = errors.New("smallworld: unknown report format")
)
