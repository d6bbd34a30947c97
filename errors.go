package arbor

import "errors"

var (
	// ErrInvalidConfig is wrapped by every Config validation failure.
	ErrInvalidConfig = errors.New("arbor: invalid config")
	// ErrUnknownNode is returned when a scene description names a node that
	// does not exist.
	ErrUnknownNode = errors.New("arbor: unknown node")
)
