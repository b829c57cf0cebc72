package params

import "errors"

var (
	// ErrInvalidParameter is returned when a value is malformed or of the
	// wrong kind for its field. The previous value stays in effect.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnknownParameter is returned for paths that were never defined.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrBadDefinition is returned by the Define methods for duplicate paths
	// and inconsistent ranges.
	ErrBadDefinition = errors.New("bad parameter definition")
)

// ClampEvent records a numeric set that fell outside the field's range.
// It is informational; the clamped value is stored and the set succeeds.
type ClampEvent struct {
	Path      string
	Requested float64
	Stored    float64
}
