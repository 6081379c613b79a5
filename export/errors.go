package export

import "errors"

// Sentinel errors for the export package.
var (
	// ErrNoCanvas is returned when no raster canvas can be allocated for a
	// document: its declared size is not positive, not finite, or larger
	// than the configured maximum.
	ErrNoCanvas = errors.New("export: cannot obtain drawing canvas")

	// ErrNilDocument is returned when a nil document is exported.
	ErrNilDocument = errors.New("export: nil document")
)
