package pixbuf

import "errors"

// Sentinel errors returned by construction and gradient search. They are
// always wrapped with context; match them with errors.Is.
var (
	// ErrMissingDimensions is returned when a raw source carries neither a
	// width nor a height, so the buffer shape cannot be derived.
	ErrMissingDimensions = errors.New("raw source needs a width or height")

	// ErrUnsupportedSource is returned when a Source carries a kind outside
	// the closed set understood by New.
	ErrUnsupportedSource = errors.New("unsupported source kind")

	// ErrSurfaceData is returned when a surface hands back channel data
	// whose length does not fill the requested rectangle, for example when
	// the rectangle extends past the surface edge.
	ErrSurfaceData = errors.New("surface data does not fill rectangle")

	// ErrNoSamples is returned by MinGradient/MaxGradient when every ring
	// candidate falls outside the buffer, leaving no direction to report.
	ErrNoSamples = errors.New("no ring sample in bounds")
)
