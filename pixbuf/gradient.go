package pixbuf

import (
	"fmt"
	"math"
)

// Defaults for GradientOptions zero values.
const (
	DefaultGradientRadius  = 4.0
	DefaultGradientSamples = 12
)

// GradientOptions configures a ring-sampled gradient search. The zero value
// uses the pixel's own color as the reference, a radius of 4 and 12 samples.
type GradientOptions struct {
	// Reference is the packed RGB24 color the ring samples are compared
	// against. When nil, the current color of the center pixel is used.
	Reference *uint32

	// Radius is the ring radius in pixels. Zero or negative selects
	// DefaultGradientRadius.
	Radius float64

	// Samples is the number of equally spaced directions to probe. Zero or
	// negative selects DefaultGradientSamples.
	Samples int
}

// GradientResult reports the direction of extremal color divergence found on
// the sample ring.
type GradientResult struct {
	// DX, DY are the unit direction components (cos θ, sin θ) of the
	// winning sample. Y grows downward, matching buffer coordinates.
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`

	// Divergence is the winning sample's absolute channel difference from
	// the reference color (0 to 765).
	Divergence int `json:"divergence"`

	// Samples is the number of ring candidates that landed in bounds and
	// were compared.
	Samples int `json:"samples"`
}

// MinGradient finds the direction from (x,y) toward the least different
// color on a ring of opts.Radius around it.
//
// The full turn is split into opts.Samples equal angles, iterated from 2π
// downward. Each candidate point at (x + round(r·cos θ), y + round(r·sin θ))
// is skipped if it falls outside the buffer; the survivors are compared to
// the reference color with AbsDiff. The first sample in iteration order
// achieving the minimal divergence wins; later ties do not displace it.
//
// When every candidate is out of bounds there is no direction to report and
// the error wraps ErrNoSamples. The search never writes to the buffer.
func (b *Buffer) MinGradient(x, y int, opts GradientOptions) (*GradientResult, error) {
	return b.gradient(x, y, opts, false)
}

// MaxGradient finds the direction from (x,y) toward the most different color
// on a ring of opts.Radius around it. Sampling, tie-breaking and the
// ErrNoSamples contract match MinGradient.
func (b *Buffer) MaxGradient(x, y int, opts GradientOptions) (*GradientResult, error) {
	return b.gradient(x, y, opts, true)
}

func (b *Buffer) gradient(x, y int, opts GradientOptions, most bool) (*GradientResult, error) {
	radius := opts.Radius
	if radius <= 0 {
		radius = DefaultGradientRadius
	}
	samples := opts.Samples
	if samples <= 0 {
		samples = DefaultGradientSamples
	}

	var ref uint32
	if opts.Reference != nil {
		ref = *opts.Reference & 0xFFFFFF
	} else {
		ref = b.Color(x, y)
	}

	// Running extremum starts just past the reachable range so the first
	// in-bounds sample always takes it; strict comparison afterwards keeps
	// the earliest winner on ties.
	best := maxAbsDiff + 1
	if most {
		best = -1
	}

	step := 2 * math.Pi / float64(samples)
	inBounds := 0
	var result *GradientResult

	for i := 0; i < samples; i++ {
		theta := 2*math.Pi - float64(i)*step
		dx := math.Cos(theta)
		dy := math.Sin(theta)

		// Round the offsets so axis-aligned samples land on the intended
		// neighbor despite float fuzz in cos/sin near 0 and 2π.
		cx := x + int(math.Round(radius*dx))
		cy := y + int(math.Round(radius*dy))
		if !b.inBounds(cx, cy) {
			continue
		}
		inBounds++

		d := b.AbsDiff(cx, cy, ref)
		if (most && d > best) || (!most && d < best) {
			best = d
			result = &GradientResult{DX: dx, DY: dy, Divergence: d}
		}
	}

	if result == nil {
		return nil, fmt.Errorf("center (%d,%d) radius %g: %w", x, y, radius, ErrNoSamples)
	}
	result.Samples = inBounds
	return result, nil
}
