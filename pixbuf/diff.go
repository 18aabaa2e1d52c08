package pixbuf

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// SignedDiff returns the sum of the signed per-channel differences between
// pixel (x,y) and a packed RGB24 reference color, alpha ignored. Positive
// means the pixel is brighter than the reference overall, negative darker.
// Out-of-range coordinates compare the zero pixel.
func (b *Buffer) SignedDiff(x, y int, ref uint32) int {
	px := b.Channels(x, y)
	r, g, bl := UnpackRGB(ref)
	return int(px.R) - int(r) + int(px.G) - int(g) + int(px.B) - int(bl)
}

// AbsDiff returns the sum of the absolute per-channel differences between
// pixel (x,y) and a packed RGB24 reference color, alpha ignored. This is the
// divergence metric used by the gradient search. Out-of-range coordinates
// compare the zero pixel.
func (b *Buffer) AbsDiff(x, y int, ref uint32) int {
	px := b.Channels(x, y)
	r, g, bl := UnpackRGB(ref)
	return absDiff(px.R, r) + absDiff(px.G, g) + absDiff(px.B, bl)
}

// maxAbsDiff is the largest value AbsDiff can return (three channels fully
// apart).
const maxAbsDiff = 3 * 255

// LabDiff returns the perceptual CIE-Lab distance between pixel (x,y) and a
// packed RGB24 reference color. It is a companion metric to AbsDiff for
// callers that care about perceived rather than arithmetic difference.
func (b *Buffer) LabDiff(x, y int, ref uint32) float64 {
	px := b.Channels(x, y)
	r, g, bl := UnpackRGB(ref)

	c1 := colorful.Color{R: float64(px.R) / 255, G: float64(px.G) / 255, B: float64(px.B) / 255}
	c2 := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(bl) / 255}
	return c1.DistanceLab(c2)
}

// Region is a rectangular buffer region: (X1,Y1) inclusive top-left,
// (X2,Y2) exclusive bottom-right.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// RegionComparison summarizes how similar two buffer regions are.
type RegionComparison struct {
	// SimilarityScore is the fraction of compared pixels whose average
	// channel difference stays within the tolerance, 0-1.
	SimilarityScore float64 `json:"similarity_score"`

	// PixelsDifferent counts compared pixels exceeding the tolerance.
	PixelsDifferent int `json:"pixels_different"`

	// TotalPixels is the number of pixel pairs compared (the overlap of
	// the two region sizes).
	TotalPixels int `json:"total_pixels"`

	// SameSize reports whether the two regions had identical dimensions.
	SameSize bool `json:"same_size"`

	// AverageColorDiff is the mean per-pixel average channel difference.
	AverageColorDiff float64 `json:"average_color_diff"`
}

// CompareRegions compares two regions of the buffer pixel by pixel.
//
// Regions of different sizes are compared over their common top-left overlap.
// A pixel pair counts as different when its average channel difference
// exceeds 10 (out of 255).
func (b *Buffer) CompareRegions(r1, r2 Region) (*RegionComparison, error) {
	w1, h1 := r1.X2-r1.X1, r1.Y2-r1.Y1
	w2, h2 := r2.X2-r2.X1, r2.Y2-r2.Y1
	if w1 <= 0 || h1 <= 0 || w2 <= 0 || h2 <= 0 {
		return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}

	minW, minH := w1, h1
	if w2 < minW {
		minW = w2
	}
	if h2 < minH {
		minH = h2
	}

	totalPixels := minW * minH
	pixelsDifferent := 0
	var totalColorDiff float64

	for dy := 0; dy < minH; dy++ {
		for dx := 0; dx < minW; dx++ {
			diff := float64(b.AbsDiff(r1.X1+dx, r1.Y1+dy, b.Color(r2.X1+dx, r2.Y1+dy))) / 3.0
			totalColorDiff += diff
			if diff > 10 {
				pixelsDifferent++
			}
		}
	}

	similarity := 1.0 - float64(pixelsDifferent)/float64(totalPixels)

	return &RegionComparison{
		SimilarityScore:  math.Round(similarity*1000) / 1000,
		PixelsDifferent:  pixelsDifferent,
		TotalPixels:      totalPixels,
		SameSize:         w1 == w2 && h1 == h2,
		AverageColorDiff: math.Round(totalColorDiff/float64(totalPixels)*100) / 100,
	}, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
