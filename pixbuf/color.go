package pixbuf

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB holds the color channels of a pixel without alpha.
//
// Each component ranges from 0 to 255.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBA holds all four channels of a pixel.
//
// The alpha component represents opacity: 0 = fully transparent,
// 255 = fully opaque.
type RGBA struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSL struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// PackRGB packs three 8-bit channels into an RGB24 value (0xRRGGBB).
func PackRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackRGB splits an RGB24 value into its channels. Bits above the low 24
// are ignored.
func UnpackRGB(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// PackARGB packs four 8-bit channels into an ARGB32 value (0xAARRGGBB).
func PackARGB(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackARGB splits an ARGB32 value into its channels.
func UnpackARGB(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Hex formats an RGB24 value as "#RRGGBB".
func Hex(c uint32) string {
	r, g, b := UnpackRGB(c)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// ParseHex parses a hex color string like "#FF0000" or "#FF000080" into an
// ARGB32 value. The leading '#' is optional; 6-digit strings get an alpha of
// 255.
func ParseHex(hex string) (uint32, error) {
	if len(hex) == 0 {
		return 0, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		return 0xFF000000 | uint32(val), nil
	case 8:
		// RRGGBBAA on the wire; alpha moves to the top byte.
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		return uint32(val)>>8 | uint32(val&0xFF)<<24, nil
	default:
		return 0, fmt.Errorf("invalid hex color length %d", len(hex))
	}
}

// ColorInfo contains a pixel's color in multiple representations:
//   - Hex: compact "#RRGGBB" string (no alpha)
//   - RGB: 8-bit components without alpha
//   - RGBA: 8-bit components with alpha
//   - HSL: perceptual color space for intuitive color reasoning
type ColorInfo struct {
	Hex  string `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB  RGB    `json:"rgb"`  // RGB components
	RGBA RGBA   `json:"rgba"` // RGBA components with alpha
	HSL  HSL    `json:"hsl"`  // HSL representation
}

// ColorInfo samples the pixel at (x,y) and returns it in multiple formats.
//
// Unlike the raw accessors, this convenience reporter validates its
// coordinates and returns an error for out-of-range input, since a zero-value
// sample would be indistinguishable from a genuinely black transparent pixel.
func (b *Buffer) ColorInfo(x, y int) (*ColorInfo, error) {
	if !b.inBounds(x, y) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside buffer bounds %dx%d", x, y, b.width, b.height)
	}

	px := b.ChannelsRGBA(x, y)
	return &ColorInfo{
		Hex:  Hex(PackRGB(px.R, px.G, px.B)),
		RGB:  RGB{R: px.R, G: px.G, B: px.B},
		RGBA: px,
		HSL:  rgbToHSL(px.R, px.G, px.B),
	}, nil
}

// rgbToHSL converts 8-bit RGB values to HSL via go-colorful.
func rgbToHSL(r, g, b uint8) HSL {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	h, s, l := c.Hsl()
	return HSL{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
