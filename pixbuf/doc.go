// Package pixbuf provides coordinate-addressed access to flat RGBA pixel buffers.
//
// The central type is Buffer: a rectangular pixel store backed by a flat byte
// slice in R,G,B,A channel order, row-major from the top-left corner. On top of
// the raw store the package offers packed-color and per-channel accessors,
// channel-difference metrics, and a ring-sampled gradient search that reports
// the direction of least or greatest color divergence around a point.
//
// # Coordinate System
//
// All pixel coordinates are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// A pixel's channel data starts at byte offset 4*(y*width + x), with the
// R,G,B,A channels at offsets +0 through +3.
//
// # Color Representation
//
// Packed colors come in two forms:
//   - RGB24: 0xRRGGBB, alpha ignored
//   - ARGB32: 0xAARRGGBB, alpha in the most significant byte
//
// Packing and unpacking are lossless byte mask/shift operations; no rounding
// or clamping is applied beyond the implicit 8-bit truncation of the mask.
// ColorInfo additionally reports hex, component, and HSL views of a pixel.
//
// # Bounds Handling
//
// Accessors validate coordinates by default: out-of-range reads return zero
// values and out-of-range writes are dropped. Callers that need raw access to
// the backing array can use Data(), which performs no validation.
//
// # Thread Safety
//
// Buffer assumes exclusive, single-goroutine access; callers embedding it in a
// concurrent host must serialize reads and writes externally. BufferCache is
// the one exception and is safe for concurrent use.
//
// # Error Handling
//
// Construction errors wrap the package sentinels ErrMissingDimensions and
// ErrUnsupportedSource; a gradient search whose ring falls entirely outside
// the buffer wraps ErrNoSamples. Use errors.Is to classify.
package pixbuf
