package pixbuf

import "image"

// Buffer is a rectangular pixel store backed by a flat RGBA byte slice.
//
// The backing slice holds exactly width*height*4 bytes in R,G,B,A channel
// order, row-major from the top-left corner. The shape is fixed at
// construction; channel values are mutated in place by the write accessors.
//
// A Buffer may share its backing slice with the surface it was built from
// (see FromBuffer and FromRaw), so the lifetime of that storage is the
// caller's concern.
type Buffer struct {
	width  int
	height int
	data   []uint8

	// source is an opaque back-reference to whatever produced the buffer.
	// It is held for the caller's convenience only and is never consulted
	// by Buffer logic.
	source any

	// origin records the sub-rectangle of a larger surface this buffer was
	// extracted from. Metadata only; no accessor enforces it.
	origin image.Rectangle
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Data returns the backing slice (RGBA, 4 bytes per pixel). Mutations are
// visible to the buffer and to anything sharing the storage. No bounds
// handling applies to direct slice access.
func (b *Buffer) Data() []uint8 { return b.data }

// SourceRef returns the opaque back-reference recorded at construction, or
// nil when the buffer was built without one.
func (b *Buffer) SourceRef() any { return b.source }

// Origin returns the source sub-rectangle recorded at construction. The zero
// rectangle means the buffer was not extracted from a larger surface.
func (b *Buffer) Origin() image.Rectangle { return b.origin }

// offset returns the byte offset of pixel (x,y) in the backing slice.
func (b *Buffer) offset(x, y int) int {
	return 4 * (y*b.width + x)
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Channels returns the color channels of pixel (x,y), alpha omitted.
// Out-of-range coordinates yield the zero RGB.
func (b *Buffer) Channels(x, y int) RGB {
	if !b.inBounds(x, y) {
		return RGB{}
	}
	i := b.offset(x, y)
	return RGB{R: b.data[i], G: b.data[i+1], B: b.data[i+2]}
}

// ChannelsRGBA returns all four channels of pixel (x,y).
// Out-of-range coordinates yield the zero RGBA.
func (b *Buffer) ChannelsRGBA(x, y int) RGBA {
	if !b.inBounds(x, y) {
		return RGBA{}
	}
	i := b.offset(x, y)
	return RGBA{R: b.data[i], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

// Color returns the pixel at (x,y) as a packed RGB24 value (0xRRGGBB).
// Out-of-range coordinates yield 0.
func (b *Buffer) Color(x, y int) uint32 {
	if !b.inBounds(x, y) {
		return 0
	}
	i := b.offset(x, y)
	return PackRGB(b.data[i], b.data[i+1], b.data[i+2])
}

// ColorARGB returns the pixel at (x,y) as a packed ARGB32 value (0xAARRGGBB).
// Out-of-range coordinates yield 0.
func (b *Buffer) ColorARGB(x, y int) uint32 {
	if !b.inBounds(x, y) {
		return 0
	}
	i := b.offset(x, y)
	return PackARGB(b.data[i], b.data[i+1], b.data[i+2], b.data[i+3])
}

// SetColor writes a packed RGB24 value to pixel (x,y), leaving the existing
// alpha byte untouched. Out-of-range writes are dropped.
func (b *Buffer) SetColor(x, y int, c uint32) {
	if !b.inBounds(x, y) {
		return
	}
	i := b.offset(x, y)
	b.data[i] = uint8(c >> 16)
	b.data[i+1] = uint8(c >> 8)
	b.data[i+2] = uint8(c)
}

// SetColorARGB writes a packed ARGB32 value to pixel (x,y), overwriting all
// four channels including alpha. Out-of-range writes are dropped.
func (b *Buffer) SetColorARGB(x, y int, c uint32) {
	if !b.inBounds(x, y) {
		return
	}
	i := b.offset(x, y)
	b.data[i] = uint8(c >> 16)
	b.data[i+1] = uint8(c >> 8)
	b.data[i+2] = uint8(c)
	b.data[i+3] = uint8(c >> 24)
}

// Red returns the red channel of pixel (x,y), or 0 when out of range.
func (b *Buffer) Red(x, y int) uint8 {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.data[b.offset(x, y)]
}

// Green returns the green channel of pixel (x,y), or 0 when out of range.
func (b *Buffer) Green(x, y int) uint8 {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.data[b.offset(x, y)+1]
}

// Blue returns the blue channel of pixel (x,y), or 0 when out of range.
func (b *Buffer) Blue(x, y int) uint8 {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.data[b.offset(x, y)+2]
}

// Alpha returns the alpha channel of pixel (x,y), or 0 when out of range.
func (b *Buffer) Alpha(x, y int) uint8 {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.data[b.offset(x, y)+3]
}

// SetRed writes the red channel of pixel (x,y). Out-of-range writes are dropped.
func (b *Buffer) SetRed(x, y int, v uint8) {
	if b.inBounds(x, y) {
		b.data[b.offset(x, y)] = v
	}
}

// SetGreen writes the green channel of pixel (x,y). Out-of-range writes are dropped.
func (b *Buffer) SetGreen(x, y int, v uint8) {
	if b.inBounds(x, y) {
		b.data[b.offset(x, y)+1] = v
	}
}

// SetBlue writes the blue channel of pixel (x,y). Out-of-range writes are dropped.
func (b *Buffer) SetBlue(x, y int, v uint8) {
	if b.inBounds(x, y) {
		b.data[b.offset(x, y)+2] = v
	}
}

// SetAlpha writes the alpha channel of pixel (x,y). Out-of-range writes are dropped.
func (b *Buffer) SetAlpha(x, y int, v uint8) {
	if b.inBounds(x, y) {
		b.data[b.offset(x, y)+3] = v
	}
}
