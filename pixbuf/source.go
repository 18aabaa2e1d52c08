package pixbuf

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// SourceKind identifies one of the closed set of inputs a Buffer can be
// built from.
type SourceKind int

const (
	// SourceRaw builds from an existing RGBA channel slice. The rectangle
	// must supply a width and/or height; a missing dimension is derived
	// from the slice length.
	SourceRaw SourceKind = iota

	// SourceImage builds from a decoded image.Image.
	SourceImage

	// SourceSurface extracts a sub-rectangle of channel data from a
	// drawing surface.
	SourceSurface

	// SourceBuffer shares the backing slice of an existing Buffer.
	SourceBuffer
)

// Rect describes a sub-rectangle of a surface, or the dimensions of raw
// channel data.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Surface is the drawing-surface contract: anything that can report its size
// and extract RGBA channel data for a sub-rectangle can back a Buffer. Image
// decoding and rendering stay on the surface side of this boundary.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// RGBA returns the channel data for the given sub-rectangle as a flat
	// RGBA byte slice of length r.Width*r.Height*4.
	RGBA(r Rect) []uint8
}

// Source carries exactly one construction input for New. Kind selects the
// variant; only the matching field is consulted.
type Source struct {
	Kind SourceKind

	Raw []uint8 // SourceRaw: channel data, length width*height*4

	// Rect supplies dimensions for SourceRaw (width and/or height) and the
	// extraction sub-rectangle for SourceSurface (zero value = full surface).
	Rect Rect

	Image   image.Image // SourceImage
	Surface Surface     // SourceSurface
	Buffer  *Buffer     // SourceBuffer
}

// New constructs a Buffer from the given source variant.
//
// SourceRaw shares the provided slice without copying. If only one of
// Rect.Width/Rect.Height is set, the other is derived as (len(Raw)/4) divided
// by the given dimension; if neither is set the error wraps
// ErrMissingDimensions.
//
// SourceImage copies the image's pixels into a fresh buffer (non-premultiplied
// RGBA) and records the image as the source back-reference.
//
// SourceSurface asks the surface for the channel data of Rect (the full
// surface when Rect is zero) and records both the surface and the extraction
// rectangle. A rectangle the surface cannot fill completely (for example one
// reaching past its edge) yields an error wrapping ErrSurfaceData.
//
// SourceBuffer shares the existing buffer's backing slice and copies its
// shape and metadata.
//
// An unrecognized Kind yields an error wrapping ErrUnsupportedSource.
func New(src Source) (*Buffer, error) {
	switch src.Kind {
	case SourceRaw:
		return newFromRaw(src.Raw, src.Rect)
	case SourceImage:
		return newFromImage(src.Image)
	case SourceSurface:
		return newFromSurface(src.Surface, src.Rect)
	case SourceBuffer:
		return &Buffer{
			width:  src.Buffer.width,
			height: src.Buffer.height,
			data:   src.Buffer.data,
			source: src.Buffer.source,
			origin: src.Buffer.origin,
		}, nil
	default:
		return nil, fmt.Errorf("source kind %d: %w", src.Kind, ErrUnsupportedSource)
	}
}

// FromRaw builds a Buffer over an existing RGBA channel slice. See New
// (SourceRaw) for the dimension-derivation rules.
func FromRaw(data []uint8, r Rect) (*Buffer, error) {
	return New(Source{Kind: SourceRaw, Raw: data, Rect: r})
}

// FromImage builds a Buffer holding a copy of the decoded image's pixels.
func FromImage(img image.Image) (*Buffer, error) {
	return New(Source{Kind: SourceImage, Image: img})
}

// FromSurface extracts the given sub-rectangle of a drawing surface into a
// Buffer. A zero rectangle extracts the full surface.
func FromSurface(s Surface, r Rect) (*Buffer, error) {
	return New(Source{Kind: SourceSurface, Surface: s, Rect: r})
}

// FromBuffer builds a Buffer sharing the backing slice of an existing one.
func FromBuffer(b *Buffer) (*Buffer, error) {
	return New(Source{Kind: SourceBuffer, Buffer: b})
}

func newFromRaw(data []uint8, r Rect) (*Buffer, error) {
	w, h := r.Width, r.Height
	pixels := len(data) / 4

	switch {
	case w > 0 && h > 0:
		// Both given; nothing to derive.
	case w > 0:
		h = pixels / w
	case h > 0:
		w = pixels / h
	default:
		return nil, fmt.Errorf("raw source of %d bytes: %w", len(data), ErrMissingDimensions)
	}

	if w*h*4 != len(data) {
		return nil, fmt.Errorf("raw source of %d bytes does not fill %dx%d pixels: %w",
			len(data), w, h, ErrMissingDimensions)
	}

	return &Buffer{width: w, height: h, data: data}, nil
}

func newFromImage(img image.Image) (*Buffer, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image: %w", ErrUnsupportedSource)
	}

	// Clone normalizes any image type to non-premultiplied RGBA bytes in
	// the exact channel order the buffer stores.
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()

	return &Buffer{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		data:   nrgba.Pix,
		source: img,
	}, nil
}

func newFromSurface(s Surface, r Rect) (*Buffer, error) {
	if s == nil {
		return nil, fmt.Errorf("nil surface: %w", ErrUnsupportedSource)
	}

	if r.Width == 0 && r.Height == 0 {
		w, h := s.Size()
		r = Rect{Width: w, Height: h}
	}

	// The surface may clip a rectangle that reaches past its edge, which
	// would leave the buffer shorter than width*height*4 and turn later
	// in-bounds reads into slice overruns. Reject anything that does not
	// fill the requested shape exactly.
	data := s.RGBA(r)
	if len(data) != r.Width*r.Height*4 {
		return nil, fmt.Errorf("surface returned %d bytes for %dx%d rectangle at (%d,%d): %w",
			len(data), r.Width, r.Height, r.X, r.Y, ErrSurfaceData)
	}

	return &Buffer{
		width:  r.Width,
		height: r.Height,
		data:   data,
		source: s,
		origin: image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height),
	}, nil
}

// ImageSurface adapts a decoded image.Image to the Surface contract, using
// sub-rectangle extraction from the imaging package. It lets image-backed
// callers construct buffers through the same path a drawing surface would
// use.
type ImageSurface struct {
	img image.Image
}

// NewImageSurface wraps a decoded image as a Surface.
func NewImageSurface(img image.Image) *ImageSurface {
	return &ImageSurface{img: img}
}

// Size returns the image dimensions in pixels.
func (s *ImageSurface) Size() (int, int) {
	bounds := s.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// RGBA extracts the channel data for the given sub-rectangle. Coordinates
// are relative to the image's top-left corner.
func (s *ImageSurface) RGBA(r Rect) []uint8 {
	bounds := s.img.Bounds()
	crop := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height).Add(bounds.Min)
	return imaging.Crop(s.img, crop).Pix
}
