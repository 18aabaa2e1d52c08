package pixbuf

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// ToImage returns an image view over the buffer's backing slice.
//
// No pixels are copied: the returned image shares storage with the buffer,
// which is exactly the output-surface contract — a rendering surface can
// consume the flat byte sequence plus dimensions directly. Mutating either
// side is visible to the other.
func (b *Buffer) ToImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: 4 * b.width,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// EncodePNG writes the buffer to w as a PNG image.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToImage()); err != nil {
		return fmt.Errorf("failed to encode buffer: %w", err)
	}
	return nil
}

// Save writes the buffer to a file, with the format chosen by the path's
// extension (PNG, JPEG, GIF, TIFF or BMP).
func (b *Buffer) Save(path string) error {
	if err := imaging.Save(b.ToImage(), path); err != nil {
		return fmt.Errorf("failed to save buffer: %w", err)
	}
	return nil
}
