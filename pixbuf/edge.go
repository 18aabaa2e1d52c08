package pixbuf

import (
	"github.com/anthonynsimon/bild/effect"
)

// EdgeStrength computes a Sobel edge-magnitude map of the buffer.
//
// The result is a new buffer of the same dimensions where bright pixels mark
// strong local color transitions and dark pixels flat areas. It is the
// whole-buffer companion to the per-point MinGradient/MaxGradient probes:
// use it to find where edges are, and the gradient search to ask in which
// direction a particular point's neighborhood changes.
//
// The input buffer is not modified.
func (b *Buffer) EdgeStrength() (*Buffer, error) {
	return FromImage(effect.Sobel(b.ToImage()))
}
