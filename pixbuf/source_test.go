package pixbuf

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// createPatternImage creates an image with different colors in each quadrant.
func createPatternImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.NRGBA
			switch {
			case x < width/2 && y < height/2:
				c = color.NRGBA{255, 0, 0, 255} // Red top-left
			case x >= width/2 && y < height/2:
				c = color.NRGBA{0, 255, 0, 255} // Green top-right
			case x < width/2:
				c = color.NRGBA{0, 0, 255, 255} // Blue bottom-left
			default:
				c = color.NRGBA{255, 255, 255, 255} // White bottom-right
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestFromRawDerivesDimensions(t *testing.T) {
	tests := []struct {
		name       string
		bytes      int
		rect       Rect
		wantWidth  int
		wantHeight int
	}{
		{"width given", 16, Rect{Width: 2}, 2, 2},
		{"height given", 400, Rect{Height: 10}, 10, 10},
		{"both given", 24, Rect{Width: 3, Height: 2}, 3, 2},
		{"single row", 40, Rect{Height: 1}, 10, 1},
		{"single column", 40, Rect{Width: 1}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := FromRaw(make([]uint8, tt.bytes), tt.rect)
			if err != nil {
				t.Fatalf("FromRaw failed: %v", err)
			}
			if buf.Width() != tt.wantWidth || buf.Height() != tt.wantHeight {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					buf.Width(), buf.Height(), tt.wantWidth, tt.wantHeight)
			}
			if len(buf.Data()) != buf.Width()*buf.Height()*4 {
				t.Errorf("data length %d violates width*height*4 = %d",
					len(buf.Data()), buf.Width()*buf.Height()*4)
			}
		})
	}
}

func TestFromRawSharesStorage(t *testing.T) {
	data := make([]uint8, 16)
	buf, err := FromRaw(data, Rect{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("FromRaw failed: %v", err)
	}

	buf.SetColorARGB(0, 0, 0xFFABCDEF)
	if data[0] != 0xAB {
		t.Error("write through buffer not visible in the source slice")
	}
}

func TestFromRawMissingDimensions(t *testing.T) {
	_, err := FromRaw(make([]uint8, 64), Rect{})
	if !errors.Is(err, ErrMissingDimensions) {
		t.Errorf("got %v, want ErrMissingDimensions", err)
	}
}

func TestFromRawSizeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		bytes int
		rect  Rect
	}{
		{"both given, short data", 12, Rect{Width: 2, Height: 2}},
		{"width does not divide", 20, Rect{Width: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRaw(make([]uint8, tt.bytes), tt.rect); err == nil {
				t.Error("FromRaw should fail when data cannot fill the rectangle")
			}
		})
	}
}

func TestNewUnsupportedKind(t *testing.T) {
	_, err := New(Source{Kind: SourceKind(99)})
	if !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("got %v, want ErrUnsupportedSource", err)
	}
}

func TestFromImage(t *testing.T) {
	img := createPatternImage(8, 8)

	buf, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	if buf.Width() != 8 || buf.Height() != 8 {
		t.Fatalf("dimensions: got %dx%d, want 8x8", buf.Width(), buf.Height())
	}

	tests := []struct {
		name string
		x, y int
		want uint32
	}{
		{"red quadrant", 1, 1, 0xFF0000},
		{"green quadrant", 6, 1, 0x00FF00},
		{"blue quadrant", 1, 6, 0x0000FF},
		{"white quadrant", 6, 6, 0xFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buf.Color(tt.x, tt.y); got != tt.want {
				t.Errorf("Color(%d,%d): got %#06X, want %#06X", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if buf.SourceRef() == nil {
		t.Error("SourceRef should record the originating image")
	}
}

func TestFromSurface(t *testing.T) {
	surf := NewImageSurface(createPatternImage(8, 8))

	// Extract the top-right quadrant (green).
	buf, err := FromSurface(surf, Rect{X: 4, Y: 0, Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("FromSurface failed: %v", err)
	}

	if buf.Width() != 4 || buf.Height() != 4 {
		t.Fatalf("dimensions: got %dx%d, want 4x4", buf.Width(), buf.Height())
	}
	if got := buf.Color(0, 0); got != 0x00FF00 {
		t.Errorf("Color(0,0): got %#06X, want green", got)
	}

	origin := buf.Origin()
	if origin.Min.X != 4 || origin.Min.Y != 0 || origin.Dx() != 4 || origin.Dy() != 4 {
		t.Errorf("Origin: got %v, want (4,0)-(8,4)", origin)
	}
	if buf.SourceRef() == nil {
		t.Error("SourceRef should record the originating surface")
	}
}

func TestFromSurfaceFull(t *testing.T) {
	surf := NewImageSurface(createPatternImage(6, 4))

	buf, err := FromSurface(surf, Rect{})
	if err != nil {
		t.Fatalf("FromSurface failed: %v", err)
	}
	if buf.Width() != 6 || buf.Height() != 4 {
		t.Errorf("dimensions: got %dx%d, want 6x4", buf.Width(), buf.Height())
	}
}

// shortSurface violates the Surface contract by returning fewer bytes than
// the requested rectangle needs.
type shortSurface struct{}

func (shortSurface) Size() (int, int)    { return 8, 8 }
func (shortSurface) RGBA(r Rect) []uint8 { return make([]uint8, 4) }

func TestFromSurfaceRectPastEdge(t *testing.T) {
	surf := NewImageSurface(createPatternImage(8, 8))

	tests := []struct {
		name string
		rect Rect
	}{
		{"past right edge", Rect{X: 6, Y: 0, Width: 4, Height: 4}},
		{"past bottom edge", Rect{X: 0, Y: 5, Width: 4, Height: 4}},
		{"fully outside", Rect{X: 20, Y: 20, Width: 2, Height: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := FromSurface(surf, tt.rect)
			if !errors.Is(err, ErrSurfaceData) {
				t.Fatalf("got %v, want ErrSurfaceData", err)
			}
			if buf != nil {
				t.Error("a clipped extraction must not produce a buffer")
			}
		})
	}

	// An edge-touching rectangle still works and upholds the length
	// invariant for every in-bounds read.
	buf, err := FromSurface(surf, Rect{X: 4, Y: 4, Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("FromSurface failed: %v", err)
	}
	if len(buf.Data()) != buf.Width()*buf.Height()*4 {
		t.Fatalf("data length %d violates width*height*4 = %d",
			len(buf.Data()), buf.Width()*buf.Height()*4)
	}
	if got := buf.ColorARGB(3, 3); got != 0xFFFFFFFF {
		t.Errorf("ColorARGB(3,3): got %#08X, want white", got)
	}
}

func TestFromSurfaceShortData(t *testing.T) {
	_, err := FromSurface(shortSurface{}, Rect{Width: 4, Height: 4})
	if !errors.Is(err, ErrSurfaceData) {
		t.Errorf("got %v, want ErrSurfaceData", err)
	}
}

func TestFromBufferSharesStorage(t *testing.T) {
	orig := uniformBuffer(t, 3, 3, 0xFF101010)

	shared, err := FromBuffer(orig)
	if err != nil {
		t.Fatalf("FromBuffer failed: %v", err)
	}

	if shared.Width() != 3 || shared.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 3x3", shared.Width(), shared.Height())
	}

	// Writes through either buffer are visible in the other.
	shared.SetColor(1, 1, 0xABCDEF)
	if got := orig.Color(1, 1); got != 0xABCDEF {
		t.Errorf("write through shared buffer not visible: got %#06X", got)
	}
}
