package pixbuf

import (
	"testing"
)

func TestEdgeStrengthUniform(t *testing.T) {
	buf := uniformBuffer(t, 9, 9, 0xFF808080)

	edges, err := buf.EdgeStrength()
	if err != nil {
		t.Fatalf("EdgeStrength failed: %v", err)
	}

	if edges.Width() != 9 || edges.Height() != 9 {
		t.Fatalf("dimensions: got %dx%d, want 9x9", edges.Width(), edges.Height())
	}

	// A flat interior has no gradient.
	if got := edges.Red(4, 4); got != 0 {
		t.Errorf("interior edge strength: got %d, want 0", got)
	}
}

func TestEdgeStrengthBoundary(t *testing.T) {
	// Left half black, right half white: the seam is a strong edge.
	buf := uniformBuffer(t, 10, 10, 0xFF000000)
	for y := 0; y < 10; y++ {
		for x := 5; x < 10; x++ {
			buf.SetColor(x, y, 0xFFFFFF)
		}
	}

	edges, err := buf.EdgeStrength()
	if err != nil {
		t.Fatalf("EdgeStrength failed: %v", err)
	}

	seam := int(edges.Red(5, 5))
	flat := int(edges.Red(2, 5))
	if seam <= flat {
		t.Errorf("seam strength %d should exceed flat-area strength %d", seam, flat)
	}
	if seam == 0 {
		t.Error("seam should register a nonzero edge")
	}

	// The probe and the map agree about where the action is: the max
	// gradient from a flat black pixel next to the seam points right.
	res, err := buf.MaxGradient(3, 5, GradientOptions{Radius: 2, Samples: 4})
	if err != nil {
		t.Fatalf("MaxGradient failed: %v", err)
	}
	if res.DX <= 0 {
		t.Errorf("max gradient should point toward the seam, got DX %g", res.DX)
	}
}

func TestEdgeStrengthDoesNotMutate(t *testing.T) {
	buf := uniformBuffer(t, 6, 6, 0xFF445566)
	before := make([]uint8, len(buf.Data()))
	copy(before, buf.Data())

	if _, err := buf.EdgeStrength(); err != nil {
		t.Fatalf("EdgeStrength failed: %v", err)
	}

	for i, v := range buf.Data() {
		if v != before[i] {
			t.Fatalf("byte %d changed by EdgeStrength", i)
		}
	}
}
