package wire

import (
	"errors"
	"testing"

	"github.com/tbmobb813/blurcore"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	rects := []blurcore.Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: -5, Y: 3, W: 0, H: -2},
		{X: 1000, Y: 2000, W: 30, H: 40},
	}

	flat := PackRects(rects)
	if len(flat) != len(rects)*4 {
		t.Fatalf("PackRects length = %d, want %d", len(flat), len(rects)*4)
	}

	got, err := UnpackRects(flat)
	if err != nil {
		t.Fatalf("UnpackRects() = %v", err)
	}
	if len(got) != len(rects) {
		t.Fatalf("UnpackRects length = %d, want %d", len(got), len(rects))
	}
	for i := range rects {
		if got[i] != rects[i] {
			t.Errorf("rect %d = %+v, want %+v", i, got[i], rects[i])
		}
	}
}

func TestUnpackRectsEmpty(t *testing.T) {
	for _, flat := range [][]int32{nil, {}} {
		rects, err := UnpackRects(flat)
		if err != nil {
			t.Fatalf("UnpackRects(%v) = %v, want nil", flat, err)
		}
		if len(rects) != 0 {
			t.Errorf("UnpackRects(%v) returned %d rects, want 0", flat, len(rects))
		}
	}
}

func TestUnpackRectsBadLength(t *testing.T) {
	if _, err := UnpackRects([]int32{1, 2, 3}); !errors.Is(err, ErrInvalidRegionArray) {
		t.Errorf("UnpackRects() error = %v, want ErrInvalidRegionArray", err)
	}
}

func TestApplyStatusCodes(t *testing.T) {
	pixels := make([]uint8, 4*4*4)
	flat := []int32{0, 0, 4, 4}

	tests := []struct {
		name           string
		pixels         []uint8
		width, height  int32
		flat           []int32
		mode, strength int32
		want           Status
	}{
		{"success", pixels, 4, 4, flat, 1, 2, StatusOK},
		{"nil buffer", nil, 4, 4, flat, 0, 2, StatusInvalidBuffer},
		{"bad dimensions", pixels, 0, 4, flat, 0, 2, StatusInvalidBuffer},
		{"bad mode", pixels, 4, 4, flat, 7, 2, StatusInvalidMode},
		{"ragged rect array", pixels, 4, 4, []int32{0, 0, 4}, 0, 2, StatusBadRectArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(tt.pixels, tt.width, tt.height, tt.flat, tt.mode, tt.strength); got != tt.want {
				t.Errorf("Apply() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestApplyMutatesThroughBridge(t *testing.T) {
	// 2x1 buffer, red channel {40, 80}, pixelate block 2 through the
	// flat-array entry point: both pixels become (40+80)/2 = 60.
	pixels := []uint8{40, 0, 0, 255, 80, 0, 0, 255}

	if got := Apply(pixels, 2, 1, []int32{0, 0, 2, 1}, 1, 2); got != StatusOK {
		t.Fatalf("Apply() = %d, want StatusOK", got)
	}
	if pixels[0] != 60 || pixels[4] != 60 {
		t.Errorf("red channels = %d,%d, want 60,60", pixels[0], pixels[4])
	}
}
