// Package wire reimplements the boundary marshalling of the original
// platform bridge: rectangles packed as a flat [x,y,w,h]*N integer
// array, and results reported as integer status codes rather than Go
// errors. It exists for callers that sit on a foreign-function or
// message boundary; pure Go callers should use blurcore.ApplyRegions
// directly.
package wire

import (
	"errors"

	"github.com/tbmobb813/blurcore"
)

// Status is the integer result of a bridged kernel call. Zero means
// success; each failure kind has a distinct negative value.
type Status int32

const (
	StatusOK            Status = 0
	StatusInvalidBuffer Status = -1
	StatusInvalidMode   Status = -2
	StatusBadRectArray  Status = -3
)

// ErrInvalidRegionArray is returned by UnpackRects when the flat array
// length is not a multiple of 4.
var ErrInvalidRegionArray = errors.New("wire: region array length not a multiple of 4")

// PackRects flattens rects into the [x,y,w,h]*N layout.
func PackRects(rects []blurcore.Rect) []int32 {
	flat := make([]int32, 0, len(rects)*4)
	for _, r := range rects {
		flat = append(flat, int32(r.X), int32(r.Y), int32(r.W), int32(r.H))
	}
	return flat
}

// UnpackRects parses a flat [x,y,w,h]*N array back into rects. A nil or
// empty array yields an empty list.
func UnpackRects(flat []int32) ([]blurcore.Rect, error) {
	if len(flat)%4 != 0 {
		return nil, ErrInvalidRegionArray
	}
	rects := make([]blurcore.Rect, 0, len(flat)/4)
	for i := 0; i+3 < len(flat); i += 4 {
		rects = append(rects, blurcore.Rect{
			X: int(flat[i+0]),
			Y: int(flat[i+1]),
			W: int(flat[i+2]),
			H: int(flat[i+3]),
		})
	}
	return rects, nil
}

// Apply unpacks a flat rectangle array, dispatches to the kernel, and
// maps the result to a Status. The buffer is untouched on any non-zero
// status.
func Apply(pixels []uint8, width, height int32, flat []int32, mode, strength int32) Status {
	rects, err := UnpackRects(flat)
	if err != nil {
		return StatusBadRectArray
	}
	err = blurcore.ApplyRegions(pixels, int(width), int(height), rects,
		blurcore.Mode(mode), int(strength))
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, blurcore.ErrInvalidMode):
		return StatusInvalidMode
	default:
		return StatusInvalidBuffer
	}
}
