package blurcore

// Rect is a requested effect region in buffer pixel coordinates.
// X,Y is the top-left corner and may be negative or past the buffer
// edge; W,H may be zero or negative. Rects are never trusted: the
// kernel clips every rect to the buffer and skips empty results.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clip clamps r to a width x height buffer and returns the inclusive
// pixel range [x0,x1] x [y0,y1]. ok is false when the clipped region is
// empty (zero or negative requested size, or entirely outside the
// buffer). Both effects share this helper so edge behavior at the
// buffer border is identical for blur and pixelation.
func clip(r Rect, width, height int) (x0, y0, x1, y1 int, ok bool) {
	if r.W <= 0 || r.H <= 0 {
		return 0, 0, 0, 0, false
	}
	x0 = clampInt(r.X, 0, width-1)
	y0 = clampInt(r.Y, 0, height-1)
	x1 = clampInt(r.X+r.W-1, 0, width-1)
	y1 = clampInt(r.Y+r.H-1, 0, height-1)
	if x1 < x0 || y1 < y0 {
		return 0, 0, 0, 0, false
	}
	// A rect entirely left of or above the buffer clamps both bounds to
	// 0; entirely right of or below clamps both to width-1/height-1.
	// Reject those unless the rect actually covers that edge pixel.
	if r.X+r.W <= 0 || r.Y+r.H <= 0 || r.X >= width || r.Y >= height {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}
