package blurcore

import "errors"

// Mode selects the effect applied to each region. The numeric values
// match the original native core's mode selector and are stable.
type Mode int

const (
	// ModeBoxBlur applies a separable box blur; strength is the radius
	// in pixels on each side of the window along each axis.
	ModeBoxBlur Mode = 0

	// ModePixelate flattens the region into solid blocks; strength is
	// the block edge length in pixels.
	ModePixelate Mode = 1
)

// Dispatcher errors. Both are fatal to the whole call and are detected
// before any pixel is written.
var (
	// ErrInvalidBuffer is returned when the pixel buffer is nil, the
	// dimensions are non-positive, or the buffer length does not match
	// width*height*4.
	ErrInvalidBuffer = errors.New("blurcore: invalid pixel buffer")

	// ErrInvalidMode is returned when mode is neither ModeBoxBlur nor
	// ModePixelate.
	ErrInvalidMode = errors.New("blurcore: invalid mode")
)

// ApplyRegions applies the selected effect to each rectangle of an
// RGBA8888 buffer, in place. pixels is row-major with stride width*4
// and must be exactly width*height*4 bytes.
//
// Rectangles are clipped to the buffer; rectangles whose clipped area
// is empty are skipped silently. A nil or empty rects list is a no-op
// and returns nil. Rectangles are processed in list order with no
// snapshot isolation, so where they overlap, later rectangles operate
// on pixels already mutated by earlier ones.
//
// Strength below 1 is coerced to 1. Validation happens up front: on
// ErrInvalidBuffer or ErrInvalidMode the buffer is untouched.
//
// ApplyRegions performs no synchronization; the caller must guarantee
// exclusive access to pixels for the duration of the call.
func ApplyRegions(pixels []uint8, width, height int, rects []Rect, mode Mode, strength int) error {
	if pixels == nil || width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return ErrInvalidBuffer
	}
	if mode != ModeBoxBlur && mode != ModePixelate {
		return ErrInvalidMode
	}
	if strength < 1 {
		strength = 1
	}

	log := Logger()
	for i, r := range rects {
		x0, y0, x1, y1, ok := clip(r, width, height)
		if !ok {
			log.Debug("blurcore: skipping empty region",
				"index", i, "x", r.X, "y", r.Y, "w", r.W, "h", r.H)
			continue
		}
		switch mode {
		case ModeBoxBlur:
			boxBlurRegion(pixels, width, x0, y0, x1, y1, strength)
		case ModePixelate:
			pixelateRegion(pixels, width, x0, y0, x1, y1, strength)
		}
	}
	return nil
}

// ApplyRegions applies the selected effect to each rectangle of the
// pixmap, in place. See the package-level ApplyRegions for semantics.
func (p *Pixmap) ApplyRegions(rects []Rect, mode Mode, strength int) error {
	if p == nil {
		return ErrInvalidBuffer
	}
	return ApplyRegions(p.data, p.width, p.height, rects, mode, strength)
}
