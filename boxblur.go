package blurcore

// boxBlurRegion applies a separable box blur to the inclusive region
// [x0,x1] x [y0,y1] of an RGBA8888 buffer, in place.
//
// The blur is two moving-average passes, horizontal then vertical, each
// over a 2*radius+1 window. Sample coordinates are clamped to the
// region's own bounds, so edge pixels are replicated (clamp-to-edge)
// and the effective blur near a region border is asymmetric. Channel
// sums accumulate in int and the average truncates toward zero; alpha
// is averaged exactly like the color channels.
//
// The region is copied to scratch before filtering so reads never
// observe in-progress writes. Scratch is allocated per call: the kernel
// keeps no state between invocations, and callers that care about
// allocation churn are expected to pool outside the kernel.
func boxBlurRegion(pix []uint8, width int, x0, y0, x1, y1, radius int) {
	if radius < 1 {
		radius = 1
	}
	w := x1 - x0 + 1
	h := y1 - y0 + 1

	src := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		row := ((y0+y)*width + x0) * 4
		copy(src[y*w*4:(y*w+w)*4], pix[row:row+w*4])
	}

	horiz := make([]uint8, w*h*4)
	window := 2*radius + 1

	// Horizontal pass: src -> horiz.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a int
			for k := -radius; k <= radius; k++ {
				sx := clampInt(x+k, 0, w-1)
				i := (y*w + sx) * 4
				r += int(src[i+0])
				g += int(src[i+1])
				b += int(src[i+2])
				a += int(src[i+3])
			}
			i := (y*w + x) * 4
			horiz[i+0] = uint8(r / window)
			horiz[i+1] = uint8(g / window)
			horiz[i+2] = uint8(b / window)
			horiz[i+3] = uint8(a / window)
		}
	}

	// Vertical pass: horiz -> src.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a int
			for k := -radius; k <= radius; k++ {
				sy := clampInt(y+k, 0, h-1)
				i := (sy*w + x) * 4
				r += int(horiz[i+0])
				g += int(horiz[i+1])
				b += int(horiz[i+2])
				a += int(horiz[i+3])
			}
			i := (y*w + x) * 4
			src[i+0] = uint8(r / window)
			src[i+1] = uint8(g / window)
			src[i+2] = uint8(b / window)
			src[i+3] = uint8(a / window)
		}
	}

	// Blit the filtered region back.
	for y := 0; y < h; y++ {
		row := ((y0+y)*width + x0) * 4
		copy(pix[row:row+w*4], src[y*w*4:(y*w+w)*4])
	}
}
