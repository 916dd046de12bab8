package blurcore

// Test helper functions shared across kernel tests.

// solidBuffer creates a width*height RGBA8888 buffer filled with one
// color.
func solidBuffer(width, height int, r, g, b, a uint8) []uint8 {
	buf := make([]uint8, width*height*4)
	for i := 0; i < len(buf); i += 4 {
		buf[i+0] = r
		buf[i+1] = g
		buf[i+2] = b
		buf[i+3] = a
	}
	return buf
}

// splitBuffer creates a width*height buffer whose left half is solid
// red (255,0,0,255) and right half solid blue (0,0,255,255). This is
// the fixture the original native smoke test used.
func splitBuffer(width, height int) []uint8 {
	buf := make([]uint8, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			if x < width/2 {
				buf[i+0] = 255
			} else {
				buf[i+2] = 255
			}
			buf[i+3] = 255
		}
	}
	return buf
}

// gradientBuffer creates a buffer with a distinct deterministic value
// in every channel of every pixel, so any unintended write is visible.
func gradientBuffer(width, height int) []uint8 {
	buf := make([]uint8, width*height*4)
	for i := range buf {
		buf[i] = uint8((i*7 + 13) % 251)
	}
	return buf
}

// cloneBuffer returns an independent copy of buf.
func cloneBuffer(buf []uint8) []uint8 {
	out := make([]uint8, len(buf))
	copy(out, buf)
	return out
}

// pixelAt returns the four channel bytes of pixel (x, y).
func pixelAt(buf []uint8, width, x, y int) (r, g, b, a uint8) {
	i := (y*width + x) * 4
	return buf[i+0], buf[i+1], buf[i+2], buf[i+3]
}

// buffersEqual reports whether two buffers are byte-identical.
func buffersEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
