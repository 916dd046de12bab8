package blurcore

// pixelateRegion flattens the inclusive region [x0,x1] x [y0,y1] of an
// RGBA8888 buffer into solid blocks of the block-averaged color.
//
// The block grid is anchored at the region's own top-left corner, so
// the same rectangle always pixelates the same way regardless of where
// it sits in the image; overlapping rectangles do not share a grid.
// Blocks clipped by the region's right or bottom edge average over the
// pixels they actually cover. Averages accumulate in int per channel
// and truncate toward zero, alpha included.
func pixelateRegion(pix []uint8, width int, x0, y0, x1, y1, block int) {
	if block < 1 {
		block = 1
	}
	for by := y0; by <= y1; by += block {
		yEnd := by + block - 1
		if yEnd > y1 {
			yEnd = y1
		}
		for bx := x0; bx <= x1; bx += block {
			xEnd := bx + block - 1
			if xEnd > x1 {
				xEnd = x1
			}

			var r, g, b, a, n int
			for y := by; y <= yEnd; y++ {
				for x := bx; x <= xEnd; x++ {
					i := (y*width + x) * 4
					r += int(pix[i+0])
					g += int(pix[i+1])
					b += int(pix[i+2])
					a += int(pix[i+3])
					n++
				}
			}

			cr := uint8(r / n)
			cg := uint8(g / n)
			cb := uint8(b / n)
			ca := uint8(a / n)
			for y := by; y <= yEnd; y++ {
				for x := bx; x <= xEnd; x++ {
					i := (y*width + x) * 4
					pix[i+0] = cr
					pix[i+1] = cg
					pix[i+2] = cb
					pix[i+3] = ca
				}
			}
		}
	}
}
