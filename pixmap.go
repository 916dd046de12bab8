package blurcore

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// Pixmap is a rectangular RGBA8888 pixel buffer: 4 bytes per pixel in
// R,G,B,A order, row-major, stride width*4. Bytes are straight
// (non-premultiplied) alpha, matching what the kernel expects.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a zeroed pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromBytes wraps an existing RGBA8888 buffer without copying. The
// pixmap borrows data: mutations through either alias are visible to
// both. Returns ErrInvalidBuffer unless len(data) == width*height*4
// with positive dimensions.
func FromBytes(data []uint8, width, height int) (*Pixmap, error) {
	if data == nil || width <= 0 || height <= 0 || len(data) != width*height*4 {
		return nil, ErrInvalidBuffer
	}
	return &Pixmap{width: width, height: height, data: data}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA8888).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetRGBA sets a single pixel. Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetRGBA(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// RGBAAt returns the channel bytes of a single pixel. Out-of-bounds
// coordinates return zero values.
func (p *Pixmap) RGBAAt(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// FromImage creates a pixmap from an image, converting to straight
// RGBA8888.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	dst := &image.NRGBA{
		Pix:    pm.data,
		Stride: pm.width * 4,
		Rect:   image.Rect(0, 0, pm.width, pm.height),
	}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return pm
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory with
// the pixmap.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("blurcore: create file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}
