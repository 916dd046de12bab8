// Package blurcore provides a region-based in-place image obscuring kernel.
//
// # Overview
//
// blurcore is the native effect core of a photo redaction app, extracted
// as a standalone pure-Go library. It takes an RGBA8888 pixel buffer and
// a list of rectangles and applies either a separable box blur
// (a Gaussian approximation) or block pixelation to each rectangle, in
// place. The kernel is scalar, single-threaded, deterministic, and holds
// no state between calls.
//
// # Quick Start
//
//	import "github.com/tbmobb813/blurcore"
//
//	// pixels is a width*height*4 RGBA8888 buffer owned by the caller.
//	err := blurcore.ApplyRegions(pixels, width, height,
//	    []blurcore.Rect{{X: 40, Y: 40, W: 200, H: 120}},
//	    blurcore.ModePixelate, 16)
//
// Or through the Pixmap convenience type:
//
//	pm := blurcore.NewPixmap(640, 480)
//	err := pm.ApplyRegions(rects, blurcore.ModeBoxBlur, 8)
//
// # Semantics
//
// Rectangles may be negative, zero-sized, or extend past the buffer;
// they are clamped to the buffer and empty regions are skipped without
// error. Rectangles are processed in list order, so overlapping regions
// see the mutations of earlier ones. All four channels, alpha included,
// are filtered identically as straight (non-premultiplied) bytes, and
// channel averages truncate toward zero. Callers needing the output to
// match the original native core byte for byte can rely on both.
//
// # Concurrency
//
// A call mutates the caller's buffer with no synchronization. Concurrent
// calls are safe only on distinct, non-aliased buffers.
//
// # Boundary marshalling
//
// The wire subpackage reimplements the flat-integer rectangle encoding
// and integer status codes of the original platform bridge, for callers
// that sit on that kind of boundary.
package blurcore
