// Command blurfx applies region-based blur or pixelation to an image
// file.
//
// Example:
//
//	blurfx --in photo.jpg --out redacted.png --mode pixelate \
//	    --strength 24 --region 120,80,400,300 --region 600,80,200,150
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	flag "github.com/spf13/pflag"

	"github.com/tbmobb813/blurcore"

	// Register extra decode formats with image.Decode so imaging.Open
	// accepts them; WebP in particular has no encoder-side support in
	// imaging and is decode-only here.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func main() {
	var (
		in       = flag.String("in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
		out      = flag.String("out", "", "output image, format chosen by extension (png, jpeg, gif, bmp, tiff)")
		modeName = flag.String("mode", "blur", "effect: blur or pixelate")
		strength = flag.Int("strength", 8, "blur radius or pixelate block size in pixels")
		regions  = flag.StringArray("region", nil, "region as x,y,w,h (repeatable; omit to process the whole image)")
		maxDim   = flag.Int("max-dim", 0, "downscale so the longest side is at most this many pixels (0 = no resize)")
		verbose  = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		blurcore.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mode, err := parseMode(*modeName)
	if err != nil {
		log.Fatalf("blurfx: %v", err)
	}

	img, err := imaging.Open(*in, imaging.AutoOrientation(true))
	if err != nil {
		log.Fatalf("blurfx: open %s: %v", *in, err)
	}
	if *maxDim > 0 {
		img = imaging.Fit(img, *maxDim, *maxDim, imaging.Lanczos)
	}

	pm := blurcore.FromImage(img)

	rects, err := parseRegions(*regions)
	if err != nil {
		log.Fatalf("blurfx: %v", err)
	}
	if len(rects) == 0 {
		rects = []blurcore.Rect{{X: 0, Y: 0, W: pm.Width(), H: pm.Height()}}
	}

	if err := pm.ApplyRegions(rects, mode, *strength); err != nil {
		log.Fatalf("blurfx: apply: %v", err)
	}

	if err := imaging.Save(pm.ToImage(), *out); err != nil {
		log.Fatalf("blurfx: save %s: %v", *out, err)
	}
	log.Printf("blurfx: wrote %s (%dx%d, %d regions)", *out, pm.Width(), pm.Height(), len(rects))
}

func parseMode(name string) (blurcore.Mode, error) {
	switch strings.ToLower(name) {
	case "blur", "box", "boxblur":
		return blurcore.ModeBoxBlur, nil
	case "pixelate", "mosaic":
		return blurcore.ModePixelate, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want blur or pixelate)", name)
	}
}

func parseRegions(specs []string) ([]blurcore.Rect, error) {
	rects := make([]blurcore.Rect, 0, len(specs))
	for _, s := range specs {
		parts := strings.Split(s, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("bad region %q (want x,y,w,h)", s)
		}
		var vals [4]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("bad region %q: %w", s, err)
			}
			vals[i] = v
		}
		rects = append(rects, blurcore.Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]})
	}
	return rects, nil
}
