package favicon

// Image processor for favicon rendering
//
// 1. Normalize: NRGBA (alpha channel), largest centered square crop
// 2. Upscale the square to the working resolution, max(1024, W, H)
// 3. Render every icon size from the working image with Lanczos

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// ErrEmptyImage is returned for sources with a zero width or height.
var ErrEmptyImage = errors.New("image has no pixels")

// Normalize crops src to its largest centered square and resamples the
// square to max(1024, W, H) pixels a side, W and H being the dimensions of
// src before cropping. The result always carries an alpha channel.
func Normalize(src image.Image) (*image.NRGBA, error) {
	if isNilImage(src) {
		return nil, ErrEmptyImage
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}

	side := min(w, h)
	square := imaging.CropCenter(src, side, side)

	working := max(minWorkingSize, w, h)
	return imaging.Resize(square, working, working, imaging.Lanczos), nil
}

// resample scales the working image to a size x size square.
func resample(working image.Image, size int) *image.NRGBA {
	return imaging.Resize(working, size, size, imaging.Lanczos)
}

// renderPNG resamples working to size x size and encodes it as PNG.
func renderPNG(working image.Image, size int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, resample(working, size)); err != nil {
		return nil, fmt.Errorf("failed to encode %dx%d png: %w", size, size, err)
	}
	return buf.Bytes(), nil
}
