package favicon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	ico "github.com/sergeymakinen/go-ico"
)

// EncodeICO writes images into a single ICO container, one entry per
// image in the given order. Entries must be 1 to 256 pixels a side.
func EncodeICO(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return errors.New("ico needs at least one image")
	}
	if err := ico.EncodeAll(w, images); err != nil {
		return fmt.Errorf("failed to encode ico: %w", err)
	}
	return nil
}

// renderICO resamples working to every ICO size and packs the results.
func renderICO(working image.Image) ([]byte, error) {
	images := make([]image.Image, 0, len(icoSizes))
	for _, size := range icoSizes {
		images = append(images, resample(working, size))
	}

	var buf bytes.Buffer
	if err := EncodeICO(&buf, images); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
