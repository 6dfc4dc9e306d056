package favicon

import (
	"image"
	"image/color"
	"testing"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

// bands fills a w x h image with three colors split evenly along the long
// axis; the middle band is exactly the centered square.
func bands(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pos, side, long := x, h, w
			if h > w {
				pos, side, long = y, w, h
			}
			offset := (long - side) / 2
			switch {
			case pos < offset:
				img.SetNRGBA(x, y, red)
			case pos < offset+side:
				img.SetNRGBA(x, y, green)
			default:
				img.SetNRGBA(x, y, blue)
			}
		}
	}
	return img
}

func isGreen(c color.NRGBA) bool {
	return c.G > 200 && c.R < 40 && c.B < 40 && c.A > 200
}

func TestNormalizeCenterCrop(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{name: "landscape", w: 300, h: 100},
		{name: "portrait", w: 100, h: 300},
		{name: "odd margin", w: 101, h: 100},
		{name: "odd margin portrait", w: 64, h: 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Normalize(bands(tt.w, tt.h))
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}

			b := out.Bounds()
			if b.Dx() != minWorkingSize || b.Dy() != minWorkingSize {
				t.Fatalf("Expected %dx%d, got %dx%d", minWorkingSize, minWorkingSize, b.Dx(), b.Dy())
			}

			for _, p := range []image.Point{{0, 0}, {b.Dx() / 2, b.Dy() / 2}, {b.Dx() - 1, 0}, {0, b.Dy() - 1}, {b.Dx() - 1, b.Dy() - 1}} {
				if c := out.NRGBAAt(p.X, p.Y); !isGreen(c) {
					t.Errorf("Pixel %v outside the centered square: %+v", p, c)
				}
			}
		})
	}
}

func TestNormalizeWorkingSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want int
	}{
		{name: "small square", w: 16, h: 16, want: 1024},
		{name: "exact", w: 1024, h: 1024, want: 1024},
		{name: "wide source", w: 1200, h: 300, want: 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Normalize(image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h)))
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if out.Bounds().Dx() != tt.want || out.Bounds().Dy() != tt.want {
				t.Errorf("Expected %dx%d, got %v", tt.want, tt.want, out.Bounds())
			}
		})
	}
}

func TestNormalizeAddsAlpha(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 20, 20))
	out, err := Normalize(gray)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if c := out.NRGBAAt(10, 10); c.A != 255 {
		t.Errorf("Expected opaque alpha, got %d", c.A)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	tests := []struct {
		name string
		src  image.Image
	}{
		{name: "zero size", src: image.NewNRGBA(image.Rectangle{})},
		{name: "nil pointer", src: (*image.NRGBA)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Normalize(tt.src); err != ErrEmptyImage {
				t.Errorf("Expected ErrEmptyImage, got %v", err)
			}
		})
	}
}
