package favicon

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func TestDecode(t *testing.T) {
	src := gradient(10, 6)

	encoders := map[string]func(*bytes.Buffer) error{
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"jpeg": func(b *bytes.Buffer) error { return jpeg.Encode(b, src, nil) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
	}

	for format, encode := range encoders {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf); err != nil {
				t.Fatalf("encode failed: %v", err)
			}

			img, got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got != format {
				t.Errorf("Expected format %s, got %s", format, got)
			}
			if img.Bounds() != image.Rect(0, 0, 10, 6) {
				t.Errorf("Unexpected bounds %v", img.Bounds())
			}
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode(strings.NewReader("not an image"))
	if err == nil {
		t.Fatal("Expected error for garbage input")
	}
	if !strings.Contains(err.Error(), "failed to decode image") {
		t.Errorf("Unexpected error: %v", err)
	}
}
