package card

import (
	"bytes"
	"image/png"
	"testing"
)

func TestRender(t *testing.T) {
	data, err := Render(Card{
		Title:    "Swarajsing Patil",
		Subtitle: "Software Engineer with MS in CS",
		Footer:   "github.com/SwarajsingPatil",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != Width || b.Dy() != Height {
		t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), Width, Height)
	}
}
