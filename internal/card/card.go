// Package card renders the share image shown when the site is linked.
package card

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	Width  = 1200
	Height = 630
)

// Card is the text drawn on the image.
type Card struct {
	Title    string
	Subtitle string
	Footer   string
}

// Render draws c as a PNG.
func Render(c Card) ([]byte, error) {
	titleFace, err := loadFace(gobold.TTF, 84)
	if err != nil {
		return nil, err
	}
	bodyFace, err := loadFace(goregular.TTF, 40)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(Width, Height)

	bg := gg.NewLinearGradient(0, 0, Width, Height)
	bg.AddColorStop(0, color.RGBA{17, 24, 39, 255})
	bg.AddColorStop(1, color.RGBA{0, 0, 0, 255})
	dc.SetFillStyle(bg)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()

	accent := gg.NewLinearGradient(0, 0, Width, 0)
	accent.AddColorStop(0, color.RGBA{96, 165, 250, 255})
	accent.AddColorStop(1, color.RGBA{168, 85, 247, 255})
	dc.SetFillStyle(accent)
	dc.DrawRectangle(0, Height-16, Width, 16)
	dc.Fill()

	dc.SetFontFace(titleFace)
	dc.SetRGB255(229, 231, 235)
	dc.DrawStringAnchored(c.Title, Width/2, Height/2-40, 0.5, 0.5)

	dc.SetFontFace(bodyFace)
	dc.SetRGB255(147, 197, 253)
	dc.DrawStringWrapped(c.Subtitle, Width/2, Height/2+50, 0.5, 0, Width-200, 1.4, gg.AlignCenter)

	if c.Footer != "" {
		dc.SetRGB255(156, 163, 175)
		dc.DrawStringAnchored(c.Footer, Width/2, Height-70, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode card: %w", err)
	}
	return buf.Bytes(), nil
}

func loadFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}
