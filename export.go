package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var ErrNothingToExport = errors.New("nothing to export")

const captionHeight = 18

// exportPNG writes the visible part of the canvas to filename. A non-empty
// caption is printed on a band along the bottom edge.
func exportPNG(c *Canvas, filename, caption string, void uint32) error {
	width, height := c.Viewport()
	if width <= 0 || height <= 0 {
		return ErrNothingToExport
	}

	b := newImageBackend(width, height, void)
	if err := c.RenderTo(b); err != nil {
		return err
	}

	dc := gg.NewContextForRGBA(b.Image())
	if caption != "" && height > captionHeight {
		face, err := captionFace(12)
		if err != nil {
			return err
		}
		dc.SetFontFace(face)

		dc.SetRGBA(0, 0, 0, 0.6)
		dc.DrawRectangle(0, float64(height-captionHeight), float64(width), captionHeight)
		dc.Fill()

		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(caption, 4, float64(height)-captionHeight/2, 0, 0.5)
	}

	return dc.SavePNG(filename)
}

func captionFace(size float64) (font.Face, error) {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	return truetype.NewFace(ttfFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func exportFilename(now time.Time) string {
	return fmt.Sprintf("zinc-%s.png", now.Format("20060102-150405"))
}

func exportCaption(c *Canvas) string {
	cam := c.Camera()
	return fmt.Sprintf("zinc  x:%d y:%d  %s", cam.X, cam.Y, c.Direction())
}
