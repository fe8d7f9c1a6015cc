package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPNG(t *testing.T) {
	c := newTestCanvas(t, DirectionVertical, 40, 40, nil)
	c.PaintDisc(5, 5, 0xff0000, 2, OpaqueBlend)

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, exportPNG(c, path, exportCaption(c), defaultVoidColor))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
	assert.Equal(t, uint32(0xff0000), fromColor(img.At(5, 5)))
	assert.Equal(t, uint32(defaultBackground), fromColor(img.At(20, 5)))
}

func TestExportNeedsViewport(t *testing.T) {
	c := newTestCanvas(t, DirectionVertical, 40, 40, nil)
	require.NoError(t, c.SetViewport(0, 0))

	err := exportPNG(c, filepath.Join(t.TempDir(), "out.png"), "", defaultVoidColor)
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExportNaming(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	assert.Equal(t, "zinc-20240309-140507.png", exportFilename(now))

	c := newTestCanvas(t, DirectionHorizontal, 40, 40, nil)
	assert.Equal(t, "zinc  x:0 y:0  horizontal", exportCaption(c))
}
