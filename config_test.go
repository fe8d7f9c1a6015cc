package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DirectionVertical, cfg.direction())
}

func TestParseConfig(t *testing.T) {
	rc := `
# zinc settings
direction = Horizontal
chunk_width = 320
chunk_height=200
brush_size = 4
brush_color = #ff0000
brush = rough
background = 0x101010
scroll_step = 12
max_chunks = 64
export_directory = ~/sketches
debug = true
not a setting
`
	cfg := defaultConfig()
	require.NoError(t, parseConfig(strings.NewReader(rc), cfg, "/home/zinc"))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DirectionHorizontal, cfg.direction())
	assert.Equal(t, 320, cfg.ChunkWidth)
	assert.Equal(t, 200, cfg.ChunkHeight)
	assert.Equal(t, 4, cfg.BrushSize)
	assert.Equal(t, uint32(0xff0000), cfg.BrushColor)
	assert.Equal(t, "rough", cfg.Brush)
	assert.Equal(t, uint32(0x101010), cfg.Background)
	assert.Equal(t, 12, cfg.ScrollStep)
	assert.Equal(t, 64, cfg.MaxChunks)
	assert.Equal(t, filepath.Join("/home/zinc", "sketches"), cfg.ExportDirectory)
	assert.True(t, cfg.Debug)
}

func TestParseConfigReportsLine(t *testing.T) {
	cfg := defaultConfig()
	err := parseConfig(strings.NewReader("brush = smooth\nbrush_size = big\n"), cfg, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "brush_size")
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"bad direction", func(c *Config) { c.Direction = "diagonal" }, "direction must be one of: horizontal vertical"},
		{"brush too small", func(c *Config) { c.BrushSize = 0 }, "brushsize must be at least 1"},
		{"brush too big", func(c *Config) { c.BrushSize = 65 }, "brushsize must be at most 64"},
		{"bad brush", func(c *Config) { c.Brush = "spray" }, "brush must be one of: smooth rough"},
		{"no scroll", func(c *Config) { c.ScrollStep = 0 }, "scrollstep must be at least 1"},
		{"negative chunk", func(c *Config) { c.ChunkWidth = -1 }, "chunkwidth must be at least 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zincrc")
	require.NoError(t, os.WriteFile(path, []byte("direction=horizontal\nbrush_size=9\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "horizontal", cfg.Direction)
	assert.Equal(t, 9, cfg.BrushSize)

	_, err = loadConfig(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestCanvasOptionsFallBackToViewport(t *testing.T) {
	cfg := defaultConfig()
	opts := cfg.canvasOptions(120, 60)
	assert.Equal(t, 120, opts.ChunkWidth)
	assert.Equal(t, 60, opts.ChunkHeight)
	assert.Equal(t, defaultMaxChunks, opts.MaxChunks)

	cfg.ChunkWidth, cfg.ChunkHeight = 10, 20
	opts = cfg.canvasOptions(120, 60)
	assert.Equal(t, 10, opts.ChunkWidth)
	assert.Equal(t, 20, opts.ChunkHeight)
}

func TestGetSavePath(t *testing.T) {
	cfg := defaultConfig()
	path, err := cfg.GetSavePath("a.png")
	require.NoError(t, err)
	assert.Equal(t, "a.png", path)

	cfg.ExportDirectory = filepath.Join(t.TempDir(), "out")
	path, err = cfg.GetSavePath("a.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.ExportDirectory, "a.png"), path)
	assert.DirExists(t, cfg.ExportDirectory)
}

func TestGetSavePathReportsMkdirFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	cfg := defaultConfig()
	cfg.ExportDirectory = filepath.Join(blocker, "out")
	_, err := cfg.GetSavePath("a.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export directory")
}
