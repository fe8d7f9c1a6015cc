package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Direction       string `validate:"oneof=horizontal vertical"`
	ChunkWidth      int    `validate:"min=0,max=16384"`
	ChunkHeight     int    `validate:"min=0,max=16384"`
	BrushSize       int    `validate:"min=1,max=64"`
	BrushColor      uint32 `validate:"max=16777215"`
	Brush           string `validate:"oneof=smooth rough"`
	Background      uint32 `validate:"max=16777215"`
	VoidColor       uint32 `validate:"max=16777215"`
	ScrollStep      int    `validate:"min=1"`
	MaxChunks       int    `validate:"min=0"`
	ExportDirectory string
	LogFile         string
	Debug           bool
}

var validate = validator.New()

func defaultConfig() *Config {
	return &Config{
		Direction:  DirectionVertical.String(),
		BrushSize:  defaultBrushSize,
		BrushColor: defaultBrushColor,
		Brush:      "smooth",
		Background: defaultBackground,
		VoidColor:  defaultVoidColor,
		ScrollStep: defaultScrollStep,
		MaxChunks:  defaultMaxChunks,
	}
}

// loadConfig reads the rc file at path, or ~/.zincrc when path is empty.
// A missing default rc file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	homeDir, _ := os.UserHomeDir()
	explicit := path != ""
	if !explicit {
		if homeDir == "" {
			return config, nil
		}
		path = filepath.Join(homeDir, ".zincrc")
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, err
	}
	defer file.Close()

	if err := parseConfig(file, config, homeDir); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

func parseConfig(r io.Reader, config *Config, homeDir string) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := config.set(strings.ToLower(key), value, homeDir); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func (c *Config) set(key, value, homeDir string) error {
	var err error
	switch key {
	case "direction", "dir":
		c.Direction = strings.ToLower(value)
	case "chunk_width", "chunkwidth":
		c.ChunkWidth, err = strconv.Atoi(value)
	case "chunk_height", "chunkheight":
		c.ChunkHeight, err = strconv.Atoi(value)
	case "brush_size", "brushsize":
		c.BrushSize, err = strconv.Atoi(value)
	case "brush_color", "brushcolor", "color":
		c.BrushColor, err = parseHex(value)
	case "brush":
		c.Brush = strings.ToLower(value)
	case "background":
		c.Background, err = parseHex(value)
	case "void_color", "voidcolor":
		c.VoidColor, err = parseHex(value)
	case "scroll_step", "scrollstep":
		c.ScrollStep, err = strconv.Atoi(value)
	case "max_chunks", "maxchunks":
		c.MaxChunks, err = strconv.Atoi(value)
	case "export_directory", "exportdirectory", "exportdir":
		c.ExportDirectory = expandPath(value, homeDir)
	case "log_file", "logfile":
		c.LogFile = expandPath(value, homeDir)
	case "debug":
		c.Debug = strings.ToLower(value) == "true"
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// Validate checks the config against its struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

func (c *Config) direction() Direction {
	if c.Direction == DirectionHorizontal.String() {
		return DirectionHorizontal
	}
	return DirectionVertical
}

// canvasOptions sizes chunks from the config, falling back to the viewport.
func (c *Config) canvasOptions(viewportWidth, viewportHeight int) CanvasOptions {
	opts := CanvasOptions{
		Direction:   c.direction(),
		ChunkWidth:  c.ChunkWidth,
		ChunkHeight: c.ChunkHeight,
		Background:  c.Background,
		MaxChunks:   c.MaxChunks,
	}
	if opts.ChunkWidth == 0 {
		opts.ChunkWidth = max(viewportWidth, 1)
	}
	if opts.ChunkHeight == 0 {
		opts.ChunkHeight = max(viewportHeight, 1)
	}
	return opts
}

// GetSavePath places filename in the export directory, creating it.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.ExportDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.ExportDirectory, 0755); err != nil {
		return "", fmt.Errorf("export directory: %w", err)
	}
	return filepath.Join(c.ExportDirectory, filename), nil
}
