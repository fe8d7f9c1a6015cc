package main

import (
	"fmt"
	"image/color"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

func unpackRGB(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func packRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func toRGBA(c uint32) color.RGBA {
	r, g, b := unpackRGB(c)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func fromColor(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return packRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func formatHex(c uint32) string {
	return fmt.Sprintf("#%06x", c&0xffffff)
}

// parseHex accepts "#rrggbb", "0xrrggbb" or "rrggbb".
func parseHex(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s) != 6 {
		return 0, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return uint32(v), nil
}

// floorDiv rounds towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func copyColor(c uint32) error {
	return clipboard.WriteAll(formatHex(c))
}

func pasteColor() (uint32, error) {
	text, err := readClipboardText()
	if err != nil {
		return 0, err
	}
	return parseHex(text)
}
