package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeDrawing
	ModeDragging
)

type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

func (d Direction) String() string {
	if d == DirectionHorizontal {
		return "horizontal"
	}
	return "vertical"
}

const (
	defaultBrushSize  = 2
	minBrushSize      = 1
	maxBrushSize      = 64
	defaultScrollStep = 30
	defaultMaxChunks  = 4096

	defaultBrushColor uint32 = 0xffffff
	defaultBackground uint32 = 0x000000
	defaultVoidColor  uint32 = 0x0e0e0e
)

// palette maps a key to a brush colour.
var palette = map[string]uint32{
	"r": 0xb81c00, // red
	"g": 0x50c878, // green
	"b": 0x1239e6, // blue
	"w": 0xffffff, // white
	"q": 0x000000, // black
	"o": 0xcc551f, // orange
	"y": 0xffff00, // yellow
	"f": 0xca2c92, // fuchsia
	"t": 0x008080, // teal
	"c": 0xfffdd0, // cream
}
