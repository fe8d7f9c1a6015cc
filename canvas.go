package main

import (
	"fmt"
	"image"
	"math"

	"go.uber.org/zap"
)

type CanvasOptions struct {
	Direction   Direction
	ChunkWidth  int
	ChunkHeight int
	Background  uint32
	MaxChunks   int
}

// Canvas is an endless strip of chunks seen through a camera. Canvas
// coordinates are absolute; screen coordinates are relative to the camera.
type Canvas struct {
	camera         Vector2
	viewportWidth  int
	viewportHeight int
	direction      Direction
	chunkWidth     int
	chunkHeight    int
	background     uint32
	chain          *chain
	backend        Backend
	logger         *zap.Logger
}

// NewCanvas creates the root chunk with one neighbour on each side and a
// viewport the size of a chunk.
func NewCanvas(opts CanvasOptions, backend Backend, logger *zap.Logger) (*Canvas, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Canvas{
		direction:      opts.Direction,
		chunkWidth:     opts.ChunkWidth,
		chunkHeight:    opts.ChunkHeight,
		viewportWidth:  opts.ChunkWidth,
		viewportHeight: opts.ChunkHeight,
		background:     opts.Background,
		backend:        backend,
		logger:         logger,
	}

	shared := backend.SharedSurfaces()
	alloc := func(w, h int) (Surface, error) {
		s, err := newSurface(shared, w, h)
		if err != nil {
			return nil, err
		}
		s.Fill(c.background)
		return s, nil
	}

	ch, err := newChain(opts.ChunkWidth, opts.ChunkHeight, opts.MaxChunks, alloc)
	if err != nil {
		return nil, fmt.Errorf("creating root chunk: %w", err)
	}
	c.chain = ch
	if _, err := ch.prepend(c.chunkWidth, c.chunkHeight); err != nil {
		return nil, err
	}
	if _, err := ch.append(c.chunkWidth, c.chunkHeight); err != nil {
		return nil, err
	}

	backend.Resize(c.viewportWidth, c.viewportHeight)
	logger.Info("canvas created",
		zap.Stringer("direction", c.direction),
		zap.Int("chunk_width", c.chunkWidth),
		zap.Int("chunk_height", c.chunkHeight),
		zap.Bool("shared_surfaces", shared))
	return c, nil
}

// along returns the scroll axis component of (x, y), across the other one.
func (c *Canvas) along(x, y int) int {
	if c.direction == DirectionHorizontal {
		return x
	}
	return y
}

func (c *Canvas) across(x, y int) int {
	if c.direction == DirectionHorizontal {
		return y
	}
	return x
}

func (c *Canvas) point(along, across int) Vector2 {
	if c.direction == DirectionHorizontal {
		return Vector2{X: along, Y: across}
	}
	return Vector2{X: across, Y: along}
}

func (c *Canvas) chunkLen() int { return c.along(c.chunkWidth, c.chunkHeight) }

func (c *Canvas) chunkRect(ch *chunk) image.Rectangle {
	if c.direction == DirectionHorizontal {
		return image.Rect(ch.index*ch.width, 0, (ch.index+1)*ch.width, ch.height)
	}
	return image.Rect(0, ch.index*ch.height, ch.width, (ch.index+1)*ch.height)
}

// span is the covered range on the scroll axis.
func (c *Canvas) span() (lo, hi int) {
	first := c.chain.get(c.chain.first())
	last := c.chain.get(c.chain.last())
	return first.index * c.chunkLen(), (last.index + 1) * c.chunkLen()
}

// Rect is the area covered by all chunks, in canvas space.
func (c *Canvas) Rect() image.Rectangle {
	first := c.chain.get(c.chain.first())
	last := c.chain.get(c.chain.last())
	return c.chunkRect(first).Union(c.chunkRect(last))
}

// ViewportRect is the visible area, in canvas space.
func (c *Canvas) ViewportRect() image.Rectangle {
	return image.Rect(c.camera.X, c.camera.Y,
		c.camera.X+c.viewportWidth, c.camera.Y+c.viewportHeight)
}

func (c *Canvas) Camera() Vector2 { return c.camera }

func (c *Canvas) Viewport() (width, height int) {
	return c.viewportWidth, c.viewportHeight
}

func (c *Canvas) Direction() Direction { return c.direction }

func (c *Canvas) Chunks() int { return c.chain.len() }

func (c *Canvas) ChunkIndices() []int { return c.chain.indices() }

func (c *Canvas) ScreenToCanvas(x, y int) (int, int) {
	return x + c.camera.X, y + c.camera.Y
}

func (c *Canvas) CanvasToScreen(x, y int) (int, int) {
	return x - c.camera.X, y - c.camera.Y
}

// Move shifts the camera, clamps it and grows the chain to cover the
// viewport.
func (c *Canvas) Move(dx, dy int) error {
	c.camera.X += dx
	c.camera.Y += dy
	c.clampCamera()
	return c.regenerate()
}

func (c *Canvas) SetViewport(width, height int) error {
	c.viewportWidth = max(width, 0)
	c.viewportHeight = max(height, 0)
	c.backend.Resize(c.viewportWidth, c.viewportHeight)
	c.clampCamera()
	return c.regenerate()
}

// clampCamera keeps the camera within one chunk of the covered range on the
// scroll axis. Across it, the strip stays in view: the camera may only slide
// while the viewport and the strip differ in size.
func (c *Canvas) clampCamera() {
	lo, hi := c.span()
	length := c.chunkLen()
	vlen := c.along(c.viewportWidth, c.viewportHeight)

	minAlong, maxAlong := lo-length, hi+length-vlen
	if maxAlong < minAlong {
		maxAlong = minAlong
	}
	slack := c.across(c.chunkWidth, c.chunkHeight) - c.across(c.viewportWidth, c.viewportHeight)

	along := clampInt(c.along(c.camera.X, c.camera.Y), minAlong, maxAlong)
	across := clampInt(c.across(c.camera.X, c.camera.Y), min(0, slack), max(0, slack))
	c.camera = c.point(along, across)
}

// regenerate prepends and appends chunks until the covered range contains
// the viewport on the scroll axis.
func (c *Canvas) regenerate() error {
	for {
		lo, hi := c.span()
		vlo := c.along(c.camera.X, c.camera.Y)
		vhi := vlo + c.along(c.viewportWidth, c.viewportHeight)
		grew := false

		if vlo < lo {
			h, err := c.chain.prepend(c.chunkWidth, c.chunkHeight)
			if err != nil {
				return err
			}
			c.logger.Debug("chunk allocated",
				zap.Int("index", c.chain.get(h).index),
				zap.Int("chunks", c.chain.len()))
			grew = true
		}
		if vhi > hi {
			h, err := c.chain.append(c.chunkWidth, c.chunkHeight)
			if err != nil {
				return err
			}
			c.logger.Debug("chunk allocated",
				zap.Int("index", c.chain.get(h).index),
				zap.Int("chunks", c.chain.len()))
			grew = true
		}
		if !grew {
			break
		}
	}
	c.assertCoverage()
	return nil
}

func (c *Canvas) assertCoverage() {
	c.chain.assertChain()
	lo, hi := c.span()
	vlo := c.along(c.camera.X, c.camera.Y)
	vhi := vlo + c.along(c.viewportWidth, c.viewportHeight)
	if vlo < lo || vhi > hi {
		panic(fmt.Sprintf("viewport [%d,%d) not covered by chunks [%d,%d)", vlo, vhi, lo, hi))
	}
}

// locate finds the chunk holding the canvas point and the offset inside it.
func (c *Canvas) locate(x, y int) (*chunk, int, int, bool) {
	ch, ok := c.chain.lookup(floorDiv(c.along(x, y), c.chunkLen()))
	if !ok {
		return nil, 0, 0, false
	}
	r := c.chunkRect(ch)
	if !image.Pt(x, y).In(r) {
		return nil, 0, 0, false
	}
	return ch, x - r.Min.X, y - r.Min.Y, true
}

// PixelAt reads a pixel in canvas space. It reports false outside every
// chunk.
func (c *Canvas) PixelAt(x, y int) (uint32, bool) {
	ch, lx, ly, ok := c.locate(x, y)
	if !ok {
		return 0, false
	}
	return ch.pixels.Pixel(lx, ly)
}

func (c *Canvas) SetPixel(x, y int, color uint32) bool {
	ch, lx, ly, ok := c.locate(x, y)
	if !ok {
		return false
	}
	return ch.pixels.SetPixel(lx, ly, color)
}

func (c *Canvas) ScreenPixelAt(x, y int) (uint32, bool) {
	return c.PixelAt(c.ScreenToCanvas(x, y))
}

func (c *Canvas) SetScreenPixel(x, y int, color uint32) bool {
	cx, cy := c.ScreenToCanvas(x, y)
	return c.SetPixel(cx, cy, color)
}

// PaintDisc blends color into every pixel closer than radius to (cx, cy),
// in canvas space, and returns how many pixels it touched.
func (c *Canvas) PaintDisc(cx, cy int, color uint32, radius int, blend Blend) int {
	painted := 0
	for dy := -radius + 1; dy < radius; dy++ {
		for dx := -radius + 1; dx < radius; dx++ {
			d2 := dx*dx + dy*dy
			if d2 >= radius*radius {
				continue
			}
			prev, ok := c.PixelAt(cx+dx, cy+dy)
			if !ok {
				continue
			}
			t := math.Sqrt(float64(d2)) / float64(radius)
			c.SetPixel(cx+dx, cy+dy, blend(color, prev, t))
			painted++
		}
	}
	return painted
}

// Clear resets every chunk to the background colour.
func (c *Canvas) Clear() {
	c.chain.each(func(ch *chunk) { ch.pixels.Fill(c.background) })
}

func (c *Canvas) Render() error {
	return c.RenderTo(c.backend)
}

// RenderTo blits every visible chunk, clears what no chunk covers and
// presents once.
func (c *Canvas) RenderTo(b Backend) error {
	view := c.ViewportRect()
	for _, r := range uncovered(view, c.Rect()) {
		b.Clear(r.Sub(view.Min))
	}
	c.chain.each(func(ch *chunk) {
		r := c.chunkRect(ch)
		if !r.Overlaps(view) {
			return
		}
		b.Blit(ch.pixels, r.Min.X-c.camera.X, r.Min.Y-c.camera.Y)
	})
	return b.Present()
}

// uncovered returns the parts of view outside covered.
func uncovered(view, covered image.Rectangle) []image.Rectangle {
	in := view.Intersect(covered)
	if in.Empty() {
		if view.Empty() {
			return nil
		}
		return []image.Rectangle{view}
	}
	var out []image.Rectangle
	if in.Min.Y > view.Min.Y {
		out = append(out, image.Rect(view.Min.X, view.Min.Y, view.Max.X, in.Min.Y))
	}
	if in.Max.Y < view.Max.Y {
		out = append(out, image.Rect(view.Min.X, in.Max.Y, view.Max.X, view.Max.Y))
	}
	if in.Min.X > view.Min.X {
		out = append(out, image.Rect(view.Min.X, in.Min.Y, in.Min.X, in.Max.Y))
	}
	if in.Max.X < view.Max.X {
		out = append(out, image.Rect(in.Max.X, in.Min.Y, view.Max.X, in.Max.Y))
	}
	return out
}

// Destroy releases every chunk. The canvas is unusable afterwards.
func (c *Canvas) Destroy() {
	if c.chain == nil {
		return
	}
	n := c.chain.len()
	c.chain.destroy()
	c.chain = nil
	c.logger.Debug("canvas destroyed", zap.Int("chunks", n))
}
