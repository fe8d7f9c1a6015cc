package main

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Backend presents chunk surfaces on screen. Blits are clipped to the frame
// and nothing is visible until Present.
type Backend interface {
	SharedSurfaces() bool
	Resize(width, height int)
	Blit(s Surface, dstX, dstY int)
	Clear(r image.Rectangle)
	Present() error
}

// imageBackend renders into an in-memory RGBA frame.
type imageBackend struct {
	frame    *image.RGBA
	void     uint32
	presents int
}

func newImageBackend(width, height int, void uint32) *imageBackend {
	b := &imageBackend{void: void}
	b.Resize(width, height)
	return b
}

func (b *imageBackend) SharedSurfaces() bool { return true }

func (b *imageBackend) Resize(width, height int) {
	b.frame = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	b.Clear(b.frame.Rect)
}

func (b *imageBackend) Blit(s Surface, dstX, dstY int) {
	if ns, ok := s.(nativeSurface); ok && ns.RGBA() != nil {
		src := ns.RGBA()
		draw.Copy(b.frame, image.Pt(dstX, dstY), src, src.Rect, draw.Src, nil)
		return
	}
	r := image.Rect(dstX, dstY, dstX+s.Width(), dstY+s.Height()).Intersect(b.frame.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c, ok := s.Pixel(x-dstX, y-dstY); ok {
				b.frame.SetRGBA(x, y, toRGBA(c))
			}
		}
	}
}

func (b *imageBackend) Clear(r image.Rectangle) {
	draw.Draw(b.frame, r, image.NewUniform(toRGBA(b.void)), image.Point{}, draw.Src)
}

func (b *imageBackend) Present() error {
	b.presents++
	return nil
}

func (b *imageBackend) Image() *image.RGBA { return b.frame }

// termBackend draws two vertically stacked pixels per terminal cell using the
// upper half block, foreground for the top pixel and background for the
// bottom one.
type termBackend struct {
	width    int
	height   int
	px       []uint32
	void     uint32
	view     string
	styles   map[[2]uint32]lipgloss.Style
	presents int
}

func newTermBackend(void uint32) *termBackend {
	return &termBackend{
		void:   void,
		styles: make(map[[2]uint32]lipgloss.Style),
	}
}

func (b *termBackend) SharedSurfaces() bool { return false }

func (b *termBackend) Resize(width, height int) {
	b.width, b.height = max(width, 0), max(height, 0)
	b.px = make([]uint32, b.width*b.height)
	b.Clear(image.Rect(0, 0, b.width, b.height))
}

func (b *termBackend) bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

func (b *termBackend) Blit(s Surface, dstX, dstY int) {
	r := image.Rect(dstX, dstY, dstX+s.Width(), dstY+s.Height()).Intersect(b.bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.px[y*b.width : (y+1)*b.width]
		for x := r.Min.X; x < r.Max.X; x++ {
			if c, ok := s.Pixel(x-dstX, y-dstY); ok {
				row[x] = c
			}
		}
	}
}

func (b *termBackend) Clear(r image.Rectangle) {
	r = r.Intersect(b.bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.px[y*b.width+x] = b.void
		}
	}
}

func (b *termBackend) Present() error {
	var sb strings.Builder
	for y := 0; y < b.height; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range b.rowRuns(y) {
			sb.WriteString(b.style(run.top, run.bottom).Render(strings.Repeat("▀", run.n)))
		}
	}
	b.view = sb.String()
	b.presents++
	return nil
}

// cellRun is n adjacent cells sharing one colour pair.
type cellRun struct {
	top, bottom uint32
	n           int
}

// rowRuns groups the cells of the terminal row starting at pixel row y so
// each run is styled once.
func (b *termBackend) rowRuns(y int) []cellRun {
	var runs []cellRun
	for x := 0; x < b.width; x++ {
		top, bottom := b.px[y*b.width+x], b.void
		if y+1 < b.height {
			bottom = b.px[(y+1)*b.width+x]
		}
		if n := len(runs); n > 0 && runs[n-1].top == top && runs[n-1].bottom == bottom {
			runs[n-1].n++
			continue
		}
		runs = append(runs, cellRun{top: top, bottom: bottom, n: 1})
	}
	return runs
}

func (b *termBackend) style(top, bottom uint32) lipgloss.Style {
	key := [2]uint32{top, bottom}
	style, ok := b.styles[key]
	if !ok {
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color(formatHex(top))).
			Background(lipgloss.Color(formatHex(bottom)))
		b.styles[key] = style
	}
	return style
}

// View returns the last presented frame.
func (b *termBackend) View() string { return b.view }

// pixel reads the frame, mainly for tests.
func (b *termBackend) pixel(x, y int) (uint32, bool) {
	if !image.Pt(x, y).In(b.bounds()) {
		return 0, false
	}
	return b.px[y*b.width+x], true
}
