package main

import (
	"errors"
	"fmt"
	"image"
)

var ErrSurfaceSize = errors.New("surface size must be positive")

// Surface is a rectangular buffer of packed 0xRRGGBB pixels.
type Surface interface {
	Width() int
	Height() int
	Pixel(x, y int) (uint32, bool)
	SetPixel(x, y int, c uint32) bool
	Fill(c uint32)
	Release()
}

// nativeSurface is implemented by surfaces a backend can read without
// copying pixel by pixel.
type nativeSurface interface {
	RGBA() *image.RGBA
}

// newSurface allocates a shared surface when the backend can consume one and
// a plain heap buffer otherwise.
func newSurface(shared bool, width, height int) (Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSurfaceSize, width, height)
	}
	if shared {
		s := &sharedSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
		s.Fill(0)
		return s, nil
	}
	return &heapSurface{
		width:  width,
		height: height,
		px:     make([]uint32, width*height),
	}, nil
}

type heapSurface struct {
	width  int
	height int
	px     []uint32
}

func (s *heapSurface) Width() int  { return s.width }
func (s *heapSurface) Height() int { return s.height }

func (s *heapSurface) Pixel(x, y int) (uint32, bool) {
	if s.px == nil || x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return s.px[y*s.width+x], true
}

func (s *heapSurface) SetPixel(x, y int, c uint32) bool {
	if s.px == nil || x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	s.px[y*s.width+x] = c & 0xffffff
	return true
}

func (s *heapSurface) Fill(c uint32) {
	c &= 0xffffff
	for i := range s.px {
		s.px[i] = c
	}
}

func (s *heapSurface) Release() {
	s.px = nil
}

type sharedSurface struct {
	img *image.RGBA
}

func (s *sharedSurface) Width() int {
	if s.img == nil {
		return 0
	}
	return s.img.Rect.Dx()
}

func (s *sharedSurface) Height() int {
	if s.img == nil {
		return 0
	}
	return s.img.Rect.Dy()
}

func (s *sharedSurface) RGBA() *image.RGBA { return s.img }

func (s *sharedSurface) Pixel(x, y int) (uint32, bool) {
	if s.img == nil || !image.Pt(x, y).In(s.img.Rect) {
		return 0, false
	}
	i := s.img.PixOffset(x, y)
	p := s.img.Pix[i : i+3 : i+3]
	return packRGB(p[0], p[1], p[2]), true
}

func (s *sharedSurface) SetPixel(x, y int, c uint32) bool {
	if s.img == nil || !image.Pt(x, y).In(s.img.Rect) {
		return false
	}
	i := s.img.PixOffset(x, y)
	r, g, b := unpackRGB(c)
	p := s.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = r, g, b, 0xff
	return true
}

func (s *sharedSurface) Fill(c uint32) {
	if s.img == nil {
		return
	}
	r, g, b := unpackRGB(c)
	pix := s.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, 0xff
	}
}

func (s *sharedSurface) Release() {
	s.img = nil
}
