package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceVariants(t *testing.T) {
	for _, shared := range []bool{false, true} {
		name := "heap"
		if shared {
			name = "shared"
		}
		t.Run(name, func(t *testing.T) {
			s, err := newSurface(shared, 4, 3)
			require.NoError(t, err)
			assert.Equal(t, 4, s.Width())
			assert.Equal(t, 3, s.Height())

			c, ok := s.Pixel(3, 2)
			require.True(t, ok)
			assert.Equal(t, uint32(0), c)

			assert.True(t, s.SetPixel(1, 2, 0x123456))
			c, ok = s.Pixel(1, 2)
			require.True(t, ok)
			assert.Equal(t, uint32(0x123456), c)

			assert.False(t, s.SetPixel(4, 0, 0xffffff))
			assert.False(t, s.SetPixel(-1, 0, 0xffffff))
			_, ok = s.Pixel(0, 3)
			assert.False(t, ok)

			s.Fill(0xabcdef)
			c, _ = s.Pixel(0, 0)
			assert.Equal(t, uint32(0xabcdef), c)

			s.Release()
			_, ok = s.Pixel(0, 0)
			assert.False(t, ok)
			assert.False(t, s.SetPixel(0, 0, 1))
		})
	}
}

func TestSharedSurfaceIsNative(t *testing.T) {
	s, err := newSurface(true, 2, 2)
	require.NoError(t, err)
	ns, ok := s.(nativeSurface)
	require.True(t, ok)
	assert.Equal(t, uint8(0xff), ns.RGBA().Pix[3])

	h, err := newSurface(false, 2, 2)
	require.NoError(t, err)
	_, ok = h.(nativeSurface)
	assert.False(t, ok)
}

func TestSurfaceRejectsEmptySize(t *testing.T) {
	_, err := newSurface(false, 0, 10)
	assert.True(t, errors.Is(err, ErrSurfaceSize))
	_, err = newSurface(true, 10, -1)
	assert.True(t, errors.Is(err, ErrSurfaceSize))
}
