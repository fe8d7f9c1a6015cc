package main

// Blend mixes a brush colour into the existing pixel. t is the distance from
// the brush centre normalised to [0, 1].
type Blend func(newColor, oldColor uint32, t float64) uint32

func lerpByte(from, to uint8, t float64) uint8 {
	return uint8(float64(from) + (float64(to)-float64(from))*t)
}

// LerpBlend fades from the brush colour at the centre to the old colour at
// the rim, which anti-aliases the disc edge.
func LerpBlend(newColor, oldColor uint32, t float64) uint32 {
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	nr, ng, nb := unpackRGB(newColor)
	or, og, ob := unpackRGB(oldColor)
	return packRGB(lerpByte(nr, or, t), lerpByte(ng, og, t), lerpByte(nb, ob, t))
}

// OpaqueBlend always paints the brush colour.
func OpaqueBlend(newColor, _ uint32, _ float64) uint32 {
	return newColor & 0xffffff
}

func blendByName(name string) Blend {
	if name == "rough" {
		return OpaqueBlend
	}
	return LerpBlend
}
