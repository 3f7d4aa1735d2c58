package framebuffer

import (
	"image"
	"image/color"
)

// Palette maps the four color indices to display colors.
type Palette [4]color.RGBA

// DMGPalette is the classic four-shade green palette, darkest first.
var DMGPalette = Palette{
	{R: 0x0F, G: 0x38, B: 0x0F, A: 0xFF},
	{R: 0x30, G: 0x62, B: 0x30, A: 0xFF},
	{R: 0x8B, G: 0xAC, B: 0x0F, A: 0xFF},
	{R: 0x9B, G: 0xBC, B: 0x0F, A: 0xFF},
}

// ARGB returns the palette entry for index packed as 0xAARRGGBB.
func (p Palette) ARGB(index uint8) uint32 {
	c := p[index&colorMask]
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ToRGBA writes one 0xAARRGGBB value per pixel into dst, row-major.
// dst must hold at least Pixels values.
func (fb *FrameBuffer) ToRGBA(dst []uint32, p Palette) {
	_ = dst[Pixels-1]
	for i := 0; i < Pixels; i++ {
		dst[i] = p.ARGB(fb.GetPixel(i))
	}
}

// Image returns a paletted copy of the frame buffer.
func (fb *FrameBuffer) Image(p Palette) *image.Paletted {
	pal := make(color.Palette, len(p))
	for i, c := range p {
		pal[i] = c
	}

	img := image.NewPaletted(image.Rect(0, 0, Width, Height), pal)
	for i := 0; i < Pixels; i++ {
		img.Pix[i] = fb.GetPixel(i)
	}
	return img
}
