// Package framebuffer implements a fixed-size 2 bits per pixel frame buffer
// and the sprite blitter that draws planar tiles into it.
package framebuffer

const (
	// Width of the screen in pixels.
	Width = 160
	// Height of the screen in pixels.
	Height = 144
	// Pixels is the number of pixels on screen.
	Pixels = Width * Height

	// BitsPerPixel is the size of one color index.
	BitsPerPixel = 2
	// PixelsPerByte is the number of pixels packed into one byte.
	PixelsPerByte = 8 / BitsPerPixel
	// BufferSize is the size of the packed pixel store in bytes.
	BufferSize = Pixels / PixelsPerByte

	colorMask = 0b11
)

// FrameBuffer stores 4 pixels per byte, pixel i of a byte in bits 2i..2i+1.
// It has a single owner and is not goroutine-safe.
type FrameBuffer struct {
	buf [BufferSize]byte
}

// New returns a frame buffer with every pixel set to color 0.
func New() *FrameBuffer {
	return &FrameBuffer{}
}

// Width returns the frame buffer width in pixels.
func (fb *FrameBuffer) Width() int { return Width }

// Height returns the frame buffer height in pixels.
func (fb *FrameBuffer) Height() int { return Height }

// PixelIndex maps screen coordinates to a linear pixel index.
func PixelIndex(x, y int) int {
	return y*Width + x
}

// InBounds reports whether (x, y) is on screen.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// SetPixel stores color&0b11 at the pixel index. Out-of-range colors are
// silently clipped to 2 bits. index must be in [0, Pixels); callers check
// bounds before calling.
func (fb *FrameBuffer) SetPixel(index int, color uint8) {
	byteIndex := index / PixelsPerByte
	shift := uint(index%PixelsPerByte) * BitsPerPixel

	b := &fb.buf[byteIndex]
	*b &^= colorMask << shift
	*b |= (color & colorMask) << shift
}

// GetPixel returns the color index stored at the pixel index.
// index must be in [0, Pixels).
func (fb *FrameBuffer) GetPixel(index int) uint8 {
	byteIndex := index / PixelsPerByte
	shift := uint(index%PixelsPerByte) * BitsPerPixel

	return (fb.buf[byteIndex] >> shift) & colorMask
}

// Clear sets every pixel to color&0b11.
func (fb *FrameBuffer) Clear(color uint8) {
	c := color & colorMask
	packed := c | c<<2 | c<<4 | c<<6
	for i := range fb.buf {
		fb.buf[i] = packed
	}
}

// Bytes returns the packed pixel store. The slice aliases the frame buffer.
func (fb *FrameBuffer) Bytes() []byte {
	return fb.buf[:]
}
