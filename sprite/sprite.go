// Package sprite implements the 2bpp planar tile format used for sprites.
//
// A sprite is a header-less stream of 16 byte tiles in row-major order, left
// to right and then top to bottom. Each tile is an 8 by 8 block; each of its 8
// rows is two bytes. The first byte is the low plane (bit 0 of every pixel's
// color index) and the second is the high plane (bit 1). Bit 7 is the
// leftmost pixel. Color index 0 is transparent.
//
// Sprites whose pixel dimensions are not multiples of 8 are padded to the
// next tile boundary with color 0.
package sprite

import (
	"io"

	"github.com/pkg/errors"
)

const (
	// TileSize is the width and height of a tile in pixels.
	TileSize = 8
	// TilePixels is the number of pixels in a tile.
	TilePixels = TileSize * TileSize
	// TileBytes is the encoded size of a tile.
	TileBytes = 16
	// Transparent is the color index that is never drawn.
	Transparent = 0
)

var (
	// ErrInvalidDimensions is returned for non-positive sprite dimensions.
	ErrInvalidDimensions = errors.New("invalid sprite dimensions")
	// ErrDataLength is returned when the tile data does not match the
	// sprite dimensions.
	ErrDataLength = errors.New("sprite data length mismatch")
)

// Tile is one encoded 8x8 tile.
type Tile = [TileBytes]byte

// Sprite is a read-only reference to encoded tile data. The data is
// borrowed from whatever storage holds the asset.
type Sprite struct {
	Width  int // pixel width, not necessarily a multiple of 8
	Height int // pixel height, not necessarily a multiple of 8
	TilesX int
	TilesY int
	Data   []byte // TilesX*TilesY*TileBytes bytes of planar tile data
}

// TilesFor returns the number of tiles needed to cover pixels.
func TilesFor(pixels int) int {
	return (pixels + TileSize - 1) / TileSize
}

// New validates data against the given pixel dimensions and returns a
// sprite referencing it. The data is not copied.
func New(width, height int, data []byte) (*Sprite, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}

	tilesX := TilesFor(width)
	tilesY := TilesFor(height)
	want := tilesX * tilesY * TileBytes
	if len(data) != want {
		return nil, errors.Wrapf(ErrDataLength, "%dx%d sprite needs %d bytes, got %d",
			width, height, want, len(data))
	}

	return &Sprite{
		Width:  width,
		Height: height,
		TilesX: tilesX,
		TilesY: tilesY,
		Data:   data,
	}, nil
}

// Load reads a complete .2bpp stream from r.
func Load(r io.Reader, width, height int) (*Sprite, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading sprite data")
	}
	return New(width, height, data)
}

// TileCount returns the number of tiles in the sprite.
func (s *Sprite) TileCount() int {
	return s.TilesX * s.TilesY
}

// Tile returns the encoded tile at grid position (tx, ty).
func (s *Sprite) Tile(tx, ty int) *Tile {
	off := (ty*s.TilesX + tx) * TileBytes
	return (*Tile)(s.Data[off : off+TileBytes])
}
