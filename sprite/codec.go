package sprite

import "github.com/pkg/errors"

// PixelColor returns the color index of pixel (col, row) of an encoded tile.
// The result is always in [0,3].
func PixelColor(tile *Tile, row, col int) uint8 {
	low := tile[row*2]
	high := tile[row*2+1]
	bit := uint(7 - col)
	return (low>>bit)&1 | ((high>>bit)&1)<<1
}

// DecodeTile expands an encoded tile into 64 color indices in row-major order.
func DecodeTile(tile *Tile) [TilePixels]uint8 {
	var px [TilePixels]uint8
	for row := 0; row < TileSize; row++ {
		for col := 0; col < TileSize; col++ {
			px[row*TileSize+col] = PixelColor(tile, row, col)
		}
	}
	return px
}

// EncodeTile packs 64 color indices, row-major, into the planar format.
// Colors are masked to their low 2 bits.
func EncodeTile(px *[TilePixels]uint8) Tile {
	var tile Tile
	for row := 0; row < TileSize; row++ {
		var low, high byte
		for col := 0; col < TileSize; col++ {
			c := px[row*TileSize+col]
			bit := uint(7 - col)
			low |= (c & 1) << bit
			high |= ((c >> 1) & 1) << bit
		}
		tile[row*2] = low
		tile[row*2+1] = high
	}
	return tile
}

// Encode converts width*height color indices, row-major, into a sprite.
// The image is padded with color 0 to the next tile boundary on both axes.
func Encode(width, height int, indexed []uint8) (*Sprite, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	if len(indexed) != width*height {
		return nil, errors.Wrapf(ErrDataLength, "%dx%d image needs %d pixels, got %d",
			width, height, width*height, len(indexed))
	}

	tilesX := TilesFor(width)
	tilesY := TilesFor(height)
	data := make([]byte, 0, tilesX*tilesY*TileBytes)

	var px [TilePixels]uint8
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			for row := 0; row < TileSize; row++ {
				for col := 0; col < TileSize; col++ {
					x := tx*TileSize + col
					y := ty*TileSize + row
					var c uint8 = Transparent
					if x < width && y < height {
						c = indexed[y*width+x]
					}
					px[row*TileSize+col] = c
				}
			}
			tile := EncodeTile(&px)
			data = append(data, tile[:]...)
		}
	}

	return New(width, height, data)
}
