package framebuffer

import "github.com/pavanmanishd/bitbound/sprite"

// DrawTile decodes one planar tile and writes its non-transparent pixels
// with the top-left corner at (x, y). Pixels falling off screen are skipped
// one by one. It returns the number of pixels written.
func (fb *FrameBuffer) DrawTile(x, y int, tile *sprite.Tile) int {
	drawn := 0

	for row := 0; row < sprite.TileSize; row++ {
		low := tile[row*2]
		high := tile[row*2+1]
		screenY := y + row

		for col := 0; col < sprite.TileSize; col++ {
			bit := uint(7 - col)
			color := (low>>bit)&1 | ((high>>bit)&1)<<1
			if color == sprite.Transparent {
				continue
			}

			screenX := x + col
			if !InBounds(screenX, screenY) {
				continue
			}

			fb.SetPixel(PixelIndex(screenX, screenY), color)
			drawn++
		}
	}

	return drawn
}

// DrawSprite draws every tile of s in row-major order with the sprite's
// top-left corner at (x, y). Coordinates may be negative or past the screen
// edge; clipping is per pixel. The sprite data is trusted to match its
// tile grid. It returns the number of pixels written.
func (fb *FrameBuffer) DrawSprite(x, y int, s *sprite.Sprite) int {
	drawn := 0

	for ty := 0; ty < s.TilesY; ty++ {
		for tx := 0; tx < s.TilesX; tx++ {
			drawn += fb.DrawTile(x+tx*sprite.TileSize, y+ty*sprite.TileSize, s.Tile(tx, ty))
		}
	}

	return drawn
}
