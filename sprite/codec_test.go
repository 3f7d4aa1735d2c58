package sprite

import (
	"math/rand"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestPixelColorBitOrder(t *testing.T) {
	var tile Tile
	// Row 0: leftmost pixel color 1 (low plane bit 7),
	// rightmost pixel color 2 (high plane bit 0).
	tile[0] = 0b1000_0000
	tile[1] = 0b0000_0001
	// Row 3: pixel 2 color 3.
	tile[6] = 0b0010_0000
	tile[7] = 0b0010_0000

	assert.Equal(t, uint8(1), PixelColor(&tile, 0, 0))
	assert.Equal(t, uint8(2), PixelColor(&tile, 0, 7))
	assert.Equal(t, uint8(0), PixelColor(&tile, 0, 3))
	assert.Equal(t, uint8(3), PixelColor(&tile, 3, 2))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		var px [TilePixels]uint8
		for j := range px {
			px[j] = uint8(rng.Intn(4))
		}
		tile := EncodeTile(&px)
		assert.Equal(t, px, DecodeTile(&tile))
	}
}

func TestEncodeTileMasksColor(t *testing.T) {
	var px [TilePixels]uint8
	px[0] = 0xFF // masked to 3
	px[1] = 0x06 // masked to 2

	tile := EncodeTile(&px)
	assert.Equal(t, uint8(3), PixelColor(&tile, 0, 0))
	assert.Equal(t, uint8(2), PixelColor(&tile, 0, 1))
}

func TestEncodePadsToTileBoundary(t *testing.T) {
	// 9x3 image filled with color 3: two tiles wide, one tile high.
	indexed := make([]uint8, 9*3)
	for i := range indexed {
		indexed[i] = 3
	}

	s, err := Encode(9, 3, indexed)
	assert.NoError(t, err)
	assert.Equal(t, 2, s.TilesX)
	assert.Equal(t, 1, s.TilesY)
	assert.Equal(t, 2*TileBytes, len(s.Data))

	left := DecodeTile(s.Tile(0, 0))
	right := DecodeTile(s.Tile(1, 0))
	for row := 0; row < TileSize; row++ {
		for col := 0; col < TileSize; col++ {
			want := uint8(0)
			if row < 3 {
				want = 3
			}
			assert.Equal(t, want, left[row*TileSize+col])

			want = 0
			if row < 3 && col == 0 {
				want = 3
			}
			assert.Equal(t, want, right[row*TileSize+col])
		}
	}
}

func TestEncodeValidation(t *testing.T) {
	_, err := Encode(0, 8, nil)
	assert.Error(t, err)

	_, err = Encode(8, 8, make([]uint8, 63))
	assert.Error(t, err)
}
