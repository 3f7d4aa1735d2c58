package demo

import "github.com/pavanmanishd/bitbound/sprite"

// shipRows is the built-in 16x12 sprite, one digit per color index.
var shipRows = [...]string{
	"0000000110000000",
	"0000001221000000",
	"0000012332100000",
	"0000012332100000",
	"0000122222210000",
	"0001222332221000",
	"0012223333222100",
	"0122223333222210",
	"1222222222222221",
	"1221112222111221",
	"1210001111000121",
	"0100000000000010",
}

// DefaultSprite encodes the built-in sprite.
func DefaultSprite() (*sprite.Sprite, error) {
	width := len(shipRows[0])
	height := len(shipRows)

	indexed := make([]uint8, 0, width*height)
	for _, row := range shipRows {
		for _, ch := range row {
			indexed = append(indexed, uint8(ch-'0'))
		}
	}
	return sprite.Encode(width, height, indexed)
}
