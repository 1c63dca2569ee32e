package model

import (
	"fmt"
	"sort"
)

// TileKind distinguishes lettered tiles from blanks
type TileKind uint8

const (
	TileKindLetter TileKind = iota + 1
	TileKindBlank
)

// blankSymbol is the wire representation of a blank tile
const blankSymbol = "?"

// Tile is a unit drawn from the bag: either a concrete letter or a blank.
// The zero Tile is invalid.
type Tile struct {
	kind   TileKind
	letter Letter
}

// LetterTile returns a tile carrying a concrete letter
func LetterTile(l Letter) Tile {
	return Tile{kind: TileKindLetter, letter: l}
}

// BlankTile returns a blank tile
func BlankTile() Tile {
	return Tile{kind: TileKindBlank}
}

// Kind reports whether this is a letter or a blank
func (t Tile) Kind() TileKind {
	return t.kind
}

// IsBlank returns true for blank tiles
func (t Tile) IsBlank() bool {
	return t.kind == TileKindBlank
}

// Letter returns the tile's letter, or false for a blank
func (t Tile) Letter() (Letter, bool) {
	if t.kind != TileKindLetter {
		return 0, false
	}
	return t.letter, true
}

// Matches reports whether the tile can be placed as the given letter.
// A blank matches any catalog letter.
func (t Tile) Matches(l Letter) bool {
	switch t.kind {
	case TileKindBlank:
		return l.IsValid()
	case TileKindLetter:
		return t.letter == l
	default:
		return false
	}
}

func (t Tile) String() string {
	switch t.kind {
	case TileKindBlank:
		return blankSymbol
	case TileKindLetter:
		return t.letter.String()
	default:
		return ""
	}
}

// sortKey orders blanks before letters, letters alphabetically
func (t Tile) sortKey() int {
	if t.kind == TileKindBlank {
		return 0
	}
	return int(t.letter)
}

// ParseTile parses the wire form of a tile ("A".."Z" or "?")
func ParseTile(s string) (Tile, error) {
	if s == blankSymbol {
		return BlankTile(), nil
	}
	var l Letter
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return Tile{}, fmt.Errorf("invalid tile %q", s)
	}
	return LetterTile(l), nil
}

// MarshalText encodes the tile in its wire form
func (t Tile) MarshalText() ([]byte, error) {
	if t.kind == 0 {
		return nil, fmt.Errorf("cannot encode zero tile")
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tile from its wire form
func (t *Tile) UnmarshalText(text []byte) error {
	parsed, err := ParseTile(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// SortTiles orders tiles canonically in place
func SortTiles(tiles []Tile) {
	sort.SliceStable(tiles, func(i, j int) bool {
		return tiles[i].sortKey() < tiles[j].sortKey()
	})
}
