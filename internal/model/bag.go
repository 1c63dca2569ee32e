package model

// Shuffler permutes n elements using the given swap function
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Bag is the finite pool of undrawn tiles for one match.
// Tiles are drawn from the end of the slice and never returned.
type Bag struct {
	Tiles []Tile
}

// NewBag creates a bag holding the full distribution, shuffled
func NewBag(shuffler Shuffler) *Bag {
	tiles := make([]Tile, 0, TotalTiles)
	for i := 0; i < BlankCount; i++ {
		tiles = append(tiles, BlankTile())
	}
	for l := Letter('A'); l <= 'Z'; l++ {
		for i := 0; i < letterFrequencies[l]; i++ {
			tiles = append(tiles, LetterTile(l))
		}
	}

	shuffler.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	return &Bag{Tiles: tiles}
}

// Draw removes and returns the last tile. Returns false when the bag is empty.
func (b *Bag) Draw() (Tile, bool) {
	n := len(b.Tiles)
	if n == 0 {
		return Tile{}, false
	}
	tile := b.Tiles[n-1]
	b.Tiles = b.Tiles[:n-1]
	return tile, true
}

// DrawAtMost draws up to n tiles, fewer if the bag runs out
func (b *Bag) DrawAtMost(n int) []Tile {
	drawn := make([]Tile, 0, n)
	for i := 0; i < n; i++ {
		tile, ok := b.Draw()
		if !ok {
			break
		}
		drawn = append(drawn, tile)
	}
	return drawn
}

// Len returns the number of tiles left
func (b *Bag) Len() int {
	return len(b.Tiles)
}

// Clone returns an independent copy of the bag
func (b *Bag) Clone() *Bag {
	tiles := make([]Tile, len(b.Tiles))
	copy(tiles, b.Tiles)
	return &Bag{Tiles: tiles}
}
