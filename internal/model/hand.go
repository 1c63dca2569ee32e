package model

// Hand is a player's rack of up to HandSize tiles, kept in canonical order
type Hand []Tile

// Tile returns the tile at index i, or false if there is none
func (h Hand) Tile(i int) (Tile, bool) {
	if i < 0 || i >= len(h) {
		return Tile{}, false
	}
	return h[i], true
}

// Without returns a new hand with the given indices removed
func (h Hand) Without(indices map[int]bool) Hand {
	result := make(Hand, 0, len(h))
	for i, t := range h {
		if !indices[i] {
			result = append(result, t)
		}
	}
	return result
}

// Sorted returns a sorted copy of the hand
func (h Hand) Sorted() Hand {
	result := make(Hand, len(h))
	copy(result, h)
	SortTiles(result)
	return result
}

// Clone returns an independent copy of the hand
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	result := make(Hand, len(h))
	copy(result, h)
	return result
}
