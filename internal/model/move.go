package model

// Placement puts one tile from the mover's hand onto the board
type Placement struct {
	HandIndex int      // Index into the mover's hand at proposal time
	Letter    Letter   // Equals the hand tile's letter unless the tile is a blank
	Position  Position // Target cell
}

// Move is the set of placements proposed atomically in one turn.
// Passing is a separate action, never an empty Move.
type Move []Placement

// Positions returns the target cell of each placement
func (m Move) Positions() []Position {
	positions := make([]Position, len(m))
	for i, p := range m {
		positions[i] = p.Position
	}
	return positions
}
