package model

// Position identifies a cell on the board
type Position struct {
	X int // 0-indexed column from the left
	Y int // 0-indexed row from the top
}

// Neighbors returns the four orthogonally adjacent positions.
// Some may lie outside the board.
func (p Position) Neighbors() [4]Position {
	return [4]Position{
		{X: p.X, Y: p.Y - 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X + 1, Y: p.Y},
	}
}

// Piece is a resolved tile sitting on the board
type Piece struct {
	Owner  PlayerIndex
	Letter Letter
}

// Board is the shared grid for a match. A nil cell is empty; once a cell
// holds a piece it is never overwritten or cleared.
type Board struct {
	Size  int
	Cells [][]*Piece // Row-major: Cells[y][x]
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) *Board {
	cells := make([][]*Piece, size)
	for i := range cells {
		cells[i] = make([]*Piece, size)
	}
	return &Board{
		Size:  size,
		Cells: cells,
	}
}

// Get returns the piece at the given position, or false if the cell is empty
// or out of bounds
func (b *Board) Get(pos Position) (Piece, bool) {
	if !b.IsValidPosition(pos) {
		return Piece{}, false
	}
	p := b.Cells[pos.Y][pos.X]
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// IsOccupied returns true if a piece sits at the given position
func (b *Board) IsOccupied(pos Position) bool {
	_, ok := b.Get(pos)
	return ok
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.X >= 0 && pos.X < b.Size && pos.Y >= 0 && pos.Y < b.Size
}

// HasPieces returns true if any cell is occupied
func (b *Board) HasPieces() bool {
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			if b.Cells[y][x] != nil {
				return true
			}
		}
	}
	return false
}

// PieceCount returns the number of occupied cells
func (b *Board) PieceCount() int {
	count := 0
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			if b.Cells[y][x] != nil {
				count++
			}
		}
	}
	return count
}

// Clone returns a copy of the board that shares no cells with the original
func (b *Board) Clone() *Board {
	clone := NewBoard(b.Size)
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			if p := b.Cells[y][x]; p != nil {
				piece := *p
				clone.Cells[y][x] = &piece
			}
		}
	}
	return clone
}

// Apply returns a new board with every placement written in for the given
// owner. If any target cell is already occupied (including by an earlier
// placement of the same move) nothing is applied and ErrCellOccupied is
// returned. The receiver is never modified.
func (b *Board) Apply(owner PlayerIndex, move Move) (*Board, error) {
	next := b.Clone()
	for _, p := range move {
		if !next.IsValidPosition(p.Position) {
			return nil, ErrOutOfBounds
		}
		if next.Cells[p.Position.Y][p.Position.X] != nil {
			return nil, ErrCellOccupied
		}
		next.Cells[p.Position.Y][p.Position.X] = &Piece{Owner: owner, Letter: p.Letter}
	}
	return next, nil
}
