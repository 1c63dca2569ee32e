package rules

import (
	"strings"

	"github.com/mcoot/wordduel/internal/model"
)

// Run is a maximal line of two or more contiguously occupied cells
type Run struct {
	Start      model.Position
	Horizontal bool
	Word       string
}

// FindRuns scans the whole board row by row (y, then x) and returns every
// run in the order the scan meets its first cell. At each cell the
// horizontal run is reported before the vertical one.
func FindRuns(board *model.Board) []Run {
	var runs []Run
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			pos := model.Position{X: x, Y: y}
			if !board.IsOccupied(pos) {
				continue
			}
			if !board.IsOccupied(model.Position{X: x - 1, Y: y}) {
				if word := readLine(board, pos, 1, 0); len(word) > 1 {
					runs = append(runs, Run{Start: pos, Horizontal: true, Word: word})
				}
			}
			if !board.IsOccupied(model.Position{X: x, Y: y - 1}) {
				if word := readLine(board, pos, 0, 1); len(word) > 1 {
					runs = append(runs, Run{Start: pos, Horizontal: false, Word: word})
				}
			}
		}
	}
	return runs
}

// InvalidRun returns the first run, in FindRuns order, whose word is not in
// the lexicon
func InvalidRun(board *model.Board, lexicon Lexicon) (Run, bool) {
	for _, run := range FindRuns(board) {
		if !lexicon.Contains(run.Word) {
			return run, true
		}
	}
	return Run{}, false
}

// readLine collects letters from start, stepping by (dx, dy) until it
// leaves the board or reaches an empty cell
func readLine(board *model.Board, start model.Position, dx, dy int) string {
	var sb strings.Builder
	for pos := start; ; pos = (model.Position{X: pos.X + dx, Y: pos.Y + dy}) {
		piece, ok := board.Get(pos)
		if !ok {
			break
		}
		sb.WriteRune(rune(piece.Letter))
	}
	return sb.String()
}
