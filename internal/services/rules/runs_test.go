package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordduel/internal/model"
)

func boardWith(pieces map[model.Position]model.Letter) *model.Board {
	board := model.NewBoard(model.BoardSize)
	for pos, l := range pieces {
		board.Cells[pos.Y][pos.X] = &model.Piece{Letter: l}
	}
	return board
}

func TestFindRunsEmptyBoard(t *testing.T) {
	assert.Empty(t, FindRuns(model.NewBoard(model.BoardSize)))
}

func TestFindRunsIgnoresSingleLetters(t *testing.T) {
	board := boardWith(map[model.Position]model.Letter{
		{X: 0, Y: 0}: 'A',
		{X: 2, Y: 0}: 'B',
		{X: 1, Y: 1}: 'C',
	})
	assert.Empty(t, FindRuns(board))
}

func TestFindRunsOrder(t *testing.T) {
	// K K
	// J
	board := boardWith(map[model.Position]model.Letter{
		{X: 10, Y: 10}: 'K',
		{X: 11, Y: 10}: 'K',
		{X: 10, Y: 11}: 'J',
		{X: 0, Y: 12}:  'E',
		{X: 1, Y: 12}:  'F',
	})

	runs := FindRuns(board)
	require.Len(t, runs, 3)
	assert.Equal(t, Run{Start: model.Position{X: 10, Y: 10}, Horizontal: true, Word: "KK"}, runs[0])
	assert.Equal(t, Run{Start: model.Position{X: 10, Y: 10}, Horizontal: false, Word: "KJ"}, runs[1])
	assert.Equal(t, Run{Start: model.Position{X: 0, Y: 12}, Horizontal: true, Word: "EF"}, runs[2])
}

func TestFindRunsAtBoardEdges(t *testing.T) {
	last := model.BoardSize - 1
	board := boardWith(map[model.Position]model.Letter{
		{X: last - 1, Y: last}: 'O',
		{X: last, Y: last}:     'X',
		{X: last, Y: last - 1}: 'A',
	})

	runs := FindRuns(board)
	require.Len(t, runs, 2)
	assert.Equal(t, "AX", runs[0].Word)
	assert.False(t, runs[0].Horizontal)
	assert.Equal(t, "OX", runs[1].Word)
	assert.True(t, runs[1].Horizontal)
}

func TestInvalidRun(t *testing.T) {
	board := boardWith(map[model.Position]model.Letter{
		{X: 0, Y: 0}: 'A',
		{X: 1, Y: 0}: 'T',
		{X: 0, Y: 1}: 'X',
	})

	run, ok := InvalidRun(board, wordSet{"AT": true})
	require.True(t, ok)
	assert.Equal(t, "AX", run.Word)

	_, ok = InvalidRun(board, wordSet{"AT": true, "AX": true})
	assert.False(t, ok)
}
