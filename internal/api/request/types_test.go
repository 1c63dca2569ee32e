package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordduel/internal/model"
)

func TestMoveRequestToMove(t *testing.T) {
	req := MoveRequest{Placements: []Placement{
		{Piece: 0, Letter: "c", X: 7, Y: 7},
		{Piece: 3, Letter: "A", X: 8, Y: 7},
	}}

	move, err := req.ToMove()
	require.NoError(t, err)

	assert.Equal(t, model.Move{
		{HandIndex: 0, Letter: 'C', Position: model.Position{X: 7, Y: 7}},
		{HandIndex: 3, Letter: 'A', Position: model.Position{X: 8, Y: 7}},
	}, move)
}

func TestMoveRequestToMoveRejectsBadLetter(t *testing.T) {
	for _, letter := range []string{"", "AB", "?", "1"} {
		req := MoveRequest{Placements: []Placement{{Letter: letter}}}
		_, err := req.ToMove()
		assert.Error(t, err, "letter %q", letter)
	}
}

func TestMoveRequestToMoveEmpty(t *testing.T) {
	move, err := MoveRequest{}.ToMove()
	require.NoError(t, err)
	assert.Empty(t, move)
}
