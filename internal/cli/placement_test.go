package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		input string
		want  Placement
	}{
		{"0:T@7,7", Placement{Piece: 0, Letter: "T", X: 7, Y: 7}},
		{"6:q@0,14", Placement{Piece: 6, Letter: "Q", X: 0, Y: 14}},
		{"3:E@-1,2", Placement{Piece: 3, Letter: "E", X: -1, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlacement(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlacementErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"T@7,7",
		"0:T",
		"0:T@7",
		"x:T@7,7",
		"-1:T@7,7",
		"0:TT@7,7",
		"0:?@7,7",
		"0:T@a,7",
		"0:T@7,b",
	} {
		_, err := ParsePlacement(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseMove(t *testing.T) {
	move, err := ParseMove([]string{"0:T@7,7", "2:U@8,7"})
	require.NoError(t, err)
	assert.Equal(t, MoveRequest{Placements: []Placement{
		{Piece: 0, Letter: "T", X: 7, Y: 7},
		{Piece: 2, Letter: "U", X: 8, Y: 7},
	}}, move)

	_, err = ParseMove([]string{"0:T@7,7", "bad"})
	assert.Error(t, err)
}
