package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Placement mirrors the API's placement body
type Placement struct {
	Piece  int    `json:"piece"`
	Letter string `json:"letter"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// MoveRequest mirrors the API's move body
type MoveRequest struct {
	Placements []Placement `json:"placements"`
}

// ParsePlacement parses "<piece>:<letter>@<x>,<y>", e.g. "0:T@7,7".
// The letter names what a blank stands for; for other tiles it must match.
func ParsePlacement(s string) (Placement, error) {
	pieceStr, rest, ok := strings.Cut(s, ":")
	if !ok {
		return Placement{}, fmt.Errorf("placement %q: expected <piece>:<letter>@<x>,<y>", s)
	}
	letter, coords, ok := strings.Cut(rest, "@")
	if !ok {
		return Placement{}, fmt.Errorf("placement %q: missing @<x>,<y>", s)
	}
	xStr, yStr, ok := strings.Cut(coords, ",")
	if !ok {
		return Placement{}, fmt.Errorf("placement %q: coordinates must be <x>,<y>", s)
	}

	piece, err := strconv.Atoi(pieceStr)
	if err != nil || piece < 0 {
		return Placement{}, fmt.Errorf("placement %q: invalid piece index", s)
	}

	letter = strings.ToUpper(letter)
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return Placement{}, fmt.Errorf("placement %q: letter must be a single character A-Z", s)
	}

	x, err := strconv.Atoi(xStr)
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q: invalid x: %w", s, err)
	}
	y, err := strconv.Atoi(yStr)
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q: invalid y: %w", s, err)
	}

	return Placement{Piece: piece, Letter: letter, X: x, Y: y}, nil
}

// ParseMove parses each argument as a placement
func ParseMove(args []string) (MoveRequest, error) {
	placements := make([]Placement, 0, len(args))
	for _, arg := range args {
		p, err := ParsePlacement(arg)
		if err != nil {
			return MoveRequest{}, err
		}
		placements = append(placements, p)
	}
	return MoveRequest{Placements: placements}, nil
}
