package model

import "fmt"

const (
	// BoardSize is the width and height of the square board
	BoardSize = 15

	// HandSize is the number of tiles a full hand holds
	HandSize = 7

	// BlankCount is the number of blank tiles in a fresh bag
	BlankCount = 2
)

// Letter is a concrete A-Z letter as placed on the board
type Letter rune

// letterValues maps each letter to its point value. Blanks have no entry:
// they are always resolved to a letter before they reach the board.
var letterValues = map[Letter]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
	'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
	'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
	'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
	'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
	'Z': 10,
}

// letterFrequencies is the number of each letter in a fresh bag
var letterFrequencies = map[Letter]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
	'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
	'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
	'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
	'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
	'Z': 1,
}

// TotalTiles is the number of tiles in a fresh bag, blanks included
var TotalTiles = func() int {
	total := BlankCount
	for _, count := range letterFrequencies {
		total += count
	}
	return total
}()

// LetterValue returns the point value of a letter, or false if it is not in the catalog
func LetterValue(l Letter) (int, bool) {
	v, ok := letterValues[l]
	return v, ok
}

// LetterFrequency returns how many of a letter a fresh bag holds
func LetterFrequency(l Letter) int {
	return letterFrequencies[l]
}

// IsValid returns true if the letter is in the catalog
func (l Letter) IsValid() bool {
	return l >= 'A' && l <= 'Z'
}

func (l Letter) String() string {
	return string(rune(l))
}

// MarshalText encodes the letter as a one-character string
func (l Letter) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes a one-character string
func (l *Letter) UnmarshalText(text []byte) error {
	runes := []rune(string(text))
	if len(runes) != 1 || !Letter(runes[0]).IsValid() {
		return fmt.Errorf("invalid letter %q", string(text))
	}
	*l = Letter(runes[0])
	return nil
}
