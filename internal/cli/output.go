package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case MatchView:
		o.printMatchView(v)
	case Scores:
		o.printScores(v)
	case Roster:
		o.printRoster(v)
	case ValidateResult:
		o.printValidateResult(v)
	case WordScore:
		o.printWordScore(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// MatchView response type (matches API)
type MatchView struct {
	ID             string    `json:"id"`
	State          string    `json:"state"`
	Board          Board     `json:"board"`
	Hand           []string  `json:"hand"`
	Opponent       string    `json:"opponent"`
	OpponentPassed bool      `json:"opponent_passed"`
	MyTurn         bool      `json:"my_turn"`
	Ended          bool      `json:"ended"`
	BagCount       int       `json:"bag_count"`
	Scores         Scores    `json:"scores"`
	LastUpdate     time.Time `json:"last_update"`
}

// Board response type
type Board struct {
	Size  int       `json:"size"`
	Cells [][]*Cell `json:"cells"`
}

// Cell response type
type Cell struct {
	Letter string `json:"letter"`
	Owner  int    `json:"owner"`
}

// Scores response type
type Scores struct {
	Mine   int `json:"mine"`
	Theirs int `json:"theirs"`
}

// Roster response type
type Roster struct {
	Matches []string `json:"matches"`
}

// ValidateResult response type
type ValidateResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// WordScore response type
type WordScore struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printMatchView(m MatchView) {
	fmt.Fprintf(o.w, "Match: %s\n", m.ID)
	fmt.Fprintf(o.w, "State: %s\n", m.State)
	fmt.Fprintf(o.w, "Opponent: %s\n", m.Opponent)

	switch {
	case m.Ended:
		fmt.Fprintln(o.w, "Game over")
	case m.MyTurn:
		fmt.Fprintln(o.w, "Your turn")
	default:
		fmt.Fprintln(o.w, "Waiting for opponent")
	}
	if m.OpponentPassed && !m.Ended {
		fmt.Fprintln(o.w, "Opponent passed")
	}

	fmt.Fprintf(o.w, "Scores: you %d, them %d\n", m.Scores.Mine, m.Scores.Theirs)
	fmt.Fprintf(o.w, "Bag: %d tiles\n", m.BagCount)

	fmt.Fprintln(o.w)
	o.printBoard(m.Board)

	fmt.Fprintln(o.w)
	o.printHand(m.Hand)
}

func (o *Output) printBoard(b Board) {
	if len(b.Cells) == 0 {
		return
	}

	size := len(b.Cells)

	// Print column headers
	fmt.Fprint(o.w, "    ")
	for x := 0; x < size; x++ {
		fmt.Fprintf(o.w, "%2d ", x)
	}
	fmt.Fprintln(o.w)

	// Print rows
	for y := 0; y < size; y++ {
		fmt.Fprintf(o.w, "%2d |", y)
		for x := 0; x < size; x++ {
			cell := b.Cells[y][x]
			if cell == nil {
				fmt.Fprint(o.w, "  .")
			} else {
				fmt.Fprintf(o.w, "  %s", cell.Letter)
			}
		}
		fmt.Fprintln(o.w)
	}
}

func (o *Output) printHand(hand []string) {
	pieces := make([]string, len(hand))
	for i, t := range hand {
		pieces[i] = fmt.Sprintf("%d:%s", i, t)
	}
	fmt.Fprintf(o.w, "Hand: %s\n", strings.Join(pieces, " "))
}

func (o *Output) printScores(s Scores) {
	fmt.Fprintf(o.w, "You: %d\n", s.Mine)
	fmt.Fprintf(o.w, "Them: %d\n", s.Theirs)
}

func (o *Output) printRoster(r Roster) {
	if len(r.Matches) == 0 {
		fmt.Fprintln(o.w, "No ongoing matches")
		return
	}
	fmt.Fprintf(o.w, "Ongoing matches (%d):\n", len(r.Matches))
	for _, id := range r.Matches {
		fmt.Fprintf(o.w, "  - %s\n", id)
	}
}

func (o *Output) printValidateResult(v ValidateResult) {
	if v.Valid {
		fmt.Fprintln(o.w, "Move is valid")
		return
	}
	fmt.Fprintf(o.w, "Move is invalid: %s\n", v.Reason)
}

func (o *Output) printWordScore(w WordScore) {
	fmt.Fprintf(o.w, "%s: %d points\n", w.Word, w.Score)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
