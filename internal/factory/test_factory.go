package factory

import (
	"time"

	"github.com/mcoot/wordduel/internal/dependencies/mocks"
	"github.com/mcoot/wordduel/internal/storage/memory"
	"github.com/mcoot/wordduel/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The bag is left unshuffled, so the challenger is dealt VWWXYYZ and the
// opponent TTUUUUV.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestLexicon loads a small lexicon for testing
func (t *TestApp) LoadTestLexicon() {
	words := []string{
		// 2-letter words
		"at", "be", "do", "go", "he", "if", "in", "is", "it", "me",
		"my", "no", "of", "on", "or", "so", "to", "up", "us", "we",
		"ut", "xu",
		// 3-letter words
		"ace", "act", "age", "ago", "and", "ant", "ark", "art", "bat", "cat",
		"cut", "dog", "ear", "eat", "fox", "hut", "jar", "let", "nut", "out",
		"put", "rat", "rut", "sat", "tat", "tea", "ten", "tut", "tux", "vat",
		"wax", "way", "wry", "yet", "zap", "zip",
		// 4-letter words
		"quiz", "taut", "tutu", "word", "zone",
	}
	t.Lexicon.LoadWords(words)
}
