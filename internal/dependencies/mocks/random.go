package mocks

import (
	"github.com/mcoot/wordduel/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// ShuffleFunc replaces Shuffle when set; otherwise Shuffle keeps the input order
	ShuffleFunc  func(n int, swap func(i, j int))
	shuffleCalls int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn always returns 0
func (r *MockRandom) Intn(n int) int {
	return 0
}

// Shuffle calls ShuffleFunc if set, otherwise leaves the order unchanged
func (r *MockRandom) Shuffle(n int, swap func(i, j int)) {
	r.shuffleCalls++
	if r.ShuffleFunc != nil {
		r.ShuffleFunc(n, swap)
	}
}

// ShuffleCalls returns how many times Shuffle has been called
func (r *MockRandom) ShuffleCalls() int {
	return r.shuffleCalls
}
