package mocks

import (
	"github.com/mcoot/protocols-go/internal/dependencies/random"
)

// MockRandom is a queue-backed implementation of random.Random and
// random.Generator for testing
type MockRandom struct {
	// DrawResults is a queue of results to return from Random
	DrawResults []int
	drawIndex   int

	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// StringResults is a queue of results to return from String
	StringResults []string
	stringIndex   int
}

// Ensure MockRandom implements both interfaces
var (
	_ random.Random    = (*MockRandom)(nil)
	_ random.Generator = (*MockRandom)(nil)
)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Random returns the next queued draw, or random.Min if none remaining
func (r *MockRandom) Random() int {
	if r.drawIndex >= len(r.DrawResults) {
		return random.Min
	}
	result := r.DrawResults[r.drawIndex]
	r.drawIndex++
	return result
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// String returns the next queued result, or empty string if none remaining
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		return ""
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueDraws adds values to the Random result queue
func (r *MockRandom) QueueDraws(values ...int) {
	r.DrawResults = append(r.DrawResults, values...)
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.DrawResults = nil
	r.drawIndex = 0
	r.IntnResults = nil
	r.intnIndex = 0
	r.StringResults = nil
	r.stringIndex = 0
}
