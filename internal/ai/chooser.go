package ai

import (
	"math/rand"
)

// Chooser selects one of n options by index. It lets the brain swap between
// random and deterministic selection.
type Chooser interface {
	Choose(n int) int
}

// --- Implementations ---

// RandomChooser picks an index uniformly at random.
type RandomChooser struct {
	rand *rand.Rand
}

// NewRandomChooser creates a new random chooser.
func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) Choose(n int) int {
	if n <= 0 {
		return -1
	}
	return r.rand.Intn(n)
}

// DeterministicChooser always picks the first option. Legal responses are
// listed in a fixed order, so this is used for predictable testing.
type DeterministicChooser struct{}

func (d *DeterministicChooser) Choose(n int) int {
	if n <= 0 {
		return -1
	}
	return 0
}

// chance reports true roughly one time in n.
func chance(c Chooser, n int) bool {
	return c.Choose(n) == 0
}
