package mood

import "math/rand/v2"

// intN is the random source behind Randomize. Package-level so tests can
// substitute a deterministic sequence.
var intN = rand.IntN

// Randomize selects a mood uniformly at random and applies it through
// SetMood, so counters, history, and observers behave exactly as for a
// direct selection.
func (s *State) Randomize() {
	s.SetMood(AllMoods[intN(len(AllMoods))])
}
