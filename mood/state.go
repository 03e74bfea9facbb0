package mood

// historyCap bounds the recency history. Only the last three selections are
// kept; a fourth selection evicts the oldest.
const historyCap = 3

// State holds the shared mood state for the entire application.
// This centralized state allows different UI components to communicate with
// each other: when the user taps a mood button, the header, background,
// stats card, and history card all update from the same source of truth.
//
// The state uses callbacks to notify components when data changes, following
// an observer pattern. Callbacks receive no payload; subscribers re-read the
// state through the accessors. This keeps components loosely coupled while
// allowing them to react to changes.
//
// All mutation happens synchronously on the Fyne event thread, so State
// carries no lock. Callbacks must not call SetMood or Randomize from inside
// their handler.
type State struct {
	current Mood
	counts  map[Mood]int
	history []Mood

	// onChange holds the registered observer callbacks, invoked in
	// registration order after every successful mutation.
	onChange []func()
}

// NewState creates the mood state with its documented defaults: current mood
// Happy, every counter present and zero, empty history.
// This should be called once at application startup.
func NewState() *State {
	counts := make(map[Mood]int, len(AllMoods))
	for _, m := range AllMoods {
		counts[m] = 0
	}
	return &State{
		current: Happy,
		counts:  counts,
		history: make([]Mood, 0, historyCap),
	}
}

// SetMood makes m the current mood, increments its counter, and records it at
// the front of the history, evicting the oldest entry once the history holds
// three. All registered callbacks are then notified exactly once.
//
// SetMood cannot fail: m is a value from the closed Mood enumeration, so
// there is nothing to validate at runtime.
func (s *State) SetMood(m Mood) {
	s.current = m
	s.counts[m]++

	// Prepend, most-recent-first, then trim to capacity.
	s.history = append([]Mood{m}, s.history...)
	if len(s.history) > historyCap {
		s.history = s.history[:historyCap]
	}

	s.notify()
}

// Current returns the active mood.
func (s *State) Current() Mood {
	return s.current
}

// Counts returns a copy of the per-mood selection counters. Every Mood
// variant is present in the returned map, even at zero. Mutating the copy
// has no effect on the state.
func (s *State) Counts() map[Mood]int {
	counts := make(map[Mood]int, len(s.counts))
	for m, n := range s.counts {
		counts[m] = n
	}
	return counts
}

// History returns a copy of the recency history, most recent first, at most
// three entries. Mutating the copy has no effect on the state.
func (s *State) History() []Mood {
	history := make([]Mood, len(s.history))
	copy(history, s.history)
	return history
}

// OnChange registers a callback to be invoked after every mutation.
// Multiple callbacks can be registered and will all be called in order.
func (s *State) OnChange(callback func()) {
	s.onChange = append(s.onChange, callback)
}

func (s *State) notify() {
	for _, callback := range s.onChange {
		callback()
	}
}
