// Package mood holds the application's core state: the currently selected
// mood, its selection statistics, and the light/dark theme flag.
//
// The package is deliberately free of any UI dependency. The ui package
// subscribes to the state containers here and re-renders from them; nothing
// in this package knows that a window exists.
package mood

// Mood identifies one of the fixed set of selectable moods.
// The set is closed: there are exactly three variants and no runtime
// extension mechanism.
type Mood int

const (
	Happy Mood = iota
	Sad
	Excited
)

// AllMoods lists every Mood variant in display order. The derivation tables
// in derive.go are checked against this list at package init, so adding a
// variant here without a matching table entry fails at startup rather than
// falling through at runtime.
var AllMoods = []Mood{Happy, Sad, Excited}

// String returns the lowercase identifier used in logs and asset names.
func (m Mood) String() string {
	return moodNames[m]
}

var moodNames = map[Mood]string{
	Happy:   "happy",
	Sad:     "sad",
	Excited: "excited",
}
