package models

// Snapshot is the exported view of one mood session, as written by the
// File > Export Snapshot dialog and rendered by the clipboard summary.
// It is write-only output: nothing in the application ever reads one back,
// so a restarted app always begins from the defaults.
type Snapshot struct {
	TakenAt string         `json:"taken_at"` // RFC 3339 export timestamp
	Version string         `json:"version"`  // app version that produced the file
	Current string         `json:"current_mood"`
	Dark    bool           `json:"dark_theme"`
	Counts  map[string]int `json:"counts"`  // per-mood selection tallies, keyed by mood title
	History []string       `json:"history"` // most-recent-first, at most three entries
}
