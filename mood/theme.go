package mood

// Theme holds the light/dark flag. It starts light and is never persisted;
// every launch begins in light mode.
//
// Same observer contract as State: callbacks fire synchronously, exactly
// once per Toggle, and must not call Toggle from inside their handler.
type Theme struct {
	dark     bool
	onChange []func()
}

// NewTheme creates the theme state in light mode.
func NewTheme() *Theme {
	return &Theme{}
}

// Dark reports whether dark mode is active.
func (t *Theme) Dark() bool {
	return t.dark
}

// Toggle flips between light and dark and notifies all registered callbacks.
func (t *Theme) Toggle() {
	t.dark = !t.dark
	for _, callback := range t.onChange {
		callback()
	}
}

// OnChange registers a callback to be invoked after every toggle.
func (t *Theme) OnChange(callback func()) {
	t.onChange = append(t.onChange, callback)
}
