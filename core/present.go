package core

// Presentation tracks whether a detail value is currently on screen,
// separately retaining the last value shown so a consumer can keep
// rendering it while an exit transition plays out. Clearing the presented
// value is the only signal that a view should leave the screen; the
// retained value is a side channel and never authoritative state.
//
// The zero value is ready to use: nothing presented, nothing retained.
type Presentation[T any] struct {
	presented *T
	retained  *T
}

// Present puts v on screen and records it as the retained value.
func (p *Presentation[T]) Present(v T) {
	p.presented = &v
	p.retained = &v
}

// Dismiss takes the value off screen. The retained value is untouched, so
// Current keeps returning the last presented value. Dismissing an already
// empty slot is a no-op.
func (p *Presentation[T]) Dismiss() {
	p.presented = nil
}

// Active reports whether a value is currently presented. This is the sole
// signal that should drive an "is this view on screen" toggle.
func (p *Presentation[T]) Active() bool {
	return p.presented != nil
}

// Value returns the presented value, if any. Unlike Current it does not
// fall back to the retained value.
func (p *Presentation[T]) Value() (T, bool) {
	if p.presented == nil {
		var zero T
		return zero, false
	}
	return *p.presented, true
}

// Current returns the effective value for rendering: the presented value
// while active, otherwise the retained one. It returns false only if
// nothing has ever been presented.
func (p *Presentation[T]) Current() (T, bool) {
	if p.presented != nil {
		return *p.presented, true
	}
	if p.retained != nil {
		return *p.retained, true
	}
	var zero T
	return zero, false
}
