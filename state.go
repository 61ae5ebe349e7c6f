package logo

import "fmt"

// State is a phase of the logo animation. States only move forward:
// Axes, Logo, Fade, Spin.
type State int

const (
	// Axes grows a horizontal and a vertical line out of the center.
	Axes State = iota
	// Logo traces the rose curve one segment per frame.
	Logo
	// Fade washes the trace out with translucent background fills.
	Fade
	// Spin rotates the pre-rendered petals forever.
	Spin
)

var stateNames = [...]string{
	Axes: "axes",
	Logo: "logo",
	Fade: "fade",
	Spin: "spin",
}

// String returns the lowercase state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == Spin
}

// next returns the state that follows s. Spin follows itself.
func (s State) next() State {
	if s.Terminal() {
		return s
	}
	return s + 1
}
