// Package event defines the input records the host loop synthesizes each
// frame. The state stack routes them verbatim; only the receiving screen
// (or a widget it owns) gives them meaning.
package event

import "github.com/hajimehoshi/ebiten/v2"

// Key is a keyboard transition: Pressed true on key-down frames, false on
// key-up frames.
type Key struct {
	Code    ebiten.Key
	Pressed bool
}

// MouseButton is a pointer button transition at screen coordinates.
type MouseButton struct {
	X, Y    float64
	Button  ebiten.MouseButton
	Pressed bool
}

// MouseMove reports pointer motion in screen coordinates.
type MouseMove struct {
	X, Y float64
}

// GamepadButton is a controller button transition.
type GamepadButton struct {
	ID      ebiten.GamepadID
	Button  ebiten.StandardGamepadButton
	Pressed bool
}

// GamepadAxis reports a controller axis position in [-1, 1]. Emitted only
// when the value moves past the poller's deadzone threshold.
type GamepadAxis struct {
	ID    ebiten.GamepadID
	Axis  ebiten.StandardGamepadAxis
	Value float64
}
