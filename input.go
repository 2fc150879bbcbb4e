package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hollowmoon/runner/engine/event"
	"github.com/hollowmoon/runner/engine/state"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// inputPoller turns ebiten's polled input into discrete event records for
// the screen stack. The stack routes them without interpreting them.
const axisDeadzone = 0.05

type axisKey struct {
	id   ebiten.GamepadID
	axis ebiten.StandardGamepadAxis
}

type inputPoller struct {
	keyBuf     []ebiten.Key
	lastMouseX int
	lastMouseY int
	mouseSeen  bool
	lastAxis   map[axisKey]float64
}

func newInputPoller() *inputPoller {
	return &inputPoller{lastAxis: make(map[axisKey]float64)}
}

// Poll appends this frame's input transitions to events and returns it.
func (p *inputPoller) Poll(events []state.Event) []state.Event {
	p.keyBuf = inpututil.AppendJustPressedKeys(p.keyBuf[:0])
	for _, k := range p.keyBuf {
		events = append(events, event.Key{Code: k, Pressed: true})
	}
	p.keyBuf = inpututil.AppendJustReleasedKeys(p.keyBuf[:0])
	for _, k := range p.keyBuf {
		events = append(events, event.Key{Code: k, Pressed: false})
	}

	mx, my := ebiten.CursorPosition()
	if !p.mouseSeen || mx != p.lastMouseX || my != p.lastMouseY {
		events = append(events, event.MouseMove{X: float64(mx), Y: float64(my)})
		p.lastMouseX, p.lastMouseY = mx, my
		p.mouseSeen = true
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			events = append(events, event.MouseButton{X: float64(mx), Y: float64(my), Button: b, Pressed: true})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			events = append(events, event.MouseButton{X: float64(mx), Y: float64(my), Button: b, Pressed: false})
		}
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				events = append(events, event.GamepadButton{ID: id, Button: b, Pressed: true})
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, b) {
				events = append(events, event.GamepadButton{ID: id, Button: b, Pressed: false})
			}
		}
		for a := ebiten.StandardGamepadAxis(0); a <= ebiten.StandardGamepadAxisMax; a++ {
			v := ebiten.StandardGamepadAxisValue(id, a)
			key := axisKey{id: id, axis: a}
			if diff := v - p.lastAxis[key]; diff < axisDeadzone && diff > -axisDeadzone {
				continue
			}
			p.lastAxis[key] = v
			events = append(events, event.GamepadAxis{ID: id, Axis: a, Value: v})
		}
	}

	return events
}
