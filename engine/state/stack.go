package state

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Event is an opaque input record forwarded from the host loop to the
// active state. The stack routes events without interpreting them.
type Event any

// State is a self-contained application screen. The stack owns a state
// while it is resident and drives its lifecycle.
type State interface {
	// OnEnter runs when the state becomes active: after Push and again when
	// uncovered by Pop. It must be idempotent for already-built state so a
	// resumed screen isn't destructively reinitialized.
	OnEnter()
	// OnExit runs when the state is covered by Push or removed.
	OnExit()
	HandleEvent(ev Event)
	Update(dt float64)
	Draw(screen *ebiten.Image)
}

// Opaque marks a state that fully covers whatever is below it. Drawing
// starts at the topmost opaque state; states below it are skipped.
type Opaque interface {
	Opaque() bool
}

// BackgroundTicker lets a paused (non-top) state opt into a reduced tick,
// e.g. an animated menu behind a pause overlay. States that don't implement
// it are completely frozen while covered.
type BackgroundTicker interface {
	BackgroundUpdate(dt float64)
}

var (
	// ErrStackUnderflow is returned by Pop when removing the top would
	// leave the application with no active screen.
	ErrStackUnderflow = errors.New("state: pop would empty the stack")
	// ErrNilState is returned when a nil state is pushed or set.
	ErrNilState = errors.New("state: nil state")
)

// Stack owns an ordered set of mutually exclusive screens; the top one is
// active and receives events and updates. Lifecycle hooks complete before
// the next stack operation is issued; hook panics propagate to the host.
type Stack struct {
	states []State
}

func NewStack() *Stack {
	return &Stack{}
}

// Push pauses the current top (OnExit) and activates st (OnEnter). The
// paused state keeps its data and resumes unchanged when uncovered.
func (s *Stack) Push(st State) error {
	if st == nil {
		return ErrNilState
	}
	if top := s.Top(); top != nil {
		top.OnExit()
	}
	s.states = append(s.states, st)
	st.OnEnter()
	return nil
}

// Pop removes the active state and resumes the one below it. Popping the
// last remaining state is rejected with ErrStackUnderflow and leaves the
// stack unchanged.
func (s *Stack) Pop() error {
	if len(s.states) <= 1 {
		return ErrStackUnderflow
	}
	top := s.states[len(s.states)-1]
	top.OnExit()
	s.states[len(s.states)-1] = nil
	s.states = s.states[:len(s.states)-1]
	s.Top().OnEnter()
	return nil
}

// Set exits every resident state top-to-bottom, clears the stack, and
// installs st as the sole screen. Used for hard transitions where prior
// screens must not be resumable.
func (s *Stack) Set(st State) error {
	if st == nil {
		return ErrNilState
	}
	for i := len(s.states) - 1; i >= 0; i-- {
		s.states[i].OnExit()
		s.states[i] = nil
	}
	s.states = s.states[:0]
	s.states = append(s.states, st)
	st.OnEnter()
	return nil
}

// Top returns the active state, or nil when the stack is empty.
func (s *Stack) Top() State {
	if len(s.states) == 0 {
		return nil
	}
	return s.states[len(s.states)-1]
}

func (s *Stack) Len() int {
	return len(s.states)
}

// HandleEvent routes the event to the active state only.
func (s *Stack) HandleEvent(ev Event) {
	if top := s.Top(); top != nil {
		top.HandleEvent(ev)
	}
}

// Update advances the active state. Covered states receive no per-frame
// work unless they opt into a background tick.
func (s *Stack) Update(dt float64) {
	if len(s.states) == 0 {
		return
	}
	for _, st := range s.states[:len(s.states)-1] {
		if ticker, ok := st.(BackgroundTicker); ok {
			ticker.BackgroundUpdate(dt)
		}
	}
	s.Top().Update(dt)
}

// Draw renders resident states bottom-to-top so overlays show the frozen
// frame beneath them, starting from the topmost opaque state.
func (s *Stack) Draw(screen *ebiten.Image) {
	start := 0
	for i := len(s.states) - 1; i >= 0; i-- {
		if op, ok := s.states[i].(Opaque); ok && op.Opaque() {
			start = i
			break
		}
	}
	for _, st := range s.states[start:] {
		st.Draw(screen)
	}
}
