package anim

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation sequences a fixed set of frames over time. The clock accumulates
// update deltas; the current frame index is derived from it on read, so the
// caller's update cadence never skews frame selection.
type Animation struct {
	frames        []*ebiten.Image
	frameDuration float64
	loop          bool

	clock float64
}

// NewAnimation creates an animation over frames with the given per-frame
// duration in seconds. Looping animations wrap; one-shot animations hold
// their last frame and report Finished.
func NewAnimation(frames []*ebiten.Image, frameDuration float64, loop bool) *Animation {
	if frameDuration <= 0 {
		frameDuration = 0.1
	}
	return &Animation{
		frames:        frames,
		frameDuration: frameDuration,
		loop:          loop,
	}
}

// Update advances the animation clock by dt seconds.
func (a *Animation) Update(dt float64) {
	if len(a.frames) == 0 || dt <= 0 {
		return
	}
	a.clock += dt
	total := a.frameDuration * float64(len(a.frames))
	if a.loop {
		// Keep the clock bounded so long-running loops don't lose precision.
		for a.clock >= total {
			a.clock -= total
		}
	} else if a.clock > total {
		a.clock = total
	}
}

// Index returns the current frame index, always within [0, len(frames)).
func (a *Animation) Index() int {
	if len(a.frames) == 0 {
		return 0
	}
	idx := int(a.clock / a.frameDuration)
	if a.loop {
		return idx % len(a.frames)
	}
	if idx >= len(a.frames) {
		return len(a.frames) - 1
	}
	return idx
}

// Frame returns the image for the current frame. Pure read, no side effect.
func (a *Animation) Frame() *ebiten.Image {
	if len(a.frames) == 0 {
		return nil
	}
	return a.frames[a.Index()]
}

// Finished reports whether a one-shot animation has run through all frames.
// Looping animations never finish.
func (a *Animation) Finished() bool {
	if a.loop || len(a.frames) == 0 {
		return false
	}
	return a.clock >= a.frameDuration*float64(len(a.frames))
}

// Reset rewinds the animation to its first frame.
func (a *Animation) Reset() {
	a.clock = 0
}

func (a *Animation) FrameCount() int {
	return len(a.frames)
}

// Animator selects between named animations. Setting an animation resets
// its clock only when the name actually changes, so states that re-assert
// the same animation every frame don't restart it.
type Animator struct {
	animations map[string]*Animation
	current    string

	// FlipX mirrors the sprite horizontally at draw time.
	FlipX bool
}

func NewAnimator() *Animator {
	return &Animator{animations: make(map[string]*Animation)}
}

// Add registers an animation under name. The first added animation becomes
// the current selection.
func (an *Animator) Add(name string, a *Animation) {
	an.animations[name] = a
	if an.current == "" {
		an.current = name
		a.Reset()
	}
}

// Set switches to the named animation, resetting it to frame 0. Setting the
// already-current name is a no-op. An unregistered name is a content/code
// mismatch and panics.
func (an *Animator) Set(name string) {
	if name == an.current {
		return
	}
	a, ok := an.animations[name]
	if !ok {
		panic(fmt.Sprintf("anim: unknown animation %q", name))
	}
	an.current = name
	a.Reset()
}

func (an *Animator) Current() string {
	return an.current
}

// Animation returns the currently selected animation, or nil before the
// first Add.
func (an *Animator) Animation() *Animation {
	if an.current == "" {
		return nil
	}
	return an.animations[an.current]
}

func (an *Animator) Update(dt float64) {
	if a := an.Animation(); a != nil {
		a.Update(dt)
	}
}

func (an *Animator) Frame() *ebiten.Image {
	if a := an.Animation(); a != nil {
		return a.Frame()
	}
	return nil
}
