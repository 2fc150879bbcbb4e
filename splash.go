package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/hollowmoon/runner/engine/event"
	"github.com/hollowmoon/runner/engine/state"
)

const splashDuration = 1.5

// SplashState shows the title card briefly, then hands off to the menu.
// Any key or click skips it.
type SplashState struct {
	game  *Game
	timer float64
	face  ebtext.Face
}

func NewSplashState(g *Game) *SplashState {
	return &SplashState{game: g}
}

func (s *SplashState) OnEnter() {
	if s.face == nil {
		s.face = ebtext.NewGoXFace(s.game.cache.GetFont("fonts/title.ttf", 64))
	}
	s.timer = 0
}

func (s *SplashState) OnExit() {}

func (s *SplashState) HandleEvent(ev state.Event) {
	switch e := ev.(type) {
	case event.Key:
		if e.Pressed {
			s.finish()
		}
	case event.MouseButton:
		if e.Pressed {
			s.finish()
		}
	}
}

func (s *SplashState) Update(dt float64) {
	s.timer += dt
	if s.timer >= splashDuration {
		s.finish()
	}
}

func (s *SplashState) finish() {
	if err := s.game.stack.Set(NewMenuState(s.game)); err != nil {
		panic(err)
	}
}

func (s *SplashState) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff})

	op := &ebtext.DrawOptions{}
	w, h := ebtext.Measure(s.game.cfg.Window.Title, s.face, 0)
	op.GeoM.Translate(float64(s.game.cfg.Window.Width)/2-w/2, float64(s.game.cfg.Window.Height)/2-h/2)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, s.game.cfg.Window.Title, s.face, op)
}

func (s *SplashState) Opaque() bool { return true }
