package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/hollowmoon/runner/configs"
	"github.com/hollowmoon/runner/engine/audio"
	"github.com/hollowmoon/runner/engine/state"
	"github.com/hollowmoon/runner/engine/ui"
)

// MenuState is the main menu: title text plus Play and Quit buttons built
// on the engine's button widget.
type MenuState struct {
	game      *Game
	spec      *configs.MenuSpec
	face      ebtext.Face
	labelFace ebtext.Face
	buttons   []*ui.Button
	labels    []string
}

func NewMenuState(g *Game) *MenuState {
	return &MenuState{game: g}
}

func (m *MenuState) OnEnter() {
	if m.buttons != nil {
		// Resumed from a pushed screen; keep the built widgets.
		return
	}

	spec, err := configs.LoadMenuSpec()
	if err != nil {
		log.Printf("menu config: %v", err)
		spec = &configs.MenuSpec{Title: m.game.cfg.Window.Title}
	}
	m.spec = spec
	m.face = ebtext.NewGoXFace(m.game.cache.GetFont("fonts/title.ttf", 48))
	m.labelFace = ebtext.NewGoXFace(m.game.cache.GetFont("fonts/title.ttf", 20))

	idle := m.game.cache.GetTexture("graphics/button_idle.png")
	hover := m.game.cache.GetTexture("graphics/button_hover.png")

	cx := float64(m.game.cfg.Window.Width) / 2
	m.buttons = []*ui.Button{
		ui.NewButton(cx-96, 320, idle, hover, 2, func() {
			m.game.audio.Play("click", audio.PlayOptions{Priority: audio.PriorityHigh})
			if err := m.game.stack.Set(NewGameplayState(m.game)); err != nil {
				panic(err)
			}
		}),
		ui.NewButton(cx-96, 420, idle, hover, 2, func() {
			m.game.Quit()
		}),
	}
	m.labels = []string{"Play", "Quit"}
}

func (m *MenuState) OnExit() {}

func (m *MenuState) HandleEvent(ev state.Event) {
	for _, b := range m.buttons {
		b.HandleEvent(ev)
	}
}

func (m *MenuState) Update(dt float64) {
	for _, b := range m.buttons {
		b.Update(dt)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	bg := color.Color(color.NRGBA{R: 0x1d, G: 0x23, B: 0x30, A: 0xff})
	if m.spec != nil && m.spec.Background != nil {
		bg = m.spec.Background
	}
	screen.Fill(bg)

	title := m.game.cfg.Window.Title
	if m.spec != nil && m.spec.Title != "" {
		title = m.spec.Title
	}
	op := &ebtext.DrawOptions{}
	w, _ := ebtext.Measure(title, m.face, 0)
	op.GeoM.Translate(float64(m.game.cfg.Window.Width)/2-w/2, 160)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, title, m.face, op)

	for i, b := range m.buttons {
		b.Draw(screen)

		label := m.labels[i]
		lw, lh := ebtext.Measure(label, m.labelFace, 0)
		lop := &ebtext.DrawOptions{}
		r := b.Bounds()
		lop.GeoM.Translate(r.X+r.Width/2-lw/2, r.Y+r.Height/2-lh/2)
		lop.ColorScale.ScaleWithColor(color.White)
		ebtext.Draw(screen, label, m.labelFace, lop)
	}
}

func (m *MenuState) Opaque() bool { return true }
