package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/hollowmoon/runner/engine/event"
	"github.com/hollowmoon/runner/engine/state"
)

// PauseState is a translucent overlay pushed on top of gameplay. The frozen
// game keeps drawing beneath it; popping resumes the run untouched.
type PauseState struct {
	game *Game
	ui   *ebitenui.UI
}

func NewPauseState(g *Game) *PauseState {
	p := &PauseState{game: g}
	p.ui = p.buildUI()
	return p
}

// buildUI assembles a centered panel with Resume and Menu buttons using
// colored nine-slices, so no theme fonts need to be loaded.
func (p *PauseState) buildUI() *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	resumeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Resume", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.resume()
		}),
	)

	menuBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Main Menu", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.game.audio.StopAll()
			if err := p.game.stack.Set(NewMenuState(p.game)); err != nil {
				panic(err)
			}
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(p.game.cfg.Window.Width/3, p.game.cfg.Window.Height/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(resumeBtn)
	panel.AddChild(menuBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func (p *PauseState) OnEnter() {}
func (p *PauseState) OnExit()  {}

func (p *PauseState) HandleEvent(ev state.Event) {
	if e, ok := ev.(event.Key); ok && e.Pressed && e.Code == ebiten.KeyEscape {
		p.resume()
	}
}

func (p *PauseState) resume() {
	if err := p.game.stack.Pop(); err != nil {
		panic(err)
	}
}

func (p *PauseState) Update(dt float64) {
	p.ui.Update()
}

func (p *PauseState) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}

// Opaque is false so the frozen gameplay frame shows through.
func (p *PauseState) Opaque() bool { return false }
