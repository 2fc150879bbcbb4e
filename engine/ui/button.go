package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowmoon/runner/common"
	"github.com/hollowmoon/runner/engine/event"
	"github.com/hollowmoon/runner/engine/geom"
	"github.com/hollowmoon/runner/engine/state"
)

const (
	hoverScale     = 1.1
	hoverLerpSpeed = 10.0
)

// Button is a clickable element with normal and hover visuals and a
// zero-argument callback. Its owning state forwards events to HandleEvent
// and drives Update/Draw once per frame.
type Button struct {
	idle  *ebiten.Image
	hover *ebiten.Image

	rect  geom.Rect
	scale float64

	onClick func()

	hovered      bool
	pressed      bool
	currentScale float64
}

// NewButton places a button with its top-left at (x, y). hover may be nil to
// reuse the idle image. scale multiplies the image's natural size.
func NewButton(x, y float64, idle, hover *ebiten.Image, scale float64, onClick func()) *Button {
	if hover == nil {
		hover = idle
	}
	if scale <= 0 {
		scale = 1
	}
	b := &Button{
		idle:         idle,
		hover:        hover,
		scale:        scale,
		onClick:      onClick,
		currentScale: 1,
	}
	bounds := idle.Bounds()
	b.rect = geom.Rect{
		X:      x,
		Y:      y,
		Width:  float64(bounds.Dx()) * scale,
		Height: float64(bounds.Dy()) * scale,
	}
	return b
}

// HandleEvent consumes pointer events. The callback fires on release, and
// only when both press and release landed inside the button.
func (b *Button) HandleEvent(ev state.Event) {
	switch e := ev.(type) {
	case event.MouseMove:
		b.hovered = b.rect.Contains(e.X, e.Y)
	case event.MouseButton:
		if e.Button != ebiten.MouseButtonLeft {
			return
		}
		b.hovered = b.rect.Contains(e.X, e.Y)
		if e.Pressed {
			b.pressed = b.hovered
			return
		}
		if b.pressed && b.hovered && b.onClick != nil {
			b.onClick()
		}
		b.pressed = false
	}
}

// Update eases the hover grow animation toward its target.
func (b *Button) Update(dt float64) {
	target := 1.0
	if b.hovered {
		target = hoverScale
	}
	b.currentScale = common.Lerp(b.currentScale, target, common.Clamp(hoverLerpSpeed*dt, 0, 1))
	if diff := b.currentScale - target; diff < 0.001 && diff > -0.001 {
		b.currentScale = target
	}
}

func (b *Button) Draw(screen *ebiten.Image) {
	img := b.idle
	if b.hovered {
		img = b.hover
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest

	// Scale around the button center so the grow effect doesn't shift it.
	s := b.scale * b.currentScale
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(b.rect.X+b.rect.Width/2, b.rect.Y+b.rect.Height/2)
	screen.DrawImage(img, op)
}

// Bounds returns the clickable rectangle (unaffected by the hover grow).
func (b *Button) Bounds() geom.Rect {
	return b.rect
}

func (b *Button) Hovered() bool {
	return b.hovered
}
