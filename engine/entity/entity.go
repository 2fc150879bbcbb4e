package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/hollowmoon/runner/engine/anim"
	"github.com/hollowmoon/runner/engine/geom"
)

// Align selects how a reduced hitbox sits inside the visual bounds.
type Align int

const (
	// AlignCenter shrinks the hitbox symmetrically on all sides.
	AlignCenter Align = iota
	// AlignBottom shrinks the hitbox but keeps its bottom edge pinned to
	// the visual's bottom edge, so a standing character's feet stay on the
	// ground plane.
	AlignBottom
)

// Component is a unit of behavior attached to an entity. Update receives a
// non-owning reference to the owner; components never outlive their entity.
type Component interface {
	Update(owner *Entity, dt float64)
}

// Object is the capability surface game screens rely on: anything that can
// be stepped, drawn, and collision-tested.
type Object interface {
	Update(dt float64)
	Draw(screen *ebiten.Image)
	Bounds() geom.Rect
}

// Entity couples a visual (a static image or an animator-driven sprite)
// with a collision rectangle derived from the visual bounds via a stored
// reduction, plus an ordered list of behavior components.
type Entity struct {
	Pos cp.Vector

	image    *ebiten.Image
	animator *anim.Animator

	imageOffset cp.Vector

	reduceW, reduceH float64
	align            Align

	components []Component
}

// New creates an entity with a static visual at (x, y).
func New(x, y float64, img *ebiten.Image) *Entity {
	return &Entity{Pos: cp.Vector{X: x, Y: y}, image: img}
}

// NewAnimated creates an entity whose visual is driven by an animator.
func NewAnimated(x, y float64, animator *anim.Animator) *Entity {
	return &Entity{Pos: cp.Vector{X: x, Y: y}, animator: animator}
}

// AddComponent appends c to the update list. Components run in attachment
// order, once per entity update.
func (e *Entity) AddComponent(c Component) {
	e.components = append(e.components, c)
}

// Animator returns the driving animator, or nil for static visuals.
func (e *Entity) Animator() *anim.Animator {
	return e.animator
}

// Image returns the current visual: the animator frame when animated,
// otherwise the static image.
func (e *Entity) Image() *ebiten.Image {
	if e.animator != nil {
		return e.animator.Frame()
	}
	return e.image
}

// SetImage replaces the static visual. The hitbox reduction is reapplied
// against the new visual bounds on the next query.
func (e *Entity) SetImage(img *ebiten.Image) {
	e.image = img
}

// SetImageOffset displaces the drawn visual from the collision anchor, e.g.
// a wide attack sprite that must not move the hitbox.
func (e *Entity) SetImageOffset(dx, dy float64) {
	e.imageOffset = cp.Vector{X: dx, Y: dy}
}

// ReduceHitbox shrinks the collision rectangle by w and h pixels in total,
// anchored per align. The reduction is stored, so the hitbox tracks the
// visual bounds as the entity moves or its frames change size.
func (e *Entity) ReduceHitbox(w, h float64, align Align) {
	e.reduceW = w
	e.reduceH = h
	e.align = align
}

func (e *Entity) visualSize() (float64, float64) {
	img := e.Image()
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// VisualBounds is the rectangle the visual is drawn into, including the
// image offset.
func (e *Entity) VisualBounds() geom.Rect {
	w, h := e.visualSize()
	return geom.Rect{
		X:      e.Pos.X + e.imageOffset.X,
		Y:      e.Pos.Y + e.imageOffset.Y,
		Width:  w,
		Height: h,
	}
}

// Bounds returns the collision rectangle: the unoffset visual bounds at the
// entity's position, shrunk by the stored reduction.
func (e *Entity) Bounds() geom.Rect {
	w, h := e.visualSize()
	r := geom.Rect{
		X:      e.Pos.X + e.reduceW/2,
		Width:  w - e.reduceW,
		Height: h - e.reduceH,
	}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	switch e.align {
	case AlignBottom:
		r.Y = e.Pos.Y + h - r.Height
	default:
		r.Y = e.Pos.Y + e.reduceH/2
	}
	return r
}

// Update advances the animator and then each component in attachment order.
func (e *Entity) Update(dt float64) {
	if e.animator != nil {
		e.animator.Update(dt)
	}
	for _, c := range e.components {
		c.Update(e, dt)
	}
}

// Draw renders the current visual at the offset position, mirrored when the
// animator's FlipX is set.
func (e *Entity) Draw(screen *ebiten.Image) {
	img := e.Image()
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	if e.animator != nil && e.animator.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	op.GeoM.Translate(e.Pos.X+e.imageOffset.X, e.Pos.Y+e.imageOffset.Y)
	screen.DrawImage(img, op)
}
