package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/hollowmoon/runner/configs"
	"github.com/hollowmoon/runner/engine/anim"
	"github.com/hollowmoon/runner/engine/entity"
	"github.com/hollowmoon/runner/engine/geom"
)

// scrollComponent moves its owner left at a fixed speed.
type scrollComponent struct {
	speed float64
}

func (c *scrollComponent) Update(owner *entity.Entity, dt float64) {
	owner.Pos.X -= c.speed * dt
}

// Obstacle is a scrolling hazard built from a config spec.
type Obstacle struct {
	ent *entity.Entity
}

func NewObstacle(g *Game, spec *configs.ObstacleSpec, x float64) *Obstacle {
	animator := anim.NewAnimator()
	for name, def := range spec.Animations {
		frames := anim.LoadSheet(g.cache, spec.Sheet, spec.FrameW, spec.FrameH, def.Row, def.FrameCount)
		animator.Add(name, anim.NewAnimation(frames, def.FrameDuration, def.Loop))
	}
	animator.FlipX = spec.FlipX

	ent := entity.NewAnimated(x, spec.Y-float64(spec.FrameH), animator)
	ent.ReduceHitbox(spec.Hitbox.ReduceW, spec.Hitbox.ReduceH, hitboxAlign(spec.Hitbox.Align))
	ent.AddComponent(&scrollComponent{speed: spec.Speed})

	return &Obstacle{ent: ent}
}

func (o *Obstacle) Update(dt float64) {
	o.ent.Update(dt)
}

func (o *Obstacle) Draw(screen *ebiten.Image) {
	o.ent.Draw(screen)
}

func (o *Obstacle) Bounds() geom.Rect {
	return o.ent.Bounds()
}

func (o *Obstacle) Position() cp.Vector {
	return o.ent.Pos
}

// Offscreen reports whether the obstacle has scrolled past the left edge.
func (o *Obstacle) Offscreen() bool {
	return o.ent.VisualBounds().Right() < -64
}
