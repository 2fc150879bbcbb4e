package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/hollowmoon/runner/configs"
	"github.com/hollowmoon/runner/engine/anim"
	"github.com/hollowmoon/runner/engine/audio"
	"github.com/hollowmoon/runner/engine/entity"
	"github.com/hollowmoon/runner/engine/geom"
)

const footstepInterval = 0.3

// gravityComponent accelerates its owner downward and pins it to the ground
// plane, tracking grounded state for the player's jump logic.
type gravityComponent struct {
	accel    float64
	groundY  float64
	vy       float64
	grounded bool
}

func (c *gravityComponent) Update(owner *entity.Entity, dt float64) {
	c.vy += c.accel * dt
	owner.Pos.Y += c.vy * dt

	bottom := owner.Bounds().Bottom()
	if bottom >= c.groundY {
		owner.Pos.Y -= bottom - c.groundY
		c.vy = 0
		c.grounded = true
	} else {
		c.grounded = false
	}
}

// Player is the runner: an animated entity with a gravity component, jump
// input, and footstep audio while grounded.
type Player struct {
	ent     *entity.Entity
	gravity *gravityComponent
	spec    *configs.PlayerSpec
	audio   *audio.Manager

	stepTimer float64
}

func NewPlayer(g *Game, spec *configs.PlayerSpec, x float64) *Player {
	// The spec's sound manifest re-registers under its own names, so the
	// config stays authoritative even if the bulk directory scan missed one.
	for name, path := range spec.Sounds {
		g.audio.LoadSound(name, path)
	}

	animator := anim.NewAnimator()
	for name, def := range spec.Animations {
		frames := anim.LoadSheet(g.cache, spec.Sheet, spec.FrameW, spec.FrameH, def.Row, def.FrameCount)
		animator.Add(name, anim.NewAnimation(frames, def.FrameDuration, def.Loop))
	}
	animator.Set("run")

	ent := entity.NewAnimated(x, spec.GroundY-float64(spec.FrameH), animator)
	ent.ReduceHitbox(spec.Hitbox.ReduceW, spec.Hitbox.ReduceH, hitboxAlign(spec.Hitbox.Align))

	gravity := &gravityComponent{accel: spec.Gravity, groundY: spec.GroundY}
	ent.AddComponent(gravity)

	return &Player{
		ent:     ent,
		gravity: gravity,
		spec:    spec,
		audio:   g.audio,
	}
}

// Jump launches the player when grounded and plays the jump sound.
func (p *Player) Jump() {
	if !p.gravity.grounded {
		return
	}
	p.gravity.vy = p.spec.JumpSpeed
	p.audio.Play("jump", audio.PlayOptions{Priority: audio.PriorityHigh})
}

func (p *Player) Update(dt float64) {
	if p.gravity.grounded {
		p.ent.Animator().Set("run")
		p.stepTimer += dt
		if p.stepTimer >= footstepInterval {
			p.stepTimer = 0
			loc := p.Position()
			p.audio.Play("footstep", audio.PlayOptions{
				Priority: audio.PriorityLow,
				Volume:   0.6,
				Location: &loc,
				Listener: &loc,
			})
		}
	} else {
		p.ent.Animator().Set("jump")
		p.stepTimer = 0
	}
	p.ent.Update(dt)
}

func (p *Player) Draw(screen *ebiten.Image) {
	p.ent.Draw(screen)
}

func (p *Player) Bounds() geom.Rect {
	return p.ent.Bounds()
}

func (p *Player) Position() cp.Vector {
	return p.ent.Pos
}

func hitboxAlign(name string) entity.Align {
	if name == "bottom" {
		return entity.AlignBottom
	}
	return entity.AlignCenter
}
