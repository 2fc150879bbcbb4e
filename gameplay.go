package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/hollowmoon/runner/configs"
	"github.com/hollowmoon/runner/engine/audio"
	"github.com/hollowmoon/runner/engine/entity"
	"github.com/hollowmoon/runner/engine/event"
	"github.com/hollowmoon/runner/engine/state"
)

// GameplayState runs the actual game: the player dodges scrolling
// obstacles, score is survival time in seconds.
type GameplayState struct {
	game *Game

	player    *Player
	obstacles []*Obstacle
	spec      *configs.ObstaclesSpec

	sky    *ebiten.Image
	ground *ebiten.Image
	face   ebtext.Face

	spawnIn float64
	score   float64
	musicCh int
	built   bool
}

func NewGameplayState(g *Game) *GameplayState {
	return &GameplayState{game: g, musicCh: -1}
}

// OnEnter builds the world on first entry only, so resuming from the pause
// overlay doesn't reset the run.
func (s *GameplayState) OnEnter() {
	if !s.built {
		s.build()
		s.built = true
	}
	// Resume semantics: restart the ambience only if it isn't playing.
	if s.musicCh < 0 || !s.game.audio.Playing(s.musicCh) {
		if id, ok := s.game.audio.Play("music", audio.PlayOptions{
			Priority: audio.PriorityCritical,
			Volume:   0.5,
			Loop:     true,
		}); ok {
			s.musicCh = id
		}
	}
}

func (s *GameplayState) build() {
	playerSpec, err := configs.LoadPlayerSpec()
	if err != nil {
		log.Printf("player config: %v", err)
		playerSpec = &configs.PlayerSpec{
			Sheet: "graphics/player-Sheet.png", FrameW: 32, FrameH: 32,
			Animations: map[string]configs.AnimationDef{
				"run":  {FrameCount: 6, FrameDuration: 0.1, Loop: true},
				"jump": {Row: 1, FrameCount: 2, FrameDuration: 0.15},
			},
			JumpSpeed: -620, Gravity: 1800, GroundY: 560,
		}
	}

	obstacleSpec, err := configs.LoadObstaclesSpec()
	if err != nil {
		log.Printf("obstacle config: %v", err)
		obstacleSpec = &configs.ObstaclesSpec{SpawnIntervalMin: 1, SpawnIntervalMax: 2}
	}
	s.spec = obstacleSpec

	s.player = NewPlayer(s.game, playerSpec, 200)
	s.sky = s.game.cache.GetTexture("graphics/sky.png")
	s.ground = s.game.cache.GetTexture("graphics/ground.png")
	s.face = ebtext.NewGoXFace(s.game.cache.GetFont("fonts/title.ttf", 24))
	s.spawnIn = s.nextSpawnInterval()
}

func (s *GameplayState) OnExit() {}

func (s *GameplayState) HandleEvent(ev state.Event) {
	switch e := ev.(type) {
	case event.Key:
		if !e.Pressed {
			return
		}
		switch e.Code {
		case ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW:
			s.player.Jump()
		case ebiten.KeyEscape:
			if err := s.game.stack.Push(NewPauseState(s.game)); err != nil {
				panic(err)
			}
		}
	case event.GamepadButton:
		if e.Pressed && e.Button == ebiten.StandardGamepadButtonRightBottom {
			s.player.Jump()
		}
	}
}

func (s *GameplayState) Update(dt float64) {
	s.score += dt
	s.player.Update(dt)

	s.spawnIn -= dt
	if s.spawnIn <= 0 && len(s.spec.Obstacles) > 0 {
		s.spawnIn = s.nextSpawnInterval()
		spec := &s.spec.Obstacles[rand.Intn(len(s.spec.Obstacles))]
		x := float64(s.game.cfg.Window.Width) + 64
		s.obstacles = append(s.obstacles, NewObstacle(s.game, spec, x))
	}

	alive := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Update(dt)
		if o.Offscreen() {
			continue
		}
		alive = append(alive, o)
	}
	s.obstacles = alive

	listener := s.player.Position()
	for _, o := range s.obstacles {
		if s.player.Bounds().Intersects(o.Bounds()) {
			loc := o.Position()
			s.game.audio.StopAll()
			s.game.audio.Play("hit", audio.PlayOptions{
				Priority: audio.PriorityCritical,
				Location: &loc,
				Listener: &listener,
			})
			if err := s.game.stack.Set(NewMenuState(s.game)); err != nil {
				panic(err)
			}
			return
		}
	}
}

func (s *GameplayState) nextSpawnInterval() float64 {
	min, max := s.spec.SpawnIntervalMin, s.spec.SpawnIntervalMax
	if min <= 0 {
		min = 1
	}
	if max < min {
		max = min
	}
	return min + rand.Float64()*(max-min)
}

func (s *GameplayState) Draw(screen *ebiten.Image) {
	drawStretched(screen, s.sky, 0, 0, float64(s.game.cfg.Window.Width), 560)
	drawStretched(screen, s.ground, 0, 560, float64(s.game.cfg.Window.Width), float64(s.game.cfg.Window.Height)-560)

	for _, obj := range s.drawList() {
		obj.Draw(screen)
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(24, 24)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, fmt.Sprintf("Score: %d", int(s.score)), s.face, op)
}

// drawList orders the world back to front: obstacles first, player on top.
func (s *GameplayState) drawList() []entity.Object {
	objects := make([]entity.Object, 0, len(s.obstacles)+1)
	for _, o := range s.obstacles {
		objects = append(objects, o)
	}
	return append(objects, s.player)
}

func (s *GameplayState) Opaque() bool { return true }

func drawStretched(screen, img *ebiten.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(img.Bounds().Dx()), h/float64(img.Bounds().Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
