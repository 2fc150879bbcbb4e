package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowmoon/runner/assets"
	"github.com/hollowmoon/runner/configs"
	"github.com/hollowmoon/runner/engine/asset"
	"github.com/hollowmoon/runner/engine/audio"
	"github.com/hollowmoon/runner/engine/state"
)

// maxFrameDelta caps the per-frame step so a dragged window or debugger
// pause doesn't teleport everything.
const maxFrameDelta = 0.1

// Game is the host loop: it computes the frame delta, synthesizes input
// events, and hands everything to the screen stack.
type Game struct {
	cfg   *configs.GameConfig
	cache *asset.Cache
	audio *audio.Manager
	stack *state.Stack
	input *inputPoller

	watcher   *asset.Watcher
	events    []state.Event
	lastFrame time.Time
	quit      bool
}

func NewGame(cfg *configs.GameConfig, watchAssets, mute bool) (*Game, error) {
	cache := asset.NewCache(assets.NewLoader())

	mgr := audio.NewManager(cache, assets.NewSoundPlayer, audio.Config{
		Channels:      cfg.Audio.Channels,
		AudibleRadius: cfg.Audio.AudibleRadius,
	})
	mgr.SetMasterVolume(cfg.Audio.MasterVolume)
	if mute {
		mgr.SetMasterVolume(0)
	}
	if err := mgr.LoadSoundsFromDir(assets.FS(), "audio"); err != nil {
		log.Printf("audio: bulk load: %v", err)
	}

	g := &Game{
		cfg:   cfg,
		cache: cache,
		audio: mgr,
		stack: state.NewStack(),
		input: newInputPoller(),
	}

	if watchAssets {
		w, err := asset.Watch(cache, "assets", "assets/graphics", "assets/audio")
		if err != nil {
			log.Printf("asset watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.stack.Push(NewSplashState(g)); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	now := time.Now()
	dt := maxFrameDelta
	if !g.lastFrame.IsZero() {
		if d := now.Sub(g.lastFrame).Seconds(); d < dt {
			dt = d
		}
	}
	g.lastFrame = now

	if g.watcher != nil {
		g.watcher.Sync()
	}

	g.events = g.input.Poll(g.events[:0])
	for _, ev := range g.events {
		g.stack.HandleEvent(ev)
	}

	g.stack.Update(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.stack.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) Close() {
	g.audio.StopAll()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// Quit asks the host loop to terminate after the current frame.
func (g *Game) Quit() {
	g.quit = true
}
