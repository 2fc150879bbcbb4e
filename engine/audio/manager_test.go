package audio

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/opentype"

	"github.com/hollowmoon/runner/engine/asset"
)

type fakePlayer struct {
	playing bool
	volume  float64
	loop    bool
}

func (p *fakePlayer) Play()               { p.playing = true }
func (p *fakePlayer) Pause()              { p.playing = false }
func (p *fakePlayer) IsPlaying() bool     { return p.playing }
func (p *fakePlayer) SetVolume(v float64) { p.volume = v }

// stubLoader only serves sounds; the audio tests never touch images or fonts.
type stubLoader struct {
	sounds map[string][]byte
}

func (l stubLoader) DecodeImage(path string) (*ebiten.Image, error) {
	return nil, errors.New("not used")
}

func (l stubLoader) DecodeSound(path string) ([]byte, error) {
	if data, ok := l.sounds[path]; ok {
		return data, nil
	}
	return nil, errors.New("no such sound")
}

func (l stubLoader) DecodeFont(path string) (*opentype.Font, error) {
	return nil, errors.New("not used")
}

func newTestManager(t *testing.T, channels int) (*Manager, *[]*fakePlayer) {
	t.Helper()
	players := &[]*fakePlayer{}
	factory := func(data []byte, loop bool) (Player, error) {
		p := &fakePlayer{loop: loop}
		*players = append(*players, p)
		return p, nil
	}
	cache := asset.NewCache(stubLoader{sounds: map[string][]byte{
		"snd/low.wav":  {1},
		"snd/high.wav": {2},
		"snd/step.wav": {3},
	}})
	m := NewManager(cache, factory, Config{Channels: channels, AudibleRadius: 100})
	m.LoadSound("low", "snd/low.wav")
	m.LoadSound("high", "snd/high.wav")
	m.LoadSound("step", "snd/step.wav")
	return m, players
}

func TestPlayAllocatesLowestFreeChannel(t *testing.T) {
	m, _ := newTestManager(t, 4)

	id0, ok := m.Play("low", PlayOptions{})
	if !ok || id0 != 0 {
		t.Fatalf("first play: got (%d, %v), want (0, true)", id0, ok)
	}
	id1, ok := m.Play("low", PlayOptions{})
	if !ok || id1 != 1 {
		t.Fatalf("second play: got (%d, %v), want (1, true)", id1, ok)
	}

	m.Stop(0)
	id2, ok := m.Play("low", PlayOptions{})
	if !ok || id2 != 0 {
		t.Fatalf("play after Stop(0): got (%d, %v), want reuse of channel 0", id2, ok)
	}
}

func TestPriorityEviction(t *testing.T) {
	m, players := newTestManager(t, 1)

	if _, ok := m.Play("low", PlayOptions{Priority: PriorityLow, Loop: true}); !ok {
		t.Fatalf("low-priority loop should start on the free channel")
	}
	id, ok := m.Play("high", PlayOptions{Priority: PriorityHigh})
	if !ok || id != 0 {
		t.Fatalf("high priority should evict low: got (%d, %v)", id, ok)
	}
	if (*players)[0].playing {
		t.Fatalf("evicted low-priority sound should be stopped")
	}
	if name, _ := m.Occupant(0); name != "high" {
		t.Fatalf("channel 0 occupant = %q, want high", name)
	}

	// A second low request against the busy high channel is dropped.
	if _, ok := m.Play("low", PlayOptions{Priority: PriorityLow}); ok {
		t.Fatalf("low priority request should be dropped, not evict high")
	}
	if name, _ := m.Occupant(0); name != "high" {
		t.Fatalf("high sound should keep playing after dropped request")
	}

	// Equal priority never evicts.
	if _, ok := m.Play("high", PlayOptions{Priority: PriorityHigh}); ok {
		t.Fatalf("equal priority should be dropped, eviction requires strictly greater")
	}
}

func TestEvictionPrefersOldest(t *testing.T) {
	m, players := newTestManager(t, 2)

	m.Play("low", PlayOptions{Priority: PriorityLow, Loop: true})
	m.Play("low", PlayOptions{Priority: PriorityLow, Loop: true})

	id, ok := m.Play("high", PlayOptions{Priority: PriorityHigh})
	if !ok || id != 0 {
		t.Fatalf("oldest low sound (channel 0) should be evicted, got (%d, %v)", id, ok)
	}
	if (*players)[0].playing || !(*players)[1].playing {
		t.Fatalf("only the oldest occupant should be stopped")
	}
}

func TestFinishedChannelIsReusable(t *testing.T) {
	m, players := newTestManager(t, 1)

	m.Play("low", PlayOptions{})
	(*players)[0].playing = false // one-shot ran to completion

	id, ok := m.Play("high", PlayOptions{Priority: PriorityLow})
	if !ok || id != 0 {
		t.Fatalf("finished channel should count as free, got (%d, %v)", id, ok)
	}
}

func TestSpatialAttenuation(t *testing.T) {
	cases := []struct {
		name       string
		distance   float64
		wantPlayed bool
		wantVolume float64
	}{
		{"at_listener", 0, true, 1.0},
		{"half_radius", 50, true, 0.5},
		{"at_radius", 100, false, 0},
		{"beyond_radius", 250, false, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, players := newTestManager(t, 1)
			listener := cp.Vector{X: 0, Y: 0}
			location := cp.Vector{X: c.distance, Y: 0}

			_, ok := m.Play("step", PlayOptions{Location: &location, Listener: &listener})
			if ok != c.wantPlayed {
				t.Fatalf("played = %v, want %v", ok, c.wantPlayed)
			}
			if !c.wantPlayed {
				if len(*players) != 0 {
					t.Fatalf("out-of-range sound must not consume a channel")
				}
				return
			}
			got := (*players)[0].volume
			if diff := got - c.wantVolume; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("volume = %v, want %v", got, c.wantVolume)
			}
		})
	}
}

func TestStopAll(t *testing.T) {
	m, players := newTestManager(t, 4)
	m.Play("low", PlayOptions{Loop: true})
	m.Play("high", PlayOptions{Loop: true})

	m.StopAll()
	for i, p := range *players {
		if p.playing {
			t.Fatalf("player %d still playing after StopAll", i)
		}
	}
	if m.Playing(0) || m.Playing(1) {
		t.Fatalf("channels should be free after StopAll")
	}
}

func TestUnknownSoundIsDropped(t *testing.T) {
	m, players := newTestManager(t, 1)
	if _, ok := m.Play("nope", PlayOptions{}); ok {
		t.Fatalf("unknown sound should report not played")
	}
	if len(*players) != 0 {
		t.Fatalf("unknown sound must not consume a channel")
	}
}

func TestMasterVolumeScalesPlayback(t *testing.T) {
	m, players := newTestManager(t, 1)
	m.SetMasterVolume(0.5)
	m.Play("low", PlayOptions{Volume: 0.8})
	got := (*players)[0].volume
	if diff := got - 0.4; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("volume = %v, want 0.4", got)
	}
}

func TestMutedPlaybackOccupiesChannel(t *testing.T) {
	m, players := newTestManager(t, 1)

	id, ok := m.Play("low", PlayOptions{Volume: Muted})
	if !ok || id != 0 {
		t.Fatalf("muted playback should still start: got (%d, %v)", id, ok)
	}
	if got := (*players)[0].volume; got != 0 {
		t.Fatalf("muted volume = %v, want 0", got)
	}
	if !m.Playing(0) {
		t.Fatalf("muted sound should still occupy its channel")
	}
}

func TestLoadSoundsFromDir(t *testing.T) {
	fsys := fstest.MapFS{
		"sfx/jump.wav":   {Data: []byte{1}},
		"sfx/music.ogg":  {Data: []byte{2}},
		"sfx/notes.txt":  {Data: []byte("skip me")},
		"sfx/sub/hidden": {Data: []byte{3}},
	}

	cache := asset.NewCache(stubLoader{sounds: map[string][]byte{
		"sfx/jump.wav":  {1},
		"sfx/music.ogg": {2},
	}})
	m := NewManager(cache, func(data []byte, loop bool) (Player, error) {
		return &fakePlayer{}, nil
	}, Config{Channels: 2})

	if err := m.LoadSoundsFromDir(fsys, "sfx"); err != nil {
		t.Fatalf("LoadSoundsFromDir: %v", err)
	}
	if _, ok := m.Play("jump", PlayOptions{}); !ok {
		t.Fatalf("jump should be registered by basename")
	}
	if _, ok := m.Play("music", PlayOptions{}); !ok {
		t.Fatalf("music should be registered by basename")
	}
	if _, ok := m.Play("notes", PlayOptions{}); ok {
		t.Fatalf("non-audio file should not be registered")
	}
}
