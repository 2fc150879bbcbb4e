package audio

import (
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/hollowmoon/runner/common"
	"github.com/hollowmoon/runner/engine/asset"
)

// Priority orders competing playback requests when every channel is busy.
type Priority int

const (
	PriorityLow      Priority = 1
	PriorityNormal   Priority = 5
	PriorityHigh     Priority = 10
	PriorityCritical Priority = 20
)

const (
	defaultChannels      = 32
	defaultAudibleRadius = 500
)

// Player is one playing sound instance. *audio.Player from ebiten satisfies
// it through the assets package; tests substitute fakes.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
}

// PlayerFactory builds a Player for decoded PCM data. When loop is true the
// returned player repeats until paused.
type PlayerFactory func(data []byte, loop bool) (Player, error)

// Muted requests intentionally silent playback. The channel is still
// occupied and the sound still runs to completion on schedule.
const Muted float64 = -1

// PlayOptions tune a single playback request. The zero value means: normal
// priority, full volume, no loop, no spatial attenuation.
type PlayOptions struct {
	Priority Priority
	// Volume in [0, 1]. Zero is treated as 1.0 so the zero value of
	// PlayOptions plays at full volume; pass Muted (any negative value)
	// for intentional silence.
	Volume float64
	Loop   bool
	// Location and Listener enable spatial attenuation when both are set.
	Location *cp.Vector
	Listener *cp.Vector
}

type channel struct {
	player   Player
	name     string
	priority Priority
	loop     bool
	seq      uint64
}

type Config struct {
	Channels      int
	AudibleRadius float64
}

// Manager schedules sound playback across a bounded pool of channels with
// priority eviction and distance-based volume. All methods are called from
// the frame loop; allocation and eviction resolve synchronously.
type Manager struct {
	cache     *asset.Cache
	newPlayer PlayerFactory

	library       map[string][]byte
	channels      []*channel
	audibleRadius float64
	masterVolume  float64
	nextSeq       uint64
}

func NewManager(cache *asset.Cache, factory PlayerFactory, cfg Config) *Manager {
	if cfg.Channels <= 0 {
		cfg.Channels = defaultChannels
	}
	if cfg.AudibleRadius <= 0 {
		cfg.AudibleRadius = defaultAudibleRadius
	}
	return &Manager{
		cache:         cache,
		newPlayer:     factory,
		library:       make(map[string][]byte),
		channels:      make([]*channel, cfg.Channels),
		audibleRadius: cfg.AudibleRadius,
		masterVolume:  1.0,
	}
}

// LoadSound registers the sound at path under a logical name. A failed
// decode registers nothing; playing an unregistered name is a no-op.
func (m *Manager) LoadSound(name, path string) {
	data, ok := m.cache.GetSound(path)
	if !ok {
		return
	}
	m.library[name] = data
}

// LoadSoundsFromDir registers every .wav and .ogg file directly under dir
// in fsys, each under its filename without the extension.
func (m *Manager) LoadSoundsFromDir(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(entry.Name()))
		if ext != ".wav" && ext != ".ogg" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		m.LoadSound(name, path.Join(dir, entry.Name()))
	}
	return nil
}

// Play starts the named sound and returns the channel it occupies. It
// returns false when the request was dropped: unknown name, out of audible
// range, every channel busy with equal-or-higher priority, or a player
// error. Dropped requests are not queued or retried.
func (m *Manager) Play(name string, opts PlayOptions) (int, bool) {
	data, ok := m.library[name]
	if !ok {
		log.Printf("audio: sound not loaded: %s", name)
		return 0, false
	}

	if opts.Priority == 0 {
		opts.Priority = PriorityNormal
	}
	if opts.Volume == 0 {
		opts.Volume = 1.0
	} else if opts.Volume < 0 {
		opts.Volume = 0
	}

	volume := common.Clamp(opts.Volume, 0, 1) * m.masterVolume
	if opts.Location != nil && opts.Listener != nil {
		att := m.attenuation(opts.Location.Distance(*opts.Listener))
		if att <= 0 {
			return 0, false
		}
		volume *= att
	}

	id, ok := m.allocate(opts.Priority)
	if !ok {
		return 0, false
	}

	player, err := m.newPlayer(data, opts.Loop)
	if err != nil {
		log.Printf("audio: player for %s: %v", name, err)
		return 0, false
	}
	player.SetVolume(volume)
	player.Play()

	m.nextSeq++
	m.channels[id] = &channel{
		player:   player,
		name:     name,
		priority: opts.Priority,
		loop:     opts.Loop,
		seq:      m.nextSeq,
	}
	return id, true
}

// allocate picks the lowest free channel, or evicts the lowest-priority
// occupant (oldest first on ties) when the request strictly outranks it.
func (m *Manager) allocate(priority Priority) (int, bool) {
	free := -1
	victim := -1
	for i, ch := range m.channels {
		if ch == nil || !ch.player.IsPlaying() {
			if free < 0 {
				free = i
			}
			continue
		}
		if victim < 0 ||
			ch.priority < m.channels[victim].priority ||
			(ch.priority == m.channels[victim].priority && ch.seq < m.channels[victim].seq) {
			victim = i
		}
	}
	if free >= 0 {
		m.channels[free] = nil
		return free, true
	}
	if victim >= 0 && priority > m.channels[victim].priority {
		m.channels[victim].player.Pause()
		m.channels[victim] = nil
		return victim, true
	}
	return 0, false
}

func (m *Manager) attenuation(distance float64) float64 {
	if distance >= m.audibleRadius {
		return 0
	}
	return common.Clamp(1.0-distance/m.audibleRadius, 0, 1)
}

// Stop frees the channel immediately regardless of loop state.
func (m *Manager) Stop(id int) {
	if id < 0 || id >= len(m.channels) {
		return
	}
	if ch := m.channels[id]; ch != nil {
		ch.player.Pause()
		m.channels[id] = nil
	}
}

// StopAll frees every occupied channel. Called on screen transitions so no
// stale ambience carries over.
func (m *Manager) StopAll() {
	for i := range m.channels {
		m.Stop(i)
	}
}

// Playing reports whether the channel currently holds a live sound.
func (m *Manager) Playing(id int) bool {
	if id < 0 || id >= len(m.channels) {
		return false
	}
	ch := m.channels[id]
	return ch != nil && ch.player.IsPlaying()
}

// Occupant returns the logical name playing on the channel, if any.
func (m *Manager) Occupant(id int) (string, bool) {
	if !m.Playing(id) {
		return "", false
	}
	return m.channels[id].name, true
}

func (m *Manager) ChannelCount() int {
	return len(m.channels)
}

// SetMasterVolume scales every subsequent play request. Clamped to [0, 1].
func (m *Manager) SetMasterVolume(volume float64) {
	m.masterVolume = common.Clamp(volume, 0, 1)
}

func (m *Manager) MasterVolume() float64 {
	return m.masterVolume
}
