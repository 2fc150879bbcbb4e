package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"golang.org/x/image/font/opentype"

	"github.com/hollowmoon/runner/engine/audio"
)

//go:embed graphics audio
var assetsFS embed.FS

const SampleRate = 44100

var audioContext = ebaudio.NewContext(SampleRate)

// FS exposes the embedded asset tree, e.g. for bulk sound registration.
func FS() fs.FS {
	return assetsFS
}

// Loader is the media-I/O collaborator behind the resource cache: it reads
// asset files (disk override first, then the embedded tree) and decodes
// them into engine resources.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) DecodeImage(path string) (*ebiten.Image, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// DecodeSound decodes a .wav or .ogg file into raw PCM at the context
// sample rate.
func (l *Loader) DecodeSound(path string) ([]byte, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(b))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(SampleRate, bytes.NewReader(b))
	default:
		return nil, fmt.Errorf("unsupported sound format %q", path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode sound %q: %w", path, err)
	}
	return io.ReadAll(stream)
}

func (l *Loader) DecodeFont(path string) (*opentype.Font, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	fnt, err := opentype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", path, err)
	}
	return fnt, nil
}

// NewSoundPlayer builds a playback player for decoded PCM data. It is the
// PlayerFactory handed to the audio manager.
func NewSoundPlayer(data []byte, loop bool) (audio.Player, error) {
	var src io.Reader = bytes.NewReader(data)
	if loop {
		src = ebaudio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	}
	player, err := audioContext.NewPlayer(src)
	if err != nil {
		return nil, err
	}
	return player, nil
}

// readFile resolves path against the working directory first so edited
// assets win during development, then falls back to the embedded copy.
func readFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if b, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return b, nil
	}
	return assetsFS.ReadFile(clean)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
