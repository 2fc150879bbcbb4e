package asset

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	placeholderSize = 32
	fontDPI         = 72
)

// Loader decodes raw media into engine resources. It is the boundary to
// whatever actually reads and parses files; the cache never touches the
// filesystem itself.
type Loader interface {
	DecodeImage(path string) (*ebiten.Image, error)
	// DecodeSound returns decoded PCM bytes ready for playback.
	DecodeSound(path string) ([]byte, error)
	DecodeFont(path string) (*opentype.Font, error)
}

type faceKey struct {
	path string
	size float64
}

type soundEntry struct {
	data []byte
	ok   bool
}

// Cache memoizes decoded textures, sounds, and font faces by path. Each
// key is decoded at most once; every caller gets the same resource. Lookups
// never fail: a missing texture resolves to a magenta placeholder, a missing
// sound to an absent result, and a missing font to a basic built-in face.
type Cache struct {
	loader Loader

	textures map[string]*ebiten.Image
	sounds   map[string]soundEntry
	fonts    map[string]*opentype.Font
	faces    map[faceKey]font.Face

	placeholder  *ebiten.Image
	fallbackFont *opentype.Font
}

func NewCache(loader Loader) *Cache {
	return &Cache{
		loader:   loader,
		textures: make(map[string]*ebiten.Image),
		sounds:   make(map[string]soundEntry),
		fonts:    make(map[string]*opentype.Font),
		faces:    make(map[faceKey]font.Face),
	}
}

// GetTexture returns the texture at path, decoding it on first request.
// It never returns nil: a failed decode yields a shared magenta placeholder
// so rendering code doesn't have to nil-check.
func (c *Cache) GetTexture(path string) *ebiten.Image {
	if img, ok := c.textures[path]; ok {
		return img
	}
	img, err := c.loader.DecodeImage(path)
	if err != nil {
		log.Printf("asset: texture %s: %v", path, err)
		img = c.placeholderTexture()
	}
	c.textures[path] = img
	return img
}

// GetSound returns decoded sound data for path. A failed decode is
// remembered and reported as absent; callers treat "no sound" as a no-op.
func (c *Cache) GetSound(path string) ([]byte, bool) {
	if entry, ok := c.sounds[path]; ok {
		return entry.data, entry.ok
	}
	data, err := c.loader.DecodeSound(path)
	if err != nil {
		log.Printf("asset: sound %s: %v", path, err)
		c.sounds[path] = soundEntry{}
		return nil, false
	}
	c.sounds[path] = soundEntry{data: data, ok: true}
	return data, true
}

// GetFont returns a face for the font at path rendered at size points.
// Faces are cached per (path, size); the underlying font is parsed once.
// A failed parse yields a face from the bundled fallback font at the same
// requested size.
func (c *Cache) GetFont(path string, size float64) font.Face {
	key := faceKey{path: path, size: size}
	if face, ok := c.faces[key]; ok {
		return face
	}

	fnt, parsed := c.fonts[path]
	if !parsed {
		var err error
		fnt, err = c.loader.DecodeFont(path)
		if err != nil {
			log.Printf("asset: font %s: %v", path, err)
			fnt = nil
		}
		c.fonts[path] = fnt
	}

	var face font.Face
	if fnt == nil {
		face = c.fallbackFace(size)
	} else {
		var err error
		face, err = opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    size,
			DPI:     fontDPI,
			Hinting: font.HintingFull,
		})
		if err != nil {
			log.Printf("asset: font face %s@%g: %v", path, size, err)
			face = c.fallbackFace(size)
		}
	}
	c.faces[key] = face
	return face
}

// fallbackFace builds a face from the bundled Go Regular font at the
// requested size, so text keeps the caller's scale even when the real font
// is missing. The fixed-size basic face is the last resort only.
func (c *Cache) fallbackFace(size float64) font.Face {
	if c.fallbackFont == nil {
		fnt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			log.Printf("asset: fallback font: %v", err)
			return basicfont.Face7x13
		}
		c.fallbackFont = fnt
	}
	face, err := opentype.NewFace(c.fallbackFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("asset: fallback face @%g: %v", size, err)
		return basicfont.Face7x13
	}
	return face
}

// Invalidate drops every cached resource derived from path so the next
// request decodes it again. Used by the hot-reload watcher.
func (c *Cache) Invalidate(path string) {
	delete(c.textures, path)
	delete(c.sounds, path)
	delete(c.fonts, path)
	for key := range c.faces {
		if key.path == path {
			delete(c.faces, key)
		}
	}
}

// Clear drops every cached resource. Intended for hard transitions such as
// level changes; normal operation never requires it.
func (c *Cache) Clear() {
	c.textures = make(map[string]*ebiten.Image)
	c.sounds = make(map[string]soundEntry)
	c.fonts = make(map[string]*opentype.Font)
	c.faces = make(map[faceKey]font.Face)
}

func (c *Cache) placeholderTexture() *ebiten.Image {
	if c.placeholder == nil {
		c.placeholder = ebiten.NewImage(placeholderSize, placeholderSize)
		c.placeholder.Fill(color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff})
	}
	return c.placeholder
}
