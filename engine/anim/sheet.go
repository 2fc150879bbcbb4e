package anim

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowmoon/runner/engine/asset"
)

// SheetFrames slices count frames of frameW x frameH pixels out of a sprite
// sheet, reading left-to-right starting at the given row and continuing onto
// subsequent rows. If the sheet cannot supply the requested frames it
// returns a deterministic placeholder set of matching dimensions instead,
// so callers always get drawable frames.
func SheetFrames(sheet *ebiten.Image, frameW, frameH, row, count int) []*ebiten.Image {
	if sheet == nil || frameW <= 0 || frameH <= 0 || count <= 0 {
		return PlaceholderFrames(frameW, frameH, count)
	}
	bounds := sheet.Bounds()
	cols := bounds.Dx() / frameW
	rows := bounds.Dy() / frameH
	if cols <= 0 || row < 0 || row*cols+count > cols*rows {
		log.Printf("anim: sheet %dx%d cannot supply %d frames of %dx%d from row %d",
			bounds.Dx(), bounds.Dy(), count, frameW, frameH, row)
		return PlaceholderFrames(frameW, frameH, count)
	}

	frames := make([]*ebiten.Image, count)
	start := row * cols
	for i := 0; i < count; i++ {
		idx := start + i
		sx := bounds.Min.X + (idx%cols)*frameW
		sy := bounds.Min.Y + (idx/cols)*frameH
		r := image.Rect(sx, sy, sx+frameW, sy+frameH)
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}
	return frames
}

// LoadSheet fetches the sheet through the cache and slices it. A missing
// sheet resolves to placeholder frames through the cache's fallback texture.
func LoadSheet(cache *asset.Cache, path string, frameW, frameH, row, count int) []*ebiten.Image {
	return SheetFrames(cache.GetTexture(path), frameW, frameH, row, count)
}

// PlaceholderFrames builds count solid magenta frames of the requested size.
func PlaceholderFrames(frameW, frameH, count int) []*ebiten.Image {
	if frameW <= 0 {
		frameW = 32
	}
	if frameH <= 0 {
		frameH = 32
	}
	if count <= 0 {
		count = 1
	}
	frame := ebiten.NewImage(frameW, frameH)
	frame.Fill(color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff})
	frames := make([]*ebiten.Image, count)
	for i := range frames {
		frames[i] = frame
	}
	return frames
}
