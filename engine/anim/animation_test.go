package anim

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAnimationLoopWrap(t *testing.T) {
	cases := []struct {
		name      string
		updates   []float64
		wantIndex int
	}{
		{"start", nil, 0},
		{"mid_frame", []float64{0.05}, 0},
		{"second_frame", []float64{0.1}, 1},
		{"wrap_exact", []float64{0.35}, 0},
		{"wrap_split", []float64{0.1, 0.1, 0.1, 0.05}, 0},
		{"two_cycles", []float64{0.65}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAnimation(make([]*ebiten.Image, 3), 0.1, true)
			for _, dt := range c.updates {
				a.Update(dt)
			}
			if got := a.Index(); got != c.wantIndex {
				t.Fatalf("Index = %d, want %d", got, c.wantIndex)
			}
			if a.Finished() {
				t.Fatalf("looping animation must never finish")
			}
		})
	}
}

func TestAnimationClampAndFinish(t *testing.T) {
	a := NewAnimation(make([]*ebiten.Image, 3), 0.1, false)

	a.Update(0.25)
	if a.Finished() {
		t.Fatalf("animation should not be finished at 0.25s of 0.3s")
	}
	if got := a.Index(); got != 2 {
		t.Fatalf("Index = %d, want 2", got)
	}

	a.Update(0.2)
	if !a.Finished() {
		t.Fatalf("animation should be finished past 0.3s")
	}
	if got := a.Index(); got != 2 {
		t.Fatalf("finished animation should clamp at last frame, got %d", got)
	}

	// Finished state is queryable, not auto-reset.
	a.Update(1.0)
	if !a.Finished() {
		t.Fatalf("finished state should persist")
	}

	a.Reset()
	if a.Finished() || a.Index() != 0 {
		t.Fatalf("Reset should rewind to frame 0 and clear finished")
	}
}

func TestAnimatorSet(t *testing.T) {
	walk := NewAnimation(make([]*ebiten.Image, 4), 0.1, true)
	jump := NewAnimation(make([]*ebiten.Image, 2), 0.1, false)

	an := NewAnimator()
	an.Add("walk", walk)
	an.Add("jump", jump)

	if an.Current() != "walk" {
		t.Fatalf("first added animation should be current, got %q", an.Current())
	}

	an.Update(0.15)
	if walk.Index() != 1 {
		t.Fatalf("walk should have advanced, index = %d", walk.Index())
	}

	// Re-asserting the current name must not restart it.
	an.Set("walk")
	if walk.Index() != 1 {
		t.Fatalf("Set with same name should be a no-op, index = %d", walk.Index())
	}

	// Switching resets the newly selected animation.
	jump.Update(0.15)
	an.Set("jump")
	if jump.Index() != 0 {
		t.Fatalf("Set with new name should reset its clock, index = %d", jump.Index())
	}
}

func TestAnimatorFlipXPersistsAcrossSet(t *testing.T) {
	an := NewAnimator()
	an.Add("walk", NewAnimation(make([]*ebiten.Image, 2), 0.1, true))
	an.Add("jump", NewAnimation(make([]*ebiten.Image, 2), 0.1, false))

	an.FlipX = true
	an.Set("jump")
	if !an.FlipX {
		t.Fatalf("facing should survive animation changes")
	}
}

func TestAnimatorUnknownNamePanics(t *testing.T) {
	an := NewAnimator()
	an.Add("idle", NewAnimation(make([]*ebiten.Image, 1), 0.1, true))

	defer func() {
		if recover() == nil {
			t.Fatalf("Set with unregistered name should panic")
		}
	}()
	an.Set("does-not-exist")
}

func TestPlaceholderFrames(t *testing.T) {
	frames := PlaceholderFrames(16, 24, 5)
	if len(frames) != 5 {
		t.Fatalf("got %d frames, want 5", len(frames))
	}
	for i, f := range frames {
		if f == nil {
			t.Fatalf("frame %d is nil", i)
		}
		if f.Bounds().Dx() != 16 || f.Bounds().Dy() != 24 {
			t.Fatalf("frame %d size = %dx%d, want 16x24", i, f.Bounds().Dx(), f.Bounds().Dy())
		}
	}
}

func TestSheetFramesFallsBackToPlaceholder(t *testing.T) {
	// An 8x8 sheet cannot supply three 16x16 frames.
	sheet := ebiten.NewImage(8, 8)
	frames := SheetFrames(sheet, 16, 16, 0, 3)
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}
	for i, f := range frames {
		if f.Bounds().Dx() != 16 || f.Bounds().Dy() != 16 {
			t.Fatalf("frame %d should match requested dimensions", i)
		}
	}
}

func TestSheetFramesSlices(t *testing.T) {
	sheet := ebiten.NewImage(64, 32) // 4 cols x 2 rows of 16x16
	frames := SheetFrames(sheet, 16, 16, 1, 4)
	if len(frames) != 4 {
		t.Fatalf("got %d frames, want 4", len(frames))
	}
	first := frames[0].Bounds()
	if first.Min.X != 0 || first.Min.Y != 16 {
		t.Fatalf("row 1 first frame at (%d, %d), want (0, 16)", first.Min.X, first.Min.Y)
	}
}
