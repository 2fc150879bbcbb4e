package configs

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadGameConfig(t *testing.T) {
	cfg, err := LoadGameConfig()
	if err != nil {
		t.Fatalf("LoadGameConfig: %v", err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		t.Fatalf("window size not set: %+v", cfg.Window)
	}
	if cfg.Audio.Channels <= 0 {
		t.Fatalf("audio channels not set: %+v", cfg.Audio)
	}
}

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if spec.Sheet == "" || spec.FrameW <= 0 || spec.FrameH <= 0 {
		t.Fatalf("sheet not configured: %+v", spec)
	}
	if _, ok := spec.Animations["run"]; !ok {
		t.Fatalf("player spec should define a run animation")
	}
	if spec.Hitbox.Align != "bottom" {
		t.Fatalf("player hitbox align = %q, want bottom", spec.Hitbox.Align)
	}
}

func TestLoadObstaclesSpec(t *testing.T) {
	spec, err := LoadObstaclesSpec()
	if err != nil {
		t.Fatalf("LoadObstaclesSpec: %v", err)
	}
	if len(spec.Obstacles) == 0 {
		t.Fatalf("no obstacles configured")
	}
	for _, o := range spec.Obstacles {
		if o.Name == "" || o.Sheet == "" || len(o.Animations) == 0 {
			t.Fatalf("incomplete obstacle spec: %+v", o)
		}
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#10a0ff"`, color.NRGBA{R: 0x10, G: 0xa0, B: 0xff, A: 0xff}, false},
		{"rgba", `"#10a0ff80"`, color.NRGBA{R: 0x10, G: 0xa0, B: 0xff, A: 0x80}, false},
		{"bad_length", `"#fff"`, color.NRGBA{}, true},
		{"bad_hex", `"#zzzzzz"`, color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.input), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", c.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("color = %+v, want %+v", got.Color, c.want)
			}
		})
	}
}
