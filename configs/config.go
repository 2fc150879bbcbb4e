package configs

import (
	"embed"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var configsFS embed.FS

// Load reads a config file, preferring an on-disk copy under configs/ so
// tuning doesn't require a rebuild, then the embedded one.
func Load(name string) ([]byte, error) {
	clean := cleanConfigPath(name)
	if data, err := os.ReadFile(filepath.Join("configs", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return configsFS.ReadFile(clean)
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("configs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("configs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type GameConfig struct {
	Window WindowConfig `yaml:"window"`
	Audio  AudioConfig  `yaml:"audio"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type AudioConfig struct {
	Channels      int     `yaml:"channels"`
	AudibleRadius float64 `yaml:"audible_radius"`
	MasterVolume  float64 `yaml:"master_volume"`
}

func LoadGameConfig() (*GameConfig, error) {
	cfg, err := LoadSpec[GameConfig]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AnimationDef struct {
	Row           int     `yaml:"row"`
	FrameCount    int     `yaml:"frame_count"`
	FrameDuration float64 `yaml:"frame_duration"`
	Loop          bool    `yaml:"loop"`
}

type HitboxSpec struct {
	ReduceW float64 `yaml:"reduce_w"`
	ReduceH float64 `yaml:"reduce_h"`
	Align   string  `yaml:"align"`
}

type PlayerSpec struct {
	Name       string                  `yaml:"name"`
	Sheet      string                  `yaml:"sheet"`
	FrameW     int                     `yaml:"frame_w"`
	FrameH     int                     `yaml:"frame_h"`
	Animations map[string]AnimationDef `yaml:"animations"`
	Hitbox     HitboxSpec              `yaml:"hitbox"`
	JumpSpeed  float64                 `yaml:"jump_speed"`
	Gravity    float64                 `yaml:"gravity"`
	GroundY    float64                 `yaml:"ground_y"`
	Sounds     map[string]string       `yaml:"sounds"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ObstacleSpec struct {
	Name       string                  `yaml:"name"`
	Sheet      string                  `yaml:"sheet"`
	FrameW     int                     `yaml:"frame_w"`
	FrameH     int                     `yaml:"frame_h"`
	Animations map[string]AnimationDef `yaml:"animations"`
	Hitbox     HitboxSpec              `yaml:"hitbox"`
	Y          float64                 `yaml:"y"`
	Speed      float64                 `yaml:"speed"`
	// FlipX mirrors the sprite so right-facing art faces its direction
	// of travel.
	FlipX bool `yaml:"flip_x"`
}

type ObstaclesSpec struct {
	SpawnIntervalMin float64        `yaml:"spawn_interval_min"`
	SpawnIntervalMax float64        `yaml:"spawn_interval_max"`
	Obstacles        []ObstacleSpec `yaml:"obstacles"`
}

func LoadObstaclesSpec() (*ObstaclesSpec, error) {
	spec, err := LoadSpec[ObstaclesSpec]("obstacles.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type MenuSpec struct {
	Title      string     `yaml:"title"`
	Background *YAMLColor `yaml:"background"`
}

func LoadMenuSpec() (*MenuSpec, error) {
	spec, err := LoadSpec[MenuSpec]("menu.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func cleanConfigPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "configs/") {
		return strings.TrimPrefix(s, "configs/")
	}
	return s
}
