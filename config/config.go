// Package config loads gamekit settings from YAML, with environment
// overrides, and turns them into input bindings and layouts.
package config

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/milk9111/gamekit/camera"
	"github.com/milk9111/gamekit/input"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. GAMEKIT_FPS.
const EnvPrefix = "GAMEKIT_"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	FramesPerSecond    int            `yaml:"frames_per_second"`
	MaxLoops           int            `yaml:"max_loops"`
	KeyboardController int            `yaml:"keyboard_controller"`
	MouseController    int            `yaml:"mouse_controller"`
	Camera             CameraConfig   `yaml:"camera"`
	Keyboard           KeyboardConfig `yaml:"keyboard"`
	Mouse              map[int]string `yaml:"mouse"`
	Gamepads           []LayoutConfig `yaml:"gamepads"`
	Log                LogConfig      `yaml:"log"`
	Script             string         `yaml:"script"`
}

type CameraConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Scale       float64 `yaml:"scale"`
	Smooth      float64 `yaml:"smooth"`
	WorldWidth  float64 `yaml:"world_width"`
	WorldHeight float64 `yaml:"world_height"`
}

// KeyboardConfig binds key names to button names. Up, Down, Left and Right
// drive the left stick.
type KeyboardConfig struct {
	Up      string            `yaml:"up"`
	Down    string            `yaml:"down"`
	Left    string            `yaml:"left"`
	Right   string            `yaml:"right"`
	Buttons map[string]string `yaml:"buttons"`
}

// LayoutConfig is an extra gamepad layout: raw button index to button name.
type LayoutConfig struct {
	Name    string         `yaml:"name"`
	Match   []string       `yaml:"match"`
	Buttons map[int]string `yaml:"buttons"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// envOverrides lists the settings that can come from the environment.
type envOverrides struct {
	FramesPerSecond    int     `env:"FPS"`
	MaxLoops           int     `env:"MAX_LOOPS"`
	KeyboardController int     `env:"KEYBOARD_CONTROLLER"`
	MouseController    int     `env:"MOUSE_CONTROLLER"`
	CameraScale        float64 `env:"CAMERA_SCALE"`
	CameraSmooth       float64 `env:"CAMERA_SMOOTH"`
	LogLevel           string  `env:"LOG_LEVEL"`
	LogDevelopment     bool    `env:"LOG_DEVELOPMENT"`
	Script             string  `env:"SCRIPT"`
}

// Default returns the built-in settings.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal default.yaml: %w", err)
	}
	return &cfg, nil
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path loads the defaults only.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
		cfg.merge(&file)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge copies every setting that o sets. Maps and lists replace the defaults
// rather than adding to them.
func (c *Config) merge(o *Config) {
	if o.FramesPerSecond != 0 {
		c.FramesPerSecond = o.FramesPerSecond
	}
	if o.MaxLoops != 0 {
		c.MaxLoops = o.MaxLoops
	}
	if o.KeyboardController != 0 {
		c.KeyboardController = o.KeyboardController
	}
	if o.MouseController != 0 {
		c.MouseController = o.MouseController
	}

	setFloat(&c.Camera.Width, o.Camera.Width)
	setFloat(&c.Camera.Height, o.Camera.Height)
	setFloat(&c.Camera.Scale, o.Camera.Scale)
	setFloat(&c.Camera.Smooth, o.Camera.Smooth)
	setFloat(&c.Camera.WorldWidth, o.Camera.WorldWidth)
	setFloat(&c.Camera.WorldHeight, o.Camera.WorldHeight)

	setString(&c.Keyboard.Up, o.Keyboard.Up)
	setString(&c.Keyboard.Down, o.Keyboard.Down)
	setString(&c.Keyboard.Left, o.Keyboard.Left)
	setString(&c.Keyboard.Right, o.Keyboard.Right)
	if o.Keyboard.Buttons != nil {
		c.Keyboard.Buttons = maps.Clone(o.Keyboard.Buttons)
	}
	if o.Mouse != nil {
		c.Mouse = maps.Clone(o.Mouse)
	}
	if o.Gamepads != nil {
		c.Gamepads = o.Gamepads
	}

	setString(&c.Log.Level, o.Log.Level)
	if o.Log.Development {
		c.Log.Development = true
	}
	setString(&c.Script, o.Script)
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func (c *Config) applyEnv() error {
	o := envOverrides{
		FramesPerSecond:    c.FramesPerSecond,
		MaxLoops:           c.MaxLoops,
		KeyboardController: c.KeyboardController,
		MouseController:    c.MouseController,
		CameraScale:        c.Camera.Scale,
		CameraSmooth:       c.Camera.Smooth,
		LogLevel:           c.Log.Level,
		LogDevelopment:     c.Log.Development,
		Script:             c.Script,
	}
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}

	c.FramesPerSecond = o.FramesPerSecond
	c.MaxLoops = o.MaxLoops
	c.KeyboardController = o.KeyboardController
	c.MouseController = o.MouseController
	c.Camera.Scale = o.CameraScale
	c.Camera.Smooth = o.CameraSmooth
	c.Log.Level = o.LogLevel
	c.Log.Development = o.LogDevelopment
	c.Script = o.Script
	return nil
}

// Validate reports every problem found, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: %s: %w", fmt.Sprintf(format, args...), ErrInvalid))
	}

	if c.FramesPerSecond <= 0 {
		bad("frames_per_second %d must be positive", c.FramesPerSecond)
	}
	if c.MaxLoops <= 0 {
		bad("max_loops %d must be positive", c.MaxLoops)
	}
	if c.KeyboardController < 0 || c.KeyboardController >= input.ControllerCount {
		bad("keyboard_controller %d out of range", c.KeyboardController)
	}
	if c.MouseController < 0 || c.MouseController >= input.ControllerCount {
		bad("mouse_controller %d out of range", c.MouseController)
	}
	if c.Camera.Scale <= 0 {
		bad("camera.scale %g must be positive", c.Camera.Scale)
	}
	if c.Camera.Smooth < 0 || c.Camera.Smooth > 1 {
		bad("camera.smooth %g must be within [0, 1]", c.Camera.Smooth)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		bad("log.level %q", c.Log.Level)
	}

	if _, err := c.KeyBindings(); err != nil {
		bad("keyboard: %v", err)
	}
	if _, err := c.MouseBindings(); err != nil {
		bad("mouse: %v", err)
	}
	if _, err := c.Layouts(); err != nil {
		bad("gamepads: %v", err)
	}

	return errors.Join(errs...)
}

// KeyBindings resolves the keyboard section.
func (c *Config) KeyBindings() (*input.KeyBindings, error) {
	b := &input.KeyBindings{Buttons: make(map[input.KeyCode]input.Button, len(c.Keyboard.Buttons))}

	dirs := []struct {
		name string
		dst  *input.KeyCode
	}{
		{c.Keyboard.Up, &b.Up},
		{c.Keyboard.Down, &b.Down},
		{c.Keyboard.Left, &b.Left},
		{c.Keyboard.Right, &b.Right},
	}
	for _, d := range dirs {
		if d.name == "" {
			continue
		}
		code, err := input.ParseKeyCode(d.name)
		if err != nil {
			return nil, err
		}
		*d.dst = code
	}

	for key, name := range c.Keyboard.Buttons {
		code, err := input.ParseKeyCode(key)
		if err != nil {
			return nil, err
		}
		btn, err := input.ParseButton(name)
		if err != nil {
			return nil, err
		}
		b.Buttons[code] = btn
	}
	return b, nil
}

// MouseBindings resolves the mouse section.
func (c *Config) MouseBindings() (map[int]input.Button, error) {
	out := make(map[int]input.Button, len(c.Mouse))
	for idx, name := range c.Mouse {
		if idx < 0 || idx >= input.MouseButtonCount {
			return nil, fmt.Errorf("mouse button %d out of range", idx)
		}
		btn, err := input.ParseButton(name)
		if err != nil {
			return nil, err
		}
		out[idx] = btn
	}
	return out, nil
}

// Layouts resolves the extra gamepad layouts, in file order.
func (c *Config) Layouts() ([]input.Layout, error) {
	out := make([]input.Layout, 0, len(c.Gamepads))
	for _, lc := range c.Gamepads {
		if lc.Name == "" {
			return nil, errors.New("layout without a name")
		}
		l := input.Layout{Name: lc.Name, Match: lc.Match}
		for idx, name := range lc.Buttons {
			if idx < 0 {
				return nil, fmt.Errorf("layout %s: button index %d", lc.Name, idx)
			}
			btn, err := input.ParseButton(name)
			if err != nil {
				return nil, fmt.Errorf("layout %s: %w", lc.Name, err)
			}
			l.Buttons = append(l.Buttons, input.ButtonMapping{Index: idx, Button: btn})
		}
		slices.SortFunc(l.Buttons, func(a, b input.ButtonMapping) int {
			return cmp.Compare(a.Index, b.Index)
		})
		out = append(out, l)
	}
	return out, nil
}

// Apply pushes the settings into in and cam. Managers that are not the
// defaults keep their own bindings.
func (c *Config) Apply(in *input.Input, cam *camera.Camera) error {
	keys, err := c.KeyBindings()
	if err != nil {
		return fmt.Errorf("config: keyboard: %w", err)
	}
	mouse, err := c.MouseBindings()
	if err != nil {
		return fmt.Errorf("config: mouse: %w", err)
	}
	layouts, err := c.Layouts()
	if err != nil {
		return fmt.Errorf("config: gamepads: %w", err)
	}

	if in != nil {
		in.KeyboardController = c.KeyboardController
		in.MouseController = c.MouseController
		if m, ok := in.Keyboard.(*input.DefaultKeyboardManager); ok {
			m.SetBindings(keys)
		}
		if m, ok := in.Mouse.(*input.DefaultMouseManager); ok {
			m.SetBindings(mouse)
			if cam != nil {
				m.SetCamera(cam)
			}
		}
		if m, ok := in.Gamepad.(*input.DefaultGamepadManager); ok {
			m.SetLayouts(layouts...)
		}
	}

	if cam != nil {
		cam.SetWidth(c.Camera.Width)
		cam.SetHeight(c.Camera.Height)
		cam.SetScale(c.Camera.Scale)
		cam.SetSmooth(c.Camera.Smooth)
		cam.SetWorldBounds(c.Camera.WorldWidth, c.Camera.WorldHeight)
	}
	return nil
}
