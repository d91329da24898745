// Package script runs tengo behaviours against a controller.
//
// A behaviour script defines act(pad), where pad holds the controller state:
//
//	pad.buttons.dpad_up  // "none", "released", "held" or "pressed"
//	pad.analogs.rt       // 0..1
//	pad.left.x, pad.right.y
//
// act returns a map with any of dx, dy and zoom. log(args...) writes its
// arguments, space separated, to the behaviour's logger.
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/gamekit/input"
	"go.uber.org/zap"
)

const dispatch = `
__result = act(__pad)
`

var ErrNoResult = errors.New("act must return a map")

// Move is what a behaviour asks for in one frame.
type Move struct {
	DX, DY float64
	Zoom   float64
}

type Behavior struct {
	name     string
	compiled *tengo.Compiled
	log      *zap.Logger
}

// New compiles src and checks it with one run against an idle controller.
func New(name string, src []byte, log *zap.Logger) (*Behavior, error) {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Behavior{name: name, log: log}
	if err := b.Reload(src); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Behavior) Name() string {
	return b.name
}

// Reload replaces the program. On error the previous program stays in use.
func (b *Behavior) Reload(src []byte) error {
	compiled, err := compile(src, b.logFunc())
	if err != nil {
		return fmt.Errorf("script: compile %s: %w", b.name, err)
	}
	if _, err := run(compiled, input.NewController()); err != nil {
		return fmt.Errorf("script: check %s: %w", b.name, err)
	}
	b.compiled = compiled
	b.log.Debug("script loaded", zap.String("name", b.name))
	return nil
}

func (b *Behavior) Run(c *input.Controller) (Move, error) {
	m, err := run(b.compiled, c)
	if err != nil {
		return Move{}, fmt.Errorf("script: run %s: %w", b.name, err)
	}
	return m, nil
}

// logFunc is the script's log builtin.
func (b *Behavior) logFunc() *tengo.UserFunction {
	return &tengo.UserFunction{
		Name: "log",
		Value: func(args ...tengo.Object) (tengo.Object, error) {
			parts := make([]string, len(args))
			for i, a := range args {
				parts[i], _ = tengo.ToString(a)
			}
			b.log.Info(strings.Join(parts, " "), zap.String("script", b.name))
			return tengo.UndefinedValue, nil
		},
	}
}

func compile(src []byte, logFn *tengo.UserFunction) (*tengo.Compiled, error) {
	full := make([]byte, 0, len(src)+len(dispatch))
	full = append(full, src...)
	full = append(full, dispatch...)

	s := tengo.NewScript(full)
	_ = s.Add("__pad", map[string]any{})
	_ = s.Add("__result", nil)
	_ = s.Add("log", logFn)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return s.Compile()
}

func run(compiled *tengo.Compiled, c *input.Controller) (Move, error) {
	if err := compiled.Set("__pad", padValue(c)); err != nil {
		return Move{}, err
	}
	if err := compiled.Run(); err != nil {
		return Move{}, err
	}
	res := compiled.Get("__result").Map()
	if res == nil {
		return Move{}, ErrNoResult
	}
	return Move{
		DX:   toFloat(res["dx"]),
		DY:   toFloat(res["dy"]),
		Zoom: toFloat(res["zoom"]),
	}, nil
}

func padValue(c *input.Controller) map[string]any {
	buttons := make(map[string]any, input.ButtonCount)
	analogs := make(map[string]any, input.ButtonCount)
	for b := input.Button(0); b < input.ButtonCount; b++ {
		buttons[b.Key()] = c.Button(b).String()
		analogs[b.Key()] = c.Analog(b)
	}
	l, r := c.AxisLeft(), c.AxisRight()
	return map[string]any{
		"buttons": buttons,
		"analogs": analogs,
		"left":    map[string]any{"x": l.X, "y": l.Y},
		"right":   map[string]any{"x": r.X, "y": r.Y},
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}
