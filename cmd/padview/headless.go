package main

import (
	"context"
	"errors"
	"io"
	"math"

	"github.com/milk9111/gamekit/input"
	"github.com/milk9111/gamekit/loop"
	"go.uber.org/zap"
)

// synthPads stands in for real gamepads when there is no window: a Switch Pro
// controller in slot 0 and a generic pad in slot 1, cycling through buttons
// and circling their left sticks.
type synthPads struct {
	frame int64
}

var synthCycle = []int{0, 1, 2, 3, 4, 5, 12, 13, 14, 15}

const synthHold = 15

func (s *synthPads) Gamepads() []*input.Gamepad {
	s.frame++
	t := float64(s.frame) * 0.05
	return []*input.Gamepad{
		s.pad("Pro Controller (STANDARD GAMEPAD Vendor: 057e Product: 2009)", 18, t),
		s.pad("Xbox Wireless Controller (Vendor: 045e Product: 0b13)", 17, -t),
		nil,
		nil,
	}
}

func (s *synthPads) pad(id string, buttons int, t float64) *input.Gamepad {
	held := synthCycle[int(s.frame/synthHold)%len(synthCycle)]
	p := &input.Gamepad{
		ID:        id,
		Timestamp: s.frame,
		Buttons:   make([]input.GamepadButton, buttons),
		Axes:      []float64{math.Cos(t), math.Sin(t), 0, 0},
	}
	p.Buttons[held] = input.GamepadButton{Pressed: true, Value: 1}
	return p
}

// headless runs the app on a loop.Runner with synthetic gamepads.
type headless struct {
	a      *app
	frames int
	drawn  int
	cancel context.CancelFunc
}

func (h *headless) Startup() { h.a.Startup() }

func (h *headless) Act() {
	h.a.in.Act()
	h.a.Act()
	h.a.in.Reset()
}

func (h *headless) Draw() {
	h.drawn++
	if h.drawn%60 == 0 {
		h.a.log.Debug("frame",
			zap.Int("drawn", h.drawn),
			zap.Int("acts", h.a.frames),
			zap.Float64("ball_x", h.a.ball.X),
			zap.Float64("ball_y", h.a.ball.Y),
			zap.String("p1", controllerLine(0, h.a.in.Player1())))
	}
	if h.frames > 0 && h.drawn >= h.frames {
		h.cancel()
	}
}

func runHeadless(ctx context.Context, a *app, frames int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.in.SetGamepadSource(&synthPads{})
	h := &headless{a: a, frames: frames, cancel: cancel}
	r := loop.NewRunner(h, a.cfg.FramesPerSecond, a.cfg.MaxLoops, a.log.Named("loop"))

	err := r.Start(ctx)
	if ctx.Err() == context.Canceled && h.frames > 0 && h.drawn >= h.frames {
		err = nil
	}
	a.log.Info("headless run finished",
		zap.Int("frames", h.drawn),
		zap.Int("skipped", r.Skipped()))
	return err
}

// headlessSnapshot runs headless and writes the final controller snapshot to w
// as YAML. Nothing else goes to w.
func headlessSnapshot(ctx context.Context, a *app, frames int, w io.Writer) error {
	if err := runHeadless(ctx, a, frames); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	out, err := a.snapshotYAML()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
