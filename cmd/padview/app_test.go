package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/gamekit/config"
	"github.com/milk9111/gamekit/input"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type memClipboard struct{ data []byte }

func (m *memClipboard) Write(data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}

func newTestApp(t *testing.T, cfg *config.Config) *app {
	t.Helper()
	if cfg == nil {
		var err error
		cfg, err = config.Default()
		require.NoError(t, err)
	}
	a, err := newApp("", cfg, zap.NewNop())
	require.NoError(t, err)
	return a
}

func noScript(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Script = ""
	return cfg
}

func TestNewAppStartsCentered(t *testing.T) {
	a := newTestApp(t, nil)
	require.Equal(t, 2000.0, a.ball.X)
	require.Equal(t, 1500.0, a.ball.Y)
	require.NotNil(t, a.behavior)

	a.Startup()
	require.Equal(t, a.ball, a.cam.Vector2)
}

func TestDefaultMove(t *testing.T) {
	cases := []struct {
		name   string
		setup  func(c *input.Controller)
		dx, dy float64
		zoom   float64
	}{
		{"idle", func(c *input.Controller) {}, 0, 0, 0},
		{"dpad_right", func(c *input.Controller) { c.Press(input.ButtonDPadRight) }, ballSpeed, 0, 0},
		{"stick_half", func(c *input.Controller) { c.AxisLeft().Set(0, 0.5) }, 0, ballSpeed / 2, 0},
		{"diagonal_capped", func(c *input.Controller) { c.AxisLeft().Set(3, 4) }, ballSpeed * 0.6, ballSpeed * 0.8, 0},
		{"zoom_in", func(c *input.Controller) { c.Press(input.ButtonRB) }, 0, 0, 0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := input.NewController()
			tc.setup(c)
			m := defaultMove(c)
			require.InDelta(t, tc.dx, m.DX, 1e-9)
			require.InDelta(t, tc.dy, m.DY, 1e-9)
			require.InDelta(t, tc.zoom, m.Zoom, 1e-9)
		})
	}
}

func TestActMovesBallAndCamera(t *testing.T) {
	a := newTestApp(t, noScript(t))
	a.Startup()
	start := a.ball

	a.in.OnKeyDown(input.KeyEvent{Code: input.KeyCode('D')})
	a.Act()
	a.in.Reset()
	require.InDelta(t, start.X+ballSpeed, a.ball.X, 1e-9)

	// scrolling down zooms out
	a.in.OnMouseWheel(input.WheelEvent{DeltaY: 5})
	a.Act()
	require.InDelta(t, 0.5, a.cam.Scale(), 1e-9)
}

func TestActClampsToWorld(t *testing.T) {
	a := newTestApp(t, noScript(t))
	a.ball.Set(ballRadius, ballRadius)
	a.in.Player1().AxisLeft().Set(-1, -1)
	a.Act()
	require.Equal(t, ballRadius, a.ball.X)
	require.Equal(t, ballRadius, a.ball.Y)
}

func TestPauseToggle(t *testing.T) {
	a := newTestApp(t, noScript(t))
	a.in.Controller(2).Press(input.ButtonStart)
	a.Act()
	require.True(t, a.paused)

	// paused: input does not move the ball
	a.in.Reset()
	before := a.ball
	a.in.Player1().AxisLeft().Set(1, 0)
	a.Act()
	require.Equal(t, before, a.ball)

	a.in.Controller(2).Release(input.ButtonStart)
	a.in.Reset()
	a.in.Controller(2).Press(input.ButtonStart)
	a.Act()
	require.False(t, a.paused)
}

func TestScreenShotCopiesSnapshot(t *testing.T) {
	a := newTestApp(t, noScript(t))
	clip := &memClipboard{}
	a.clip = clip

	a.in.Player2().Press(input.ButtonA)
	a.in.Player1().Press(input.ButtonScreenShot)
	a.Act()
	require.NotEmpty(t, clip.data)

	var got map[string]input.Snapshot
	require.NoError(t, yaml.Unmarshal(clip.data, &got))
	require.Len(t, got, input.ControllerCount)
	require.Equal(t, "pressed", got["player2"].Buttons["A"])
	require.Equal(t, "pressed", got["player1"].Buttons["ScreenShot"])
	require.Empty(t, got["player3"].Buttons)
}

func TestPauseActions(t *testing.T) {
	a := newTestApp(t, noScript(t))
	clip := &memClipboard{}
	a.clip = clip
	quit := false
	a.quit = func() { quit = true }

	actions := a.pauseActions()
	labels := []string{}
	for _, act := range actions {
		labels = append(labels, act.label)
	}
	// no config file, so nothing to reload
	require.Equal(t, []string{"Resume", "Copy controller state", "Quit"}, labels)

	a.paused = true
	actions[0].run()
	require.False(t, a.paused)
	actions[1].run()
	require.NotEmpty(t, clip.data)
	actions[2].run()
	require.True(t, quit)

	a.cfgPath = "padview.yaml"
	require.Equal(t, "Reload config", a.pauseActions()[2].label)
}

func TestControllerLine(t *testing.T) {
	c := input.NewController()
	c.Press(input.ButtonB)
	c.SetButton(input.ButtonA, input.Held)
	c.AxisLeft().Set(0.5, -1)
	require.Equal(t, "P2 A:held B:pressed L(0.50,-1.00) R(0.00,0.00)", controllerLine(1, c))
}

func TestReloadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "padview.yaml")
	require.NoError(t, os.WriteFile(path, []byte("script: \"\"\nmouse_controller: 1\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	a, err := newApp(path, cfg, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 1, a.in.MouseController)
	require.Equal(t, []string{path}, a.watchFiles())

	require.NoError(t, os.WriteFile(path, []byte("mouse_controller: 3\ncamera:\n  scale: 2\n"), 0o644))
	a.reload(path)
	require.Equal(t, 3, a.in.MouseController)
	require.Equal(t, 2.0, a.cam.Scale())

	// broken files keep the running config
	require.NoError(t, os.WriteFile(path, []byte("max_loops: -3\n"), 0o644))
	a.reload(path)
	require.Equal(t, 3, a.in.MouseController)

	// other files are ignored
	a.reload(filepath.Join(dir, "other.yaml"))
	require.Equal(t, 3, a.in.MouseController)
}

func TestReloadScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "move.tengo")
	require.NoError(t, os.WriteFile(path, []byte(`act := func(pad) { return {dx: 1} }`), 0o644))

	cfg := noScript(t)
	cfg.Script = path
	a := newTestApp(t, cfg)
	a.Act()
	require.InDelta(t, 2001, a.ball.X, 1e-9)

	require.NoError(t, os.WriteFile(path, []byte(`act := func(pad) { return {dx: -2} }`), 0o644))
	a.reload(path)
	a.Act()
	require.InDelta(t, 1999, a.ball.X, 1e-9)

	// a broken edit keeps the last good program
	require.NoError(t, os.WriteFile(path, []byte(`act := func(`), 0o644))
	a.reload(path)
	a.Act()
	require.InDelta(t, 1997, a.ball.X, 1e-9)
}

func TestWatcherDrivesScriptReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "move.tengo")
	require.NoError(t, os.WriteFile(path, []byte(`act := func(pad) { return {dx: 1} }`), 0o644))

	cfg := noScript(t)
	cfg.Script = path
	a := newTestApp(t, cfg)
	w, err := config.NewWatcher(a.watchFiles()...)
	require.NoError(t, err)
	defer w.Close()
	a.watcher = w

	require.NoError(t, os.WriteFile(path, []byte(`act := func(pad) { return {dy: 1} }`), 0o644))
	require.Eventually(t, func() bool {
		a.drainWatcher()
		m, err := a.behavior.Run(a.in.Player1())
		return err == nil && m.DY == 1
	}, 5*time.Second, 20*time.Millisecond)
}

func TestSynthPads(t *testing.T) {
	s := &synthPads{}
	pads := s.Gamepads()
	require.Len(t, pads, input.ControllerCount)
	require.Nil(t, pads[2])
	require.True(t, pads[0].Buttons[0].Pressed)
	require.Equal(t, int64(1), pads[0].Timestamp)

	for i := 0; i < synthHold; i++ {
		pads = s.Gamepads()
	}
	require.True(t, pads[1].Buttons[1].Pressed)
	require.False(t, pads[1].Buttons[0].Pressed)
}

func TestRunHeadless(t *testing.T) {
	cfg := noScript(t)
	cfg.FramesPerSecond = 240
	a := newTestApp(t, cfg)

	require.NoError(t, runHeadless(context.Background(), a, 20))
	require.NotZero(t, a.frames)

	// slot 0 is a Switch Pro, slot 1 a generic pad
	gm := a.in.Gamepad.(*input.DefaultGamepadManager)
	require.Equal(t, "switch_pro", gm.LayoutFor("Pro Controller (STANDARD GAMEPAD Vendor: 057e Product: 2009)").Name)
	require.NotZero(t, a.in.Player1().AxisLeft().X)
	require.Empty(t, a.in.Player3().Snapshot().Buttons)
}

func TestHeadlessSnapshotIsYAML(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.FramesPerSecond = 1000
	a := newTestApp(t, cfg)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	// frame 30 presses X on the synthetic Switch Pro, which makes the
	// default script log
	err = headlessSnapshot(context.Background(), a, 60, os.Stdout)
	os.Stdout = stdout
	require.NoError(t, err)
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)

	require.Regexp(t, `^player1:`, string(out))
	var got map[string]input.Snapshot
	require.NoError(t, yaml.Unmarshal(out, &got))
	require.Len(t, got, input.ControllerCount)
}
