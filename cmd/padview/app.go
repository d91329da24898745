package main

import (
	"path/filepath"
	"slices"

	"github.com/ebitenui/ebitenui"
	"github.com/milk9111/gamekit/camera"
	"github.com/milk9111/gamekit/common"
	"github.com/milk9111/gamekit/config"
	"github.com/milk9111/gamekit/input"
	"github.com/milk9111/gamekit/script"
	"github.com/milk9111/gamekit/vec"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	ballSpeed  = 6.0
	ballRadius = 24.0
	minZoom    = 0.25
	maxZoom    = 4.0
	wheelZoom  = 0.1
)

// app is the padview scene: a ball driven by player one, followed by the
// camera, with every controller's state on screen.
type app struct {
	cfgPath string
	cfg     *config.Config

	in   *input.Input
	cam  *camera.Camera
	ball vec.Vector2

	behavior  *script.Behavior
	scriptErr bool

	watcher *config.Watcher
	clip    clipboardWriter
	ui      *ebitenui.UI
	paused  bool
	quit    func()

	frames int
	log    *zap.Logger
}

func newApp(cfgPath string, cfg *config.Config, log *zap.Logger) (*app, error) {
	a := &app{
		cfgPath: cfgPath,
		cfg:     cfg,
		in:      input.New(log.Named("input")),
		cam:     camera.New(),
		clip:    noClipboard{},
		quit:    func() {},
		log:     log,
	}
	if err := a.applyConfig(cfg); err != nil {
		return nil, err
	}

	w, h := cfg.Camera.WorldWidth, cfg.Camera.WorldHeight
	if w <= 0 || h <= 0 {
		w, h = cfg.Camera.Width, cfg.Camera.Height
	}
	a.ball.Set(w/2, h/2)
	return a, nil
}

func (a *app) applyConfig(cfg *config.Config) error {
	if err := cfg.Apply(a.in, a.cam); err != nil {
		return err
	}
	a.cam.SetCanvasWidth(cfg.Camera.Width)
	a.cam.SetCanvasHeight(cfg.Camera.Height)
	a.cfg = cfg
	a.loadScript()
	return nil
}

func (a *app) loadScript() {
	path := a.cfg.Script
	if path == "" {
		a.behavior = nil
		return
	}
	src, err := config.LoadScript(path)
	if err != nil {
		a.log.Warn("script unavailable, using built-in movement", zap.String("path", path), zap.Error(err))
		a.behavior = nil
		return
	}
	if a.behavior != nil && a.behavior.Name() == path {
		if err := a.behavior.Reload(src); err != nil {
			a.log.Warn("script reload failed", zap.Error(err))
			return
		}
	} else {
		b, err := script.New(path, src, a.log.Named("script"))
		if err != nil {
			a.log.Warn("script failed, using built-in movement", zap.Error(err))
			a.behavior = nil
			return
		}
		a.behavior = b
	}
	a.scriptErr = false
	a.log.Info("script loaded", zap.String("path", path))
}

func (a *app) Startup() {
	a.cam.SnapTo(a.ball.X, a.ball.Y)
	a.log.Info("padview started",
		zap.Int("fps", a.cfg.FramesPerSecond),
		zap.Bool("script", a.behavior != nil))
}

func (a *app) Act() {
	a.frames++
	a.drainWatcher()

	if a.anyJustPressed(input.ButtonStart) {
		a.paused = !a.paused
	}
	if a.paused {
		if a.ui != nil {
			a.ui.Update()
		}
		return
	}

	p1 := a.in.Player1()
	m := a.move(p1)
	a.ball.Add(vec.Vector2{X: m.DX, Y: m.DY})
	a.clampBall()

	zoom := m.Zoom
	if mm, ok := a.in.Mouse.(*input.DefaultMouseManager); ok {
		zoom -= mm.Wheel()[1] * wheelZoom
		mm.ClearWheel()
	}
	if zoom != 0 {
		a.cam.SetScale(common.Clamp(a.cam.Scale()+zoom, minZoom, maxZoom))
	}
	a.cam.Follow(a.ball.X, a.ball.Y)

	if a.anyJustPressed(input.ButtonScreenShot) {
		a.copySnapshot()
	}
}

func (a *app) move(c *input.Controller) script.Move {
	if a.behavior != nil {
		m, err := a.behavior.Run(c)
		if err == nil {
			return m
		}
		if !a.scriptErr {
			a.scriptErr = true
			a.log.Warn("script error, using built-in movement", zap.Error(err))
		}
	}
	return defaultMove(c)
}

func defaultMove(c *input.Controller) script.Move {
	dir := c.AxisLeft().Copy()
	if c.Button(input.ButtonDPadLeft).Down() {
		dir.X--
	}
	if c.Button(input.ButtonDPadRight).Down() {
		dir.X++
	}
	if c.Button(input.ButtonDPadUp).Down() {
		dir.Y--
	}
	if c.Button(input.ButtonDPadDown).Down() {
		dir.Y++
	}
	if dir.SqMagnitude() > 1 {
		dir.Normalize()
	}
	dir.Scale(ballSpeed)

	var zoom float64
	if c.Button(input.ButtonLB).JustPressed() {
		zoom -= 0.25
	}
	if c.Button(input.ButtonRB).JustPressed() {
		zoom += 0.25
	}
	return script.Move{DX: dir.X, DY: dir.Y, Zoom: zoom}
}

func (a *app) clampBall() {
	w, h := a.cfg.Camera.WorldWidth, a.cfg.Camera.WorldHeight
	if w > 0 {
		a.ball.X = common.Clamp(a.ball.X, ballRadius, w-ballRadius)
	}
	if h > 0 {
		a.ball.Y = common.Clamp(a.ball.Y, ballRadius, h-ballRadius)
	}
}

func (a *app) anyJustPressed(b input.Button) bool {
	for i := 0; i < input.ControllerCount; i++ {
		if a.in.Controller(i).Button(b).JustPressed() {
			return true
		}
	}
	return false
}

func (a *app) snapshots() map[string]input.Snapshot {
	out := make(map[string]input.Snapshot, input.ControllerCount)
	players := []*input.Controller{a.in.Player1(), a.in.Player2(), a.in.Player3(), a.in.Player4()}
	for i, c := range players {
		out[playerName(i)] = c.Snapshot()
	}
	return out
}

func playerName(i int) string {
	return "player" + string(rune('1'+i))
}

func (a *app) snapshotYAML() ([]byte, error) {
	return yaml.Marshal(a.snapshots())
}

func (a *app) copySnapshot() {
	data, err := a.snapshotYAML()
	if err != nil {
		a.log.Warn("snapshot", zap.Error(err))
		return
	}
	if err := a.clip.Write(data); err != nil {
		a.log.Warn("copy snapshot", zap.Error(err))
		return
	}
	a.log.Info("controller snapshot copied", zap.Int("bytes", len(data)))
}

// watchFiles lists the config file and the script when they are on disk.
func (a *app) watchFiles() []string {
	var files []string
	for _, p := range []string{a.cfgPath, a.cfg.Script} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil || !isDir(filepath.Dir(abs)) || slices.Contains(files, abs) {
			continue
		}
		files = append(files, abs)
	}
	return files
}

func (a *app) drainWatcher() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case ch, ok := <-a.watcher.Changes:
			if !ok {
				a.watcher = nil
				return
			}
			a.reload(ch.Path)
		case err, ok := <-a.watcher.Errors:
			if ok {
				a.log.Warn("watch", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (a *app) reload(path string) {
	switch {
	case config.IsConfigFile(path) && sameFile(path, a.cfgPath):
		cfg, err := config.Load(a.cfgPath)
		if err != nil {
			a.log.Warn("config reload failed", zap.Error(err))
			return
		}
		if err := a.applyConfig(cfg); err != nil {
			a.log.Warn("config apply failed", zap.Error(err))
			return
		}
		a.log.Info("config reloaded", zap.String("path", path))
		if a.watcher != nil && a.cfg.Script != "" && isDir(filepath.Dir(a.cfg.Script)) {
			if err := a.watcher.Track(a.cfg.Script); err != nil {
				a.log.Warn("watch script", zap.Error(err))
			}
		}
	case config.IsScriptFile(path) && sameFile(path, a.cfg.Script):
		a.loadScript()
	}
}
