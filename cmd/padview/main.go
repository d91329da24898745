package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gamekit/config"
	"github.com/milk9111/gamekit/device"
	"github.com/milk9111/gamekit/logger"
	"github.com/milk9111/gamekit/loop"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file (built-in defaults when empty)")
	headlessMode := flag.Bool("headless", false, "run without a window, driven by synthetic gamepads")
	frames := flag.Int("frames", 300, "frames to run in headless mode (0 runs until interrupted)")
	debug := flag.Bool("debug", false, "enable debug logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	level := cfg.Log.Level
	if *debug {
		level = "debug"
	}
	zlog, err := logger.New(level, cfg.Log.Development || *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	a, err := newApp(*cfgPath, cfg, zlog)
	if err != nil {
		zlog.Fatal("padview", zap.Error(err))
	}

	if *headlessMode {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := headlessSnapshot(ctx, a, *frames, os.Stdout); err != nil {
			zlog.Fatal("headless", zap.Error(err))
		}
		return
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(cfg.Camera.Width), int(cfg.Camera.Height))
	ebiten.SetWindowTitle("padview")

	a.in.SetGamepadSource(device.NewGamepads(zlog.Named("device")))
	a.clip = newClipboard(zlog)
	if files := a.watchFiles(); len(files) > 0 {
		w, err := config.NewWatcher(files...)
		if err != nil {
			zlog.Warn("hot reload disabled", zap.Error(err))
		} else {
			a.watcher = w
			defer w.Close()
		}
	}

	game := loop.NewGame(a, a.in, device.NewPoller(), cfg.FramesPerSecond)
	game.Width, game.Height = cfg.Camera.Width, cfg.Camera.Height
	a.quit = game.Quit
	a.ui = newPauseUI(a)

	if err := ebiten.RunGame(game); err != nil {
		zlog.Fatal("padview", zap.Error(err))
	}
}
