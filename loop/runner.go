// Package loop runs games on a fixed timestep.
package loop

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	// FramesPerSecond is the default update rate.
	FramesPerSecond = 60
	// MaxLoops is how many updates a single frame may run to catch up before
	// the remaining ones are skipped.
	MaxLoops = 4
)

// Instance is a game driven by a Runner.
type Instance interface {
	Startup()
	Act()
	Draw()
}

type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Runner calls Act at a fixed rate and Draw once per frame. When it falls
// behind it runs up to MaxLoops updates in one frame, then gives up on the
// backlog.
type Runner struct {
	Instance  Instance
	FrameRate time.Duration
	MaxLoops  int
	Clock     Clock

	next    time.Time
	skipped int
	log     *zap.Logger
}

func NewRunner(inst Instance, fps, maxLoops int, log *zap.Logger) *Runner {
	if fps <= 0 {
		fps = FramesPerSecond
	}
	if maxLoops <= 0 {
		maxLoops = MaxLoops
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		Instance:  inst,
		FrameRate: time.Second / time.Duration(fps),
		MaxLoops:  maxLoops,
		Clock:     systemClock{},
		log:       log,
	}
}

// Start schedules the first update one frame from now, calls Startup and runs
// until ctx is done.
func (r *Runner) Start(ctx context.Context) error {
	r.next = r.Clock.Now().Add(r.FrameRate)
	r.Instance.Startup()
	return r.Run(ctx)
}

func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		wait := r.Frame()
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Clock.Sleep(wait)
	}
}

// Frame runs the updates that are due, draws, and returns how long to wait
// before the next frame.
func (r *Runner) Frame() time.Duration {
	loops := 0
	for now := r.Clock.Now(); !now.Before(r.next); now = r.Clock.Now() {
		if loops >= r.MaxLoops {
			r.next = now.Add(r.FrameRate)
			r.skipped++
			r.log.Debug("skipping frames", zap.Int("skipped", r.skipped))
			break
		}
		loops++
		r.Instance.Act()
		r.next = r.next.Add(r.FrameRate)
	}
	r.Instance.Draw()

	return max(r.next.Sub(r.Clock.Now()), 0)
}

// Skipped returns how many times the runner dropped its backlog.
func (r *Runner) Skipped() int {
	return r.skipped
}
