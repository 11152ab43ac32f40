// Package loop drives a game at a fixed tick rate on its own goroutine.
//
// Every tick the driver steps the game with the current time and the pending
// input, renders into a fresh screen and publishes the result as an immutable
// Frame. Readers take the latest frame and never touch the game itself, so no
// lock spans update and drawing.
package loop

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/core"
)

// ErrNoFrame is returned when no frame has been published yet.
var ErrNoFrame = errors.New("loop: no frame published yet")

// Stepper is the part of a game the driver needs.
type Stepper interface {
	Step(now time.Time, in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
}

// Frame is the drawable result of one tick. It is never modified after
// being published.
type Frame struct {
	Seq    uint64
	Now    time.Time
	State  core.GameState
	Screen *core.Screen
}

// Presenter hands a published frame to the display.
type Presenter interface {
	Present(f *Frame) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(f *Frame) error

// Present calls fn(f).
func (fn PresenterFunc) Present(f *Frame) error {
	return fn(f)
}

// Options configures a Driver.
type Options struct {
	TickRate int // ticks per second, default 30
	Width    int // screen size rendered each tick
	Height   int
	Clock    func() time.Time // tick time source, default time.Now
	Logger   *log.Logger
}

// Stats counts loop activity since the driver was created.
type Stats struct {
	Ticks         uint64
	Overruns      uint64 // ticks that used up their whole budget
	RenderErrors  uint64
	PresentErrors uint64
}

// Driver runs a Stepper at a fixed rate. The game is only touched by the
// loop goroutine.
type Driver struct {
	game      Stepper
	presenter Presenter
	interval  time.Duration
	clock     func() time.Time
	logger    *log.Logger

	mu      sync.Mutex // serializes Start and Stop
	running atomic.Bool
	stop    chan struct{}
	wg      sync.WaitGroup

	dir    atomic.Int32  // pending direction, ActionNone when empty
	cmds   atomic.Uint32 // pending non-direction actions, one bit each
	size   atomic.Uint64 // width<<32 | height
	latest atomic.Pointer[Frame]
	seq    uint64

	ticks         atomic.Uint64
	overruns      atomic.Uint64
	renderErrors  atomic.Uint64
	presentErrors atomic.Uint64
}

// New creates a stopped driver. The presenter may be nil.
func New(game Stepper, presenter Presenter, opts Options) *Driver {
	rate := opts.TickRate
	if rate <= 0 {
		rate = 30
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := &Driver{
		game:      game,
		presenter: presenter,
		interval:  time.Second / time.Duration(rate),
		clock:     clock,
		logger:    logger.WithPrefix("loop"),
	}
	d.SetSize(opts.Width, opts.Height)
	return d
}

// Interval returns the tick budget.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Start launches the loop goroutine. Calling Start on a running driver is a no-op.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running.Load() {
		return
	}
	d.stop = make(chan struct{})
	d.running.Store(true)
	d.wg.Add(1)
	go d.run(d.stop)
}

// Stop signals the loop and waits for it to exit. The game is not touched
// after Stop returns. Calling Stop on a stopped driver is a no-op.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running.Load() {
		return
	}
	close(d.stop)
	d.wg.Wait()
	d.running.Store(false)
}

// Resume restarts a stopped loop. The game state carries over.
func (d *Driver) Resume() {
	d.Start()
}

// Running reports whether the loop goroutine is active.
func (d *Driver) Running() bool {
	return d.running.Load()
}

// SetDirection stores a steering action for the next tick. There is a single
// slot: the last call before a tick wins. Non-direction actions are ignored.
func (d *Driver) SetDirection(a core.Action) {
	if !a.IsDirection() {
		return
	}
	d.dir.Store(int32(a))
}

// Request queues a non-direction action (such as restart) for the next tick.
func (d *Driver) Request(a core.Action) {
	if a.IsDirection() {
		d.SetDirection(a)
		return
	}
	if a <= core.ActionNone || a >= 32 {
		return
	}
	d.cmds.Or(1 << uint(a))
}

// SetSize changes the screen size rendered from the next tick on.
func (d *Driver) SetSize(w, h int) {
	d.size.Store(uint64(uint32(max(w, 0)))<<32 | uint64(uint32(max(h, 0))))
}

// Size returns the screen size rendered each tick.
func (d *Driver) Size() (w, h int) {
	v := d.size.Load()
	return int(v >> 32), int(uint32(v))
}

// Latest returns the most recently published frame.
func (d *Driver) Latest() (*Frame, error) {
	f := d.latest.Load()
	if f == nil {
		return nil, ErrNoFrame
	}
	return f, nil
}

// Stats returns loop counters.
func (d *Driver) Stats() Stats {
	return Stats{
		Ticks:         d.ticks.Load(),
		Overruns:      d.overruns.Load(),
		RenderErrors:  d.renderErrors.Load(),
		PresentErrors: d.presentErrors.Load(),
	}
}

// run is the loop goroutine. Each iteration measures its own duration and
// sleeps for the rest of the tick budget. An iteration that overran starts
// the next one immediately; missed ticks are dropped, not queued.
func (d *Driver) run(stop <-chan struct{}) {
	defer d.wg.Done()

	d.logger.Info("started", "interval", d.interval)
	defer d.logger.Info("stopped", "ticks", d.ticks.Load())

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		default:
		}

		begin := time.Now()
		d.tick(d.clock())
		elapsed := time.Since(begin)

		wait := d.interval - elapsed
		if wait <= 0 {
			d.overruns.Add(1)
			d.logger.Debug("tick overrun", "elapsed", elapsed, "budget", d.interval)
			continue
		}

		timer.Reset(wait)
		select {
		case <-timer.C:
		case <-stop:
			// Interrupted sleep: the tick simply ends early.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			return
		}
	}
}

// tick runs one update, render and present cycle.
func (d *Driver) tick(now time.Time) {
	res := d.game.Step(now, d.drainInput())
	d.ticks.Add(1)

	f, err := d.render(now, res.State)
	if err != nil {
		d.renderErrors.Add(1)
		d.logger.Warn("render failed, skipping frame", "err", err)
		return
	}
	d.latest.Store(f)

	if err := d.present(f); err != nil {
		d.presentErrors.Add(1)
		d.logger.Warn("present failed", "seq", f.Seq, "err", err)
	}
}

// drainInput empties the input slots into a frame.
func (d *Driver) drainInput() core.InputFrame {
	in := core.NewInputFrame()
	if a := core.Action(d.dir.Swap(int32(core.ActionNone))); a != core.ActionNone {
		in.Set(a)
	}
	bits := d.cmds.Swap(0)
	for a := core.ActionNone + 1; bits != 0 && a < 32; a++ {
		if bits&(1<<uint(a)) != 0 {
			in.Set(a)
			bits &^= 1 << uint(a)
		}
	}
	return in
}

func (d *Driver) render(now time.Time, state core.GameState) (f *Frame, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("loop: render panic: %v", r)
		}
	}()

	w, h := d.Size()
	screen := core.NewScreen(w, h)
	d.game.Render(screen)

	d.seq++
	return &Frame{
		Seq:    d.seq,
		Now:    now,
		State:  state,
		Screen: screen,
	}, nil
}

func (d *Driver) present(f *Frame) (err error) {
	if d.presenter == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("loop: present panic: %v", r)
		}
	}()

	if err := d.presenter.Present(f); err != nil {
		return fmt.Errorf("loop: present: %w", err)
	}
	return nil
}
