package playback

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/trace"
)

const (
	MinArraySize     = 5
	MaxArraySize     = 100
	DefaultArraySize = 20

	MinInterval     = 10 * time.Millisecond
	MaxInterval     = 500 * time.Millisecond
	DefaultInterval = 100 * time.Millisecond
)

// ErrSeekOutOfRange indicates a seek target outside [0, last].
var ErrSeekOutOfRange = errors.New("playback: seek index out of range")

type State int

const (
	Idle State = iota
	Paused
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Status is a consistent snapshot of the controller.
type Status struct {
	State     State
	Index     int
	Len       int
	Algorithm algorithms.Name
	Size      int
	Interval  time.Duration
}

// AtEnd reports whether the index sits on the terminal step.
func (s Status) AtEnd() bool { return s.Len > 0 && s.Index == s.Len-1 }

// Progress is the index as a fraction of the last index.
func (s Status) Progress() float64 {
	if s.Len <= 1 {
		return 0
	}
	return float64(s.Index) / float64(s.Len-1)
}

type Option func(*Controller)

func WithScheduler(s Scheduler) Option { return func(c *Controller) { c.sched = s } }

func WithRand(r *rand.Rand) Option { return func(c *Controller) { c.rng = r } }

func WithLogger(l *slog.Logger) Option { return func(c *Controller) { c.log = l } }

func WithAlgorithm(name algorithms.Name) Option { return func(c *Controller) { c.algorithm = name } }

func WithArraySize(n int) Option { return func(c *Controller) { c.size = ClampArraySize(n) } }

func WithInterval(d time.Duration) Option { return func(c *Controller) { c.interval = ClampInterval(d) } }

// WithValueRange sets the range initial values are drawn from.
func WithValueRange(min, max int) Option {
	return func(c *Controller) { c.min, c.max = min, max }
}

// WithOnChange registers an observer called after every change of index or
// state. It runs outside the controller's lock and may call back into it.
func WithOnChange(fn func(Status)) Option { return func(c *Controller) { c.onChange = fn } }

// Controller drives an index through a trace. It starts Idle; Reset loads a
// fresh trace and pauses at index 0.
//
// Every schedule is tagged with a generation. Leaving Playing bumps the
// generation and cancels the schedule before the command returns, so a tick
// that was already in flight finds a stale generation and does nothing.
type Controller struct {
	mu       sync.Mutex
	sched    Scheduler
	rng      *rand.Rand
	log      *slog.Logger
	onChange func(Status)

	algorithm algorithms.Name
	size      int
	min, max  int
	interval  time.Duration

	initial []trace.Item
	tr      trace.Trace
	index   int
	state   State

	gen    uint64
	cancel func()
}

func New(opts ...Option) *Controller {
	c := &Controller{
		algorithm: algorithms.NameBubble,
		size:      DefaultArraySize,
		min:       trace.DefaultMin,
		max:       trace.DefaultMax,
		interval:  DefaultInterval,
		state:     Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sched == nil {
		c.sched = TickerScheduler{}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Reset generates a fresh array and trace for the current algorithm and
// size and pauses at index 0.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.resetLocked(trace.NewArray(c.rng, c.size, c.min, c.max))
	st := c.statusLocked()
	c.mu.Unlock()
	c.notify(st)
}

// Load replaces the array with items (any length) and resets onto it.
func (c *Controller) Load(items []trace.Item) {
	c.mu.Lock()
	c.resetLocked(trace.Clone(items))
	st := c.statusLocked()
	c.mu.Unlock()
	c.notify(st)
}

func (c *Controller) resetLocked(items []trace.Item) {
	c.stopLocked()
	tr, err := algorithms.Generate(c.algorithm, items)
	if err != nil {
		// SetAlgorithm rejects unknown names, so only a bad option gets here.
		c.log.Error("trace generation failed, falling back", "algorithm", c.algorithm, "err", err)
		c.algorithm = algorithms.NameBubble
		tr = algorithms.Bubble(items)
	}
	c.initial, c.tr = items, tr
	c.index, c.state = 0, Paused
	c.log.Debug("trace loaded", "algorithm", c.algorithm, "size", len(items), "steps", len(tr))
}

// PlayPause toggles playback. Playing from the terminal step rewinds to 0
// first.
func (c *Controller) PlayPause() {
	c.mu.Lock()
	switch c.state {
	case Idle:
		c.mu.Unlock()
		return
	case Playing:
		c.pauseLocked()
	case Paused:
		if c.index >= c.tr.LastIndex() {
			c.index = 0
		}
		c.state = Playing
		c.startLocked()
		c.log.Debug("playing", "index", c.index, "interval", c.interval)
	}
	st := c.statusLocked()
	c.mu.Unlock()
	c.notify(st)
}

// Pause stops playback; it is a no-op unless Playing.
func (c *Controller) Pause() {
	c.mu.Lock()
	if c.state != Playing {
		c.mu.Unlock()
		return
	}
	c.pauseLocked()
	st := c.statusLocked()
	c.mu.Unlock()
	c.notify(st)
}

// StepForward advances one step while Paused. While Playing it only pauses.
func (c *Controller) StepForward() { c.step(1) }

// StepBackward rewinds one step while Paused. While Playing it only pauses.
func (c *Controller) StepBackward() { c.step(-1) }

func (c *Controller) step(delta int) {
	c.mu.Lock()
	switch c.state {
	case Idle:
		c.mu.Unlock()
		return
	case Playing:
		c.pauseLocked()
	case Paused:
		next := c.index + delta
		if next < 0 || next > c.tr.LastIndex() {
			c.mu.Unlock()
			return
		}
		c.index = next
	}
	st := c.statusLocked()
	c.mu.Unlock()
	c.notify(st)
}

// Seek jumps to index. An out-of-range index is rejected without any state
// change; a valid seek while Playing pauses first.
func (c *Controller) Seek(index int) error {
	c.mu.Lock()
	if c.state == Idle || index < 0 || index > c.tr.LastIndex() {
		last := c.tr.LastIndex()
		c.mu.Unlock()
		return fmt.Errorf("%w: %d not in [0, %d]", ErrSeekOutOfRange, index, last)
	}
	if c.state == Playing {
		c.pauseLocked()
	}
	c.index = index
	st := c.statusLocked()
	c.mu.Unlock()
	c.notify(st)
	return nil
}

// SetAlgorithm selects an algorithm and forces a reset.
func (c *Controller) SetAlgorithm(name algorithms.Name) error {
	if _, ok := algorithms.Lookup(name); !ok {
		return fmt.Errorf("%w: %q", algorithms.ErrUnknownAlgorithm, name)
	}
	c.mu.Lock()
	c.algorithm = name
	c.mu.Unlock()
	c.Reset()
	return nil
}

// SetArraySize clamps n to the supported range, forces a reset and returns
// the size in effect.
func (c *Controller) SetArraySize(n int) int {
	n = ClampArraySize(n)
	c.mu.Lock()
	c.size = n
	c.mu.Unlock()
	c.Reset()
	return n
}

// SetInterval clamps d to the supported range and returns the interval in
// effect. A running schedule is re-armed at the new interval.
func (c *Controller) SetInterval(d time.Duration) time.Duration {
	d = ClampInterval(d)
	c.mu.Lock()
	c.interval = d
	if c.state == Playing {
		c.startLocked()
	}
	st := c.statusLocked()
	c.mu.Unlock()
	c.notify(st)
	return d
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusLocked()
}

// Current returns the step under the index; false while Idle.
func (c *Controller) Current() (trace.Step, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Idle {
		return trace.Step{}, false
	}
	return c.tr[c.index], true
}

// Trace returns the loaded trace. Steps are immutable, callers must not
// modify them.
func (c *Controller) Trace() trace.Trace {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tr
}

// Initial returns a copy of the array the current trace was generated from.
func (c *Controller) Initial() []trace.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return trace.Clone(c.initial)
}

// Close cancels any running schedule.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Playing {
		c.state = Paused
	}
	c.stopLocked()
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.state != Playing {
		c.mu.Unlock()
		return
	}
	c.index++
	if c.index >= c.tr.LastIndex() {
		c.index = c.tr.LastIndex()
		c.pauseLocked()
		c.log.Debug("reached end of trace", "steps", len(c.tr))
	}
	st := c.statusLocked()
	c.mu.Unlock()
	c.notify(st)
}

func (c *Controller) pauseLocked() {
	c.stopLocked()
	c.state = Paused
}

func (c *Controller) startLocked() {
	c.stopLocked()
	gen := c.gen
	c.cancel = c.sched.Schedule(c.interval, func() { c.tick(gen) })
}

// stopLocked invalidates the active schedule.
func (c *Controller) stopLocked() {
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) statusLocked() Status {
	return Status{
		State:     c.state,
		Index:     c.index,
		Len:       len(c.tr),
		Algorithm: c.algorithm,
		Size:      c.size,
		Interval:  c.interval,
	}
}

func (c *Controller) notify(st Status) {
	if c.onChange != nil {
		c.onChange(st)
	}
}

func ClampArraySize(n int) int {
	return min(max(n, MinArraySize), MaxArraySize)
}

func ClampInterval(d time.Duration) time.Duration {
	return min(max(d, MinInterval), MaxInterval)
}
