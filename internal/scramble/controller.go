package scramble

import (
	"math/rand"
	"sync"
	"time"
)

// State is the phase a Controller is in.
type State int

const (
	Idle State = iota
	Resolving
	Held
	Dissolving
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resolving:
		return "resolving"
	case Held:
		return "held"
	case Dissolving:
		return "dissolving"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// MarshalText lets frames encode the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Frame is one update for whatever displays the title.
type Frame struct {
	Text     string `json:"text"`
	Complete bool   `json:"complete"`
	State    State  `json:"state"`
	Index    int    `json:"index"` // item being resolved, or about to be
}

// Controller cycles through a list of titles: resolve, hold, dissolve, next.
//
// All steps run on timers from a single Scheduler. Every run is tagged with a
// generation; starting another run or stopping bumps it so callbacks from the
// abandoned run do nothing. emit is called with the controller lock held: it
// must not block for long and must not call back into the Controller.
type Controller struct {
	mu    sync.Mutex
	items []string
	emit  func(Frame)

	sched      Scheduler
	rng        *rand.Rand
	alphabet   []rune
	timing     Timing
	reverse    Timing
	frameDelay time.Duration
	pause      time.Duration
	auto       bool
	stopChance float64

	state     State
	index     int
	current   string
	gen       uint64
	timer     Timer
	scrambler *Scrambler
	dissolver *Dissolver
}

// Option configures a Controller.
type Option func(*Controller)

// WithTiming sets the resolve timing.
func WithTiming(t Timing) Option {
	return func(c *Controller) { c.timing = t }
}

// WithReverseTiming sets the dissolve timing.
func WithReverseTiming(t Timing) Option {
	return func(c *Controller) { c.reverse = t }
}

// WithFrameDelay sets the delay between two steps. Non-positive values keep
// the default.
func WithFrameDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.frameDelay = d
		}
	}
}

// WithPause sets how long a resolved title is held before moving on.
func WithPause(d time.Duration) Option {
	return func(c *Controller) { c.pause = d }
}

// WithAlphabet sets the characters used for noise.
func WithAlphabet(alphabet string) Option {
	return func(c *Controller) { c.alphabet = alphabetOrDefault([]rune(alphabet)) }
}

// WithRand sets the random source shared by every run of the controller.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithScheduler replaces the runtime timers.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithAutoAdvance controls whether a held title moves on by itself.
// When off the controller waits in Held for Next, Prev or Jump.
func WithAutoAdvance(auto bool) Option {
	return func(c *Controller) { c.auto = auto }
}

// WithDissolveStopChance ends each dissolve step early with probability p.
func WithDissolveStopChance(p float64) Option {
	return func(c *Controller) { c.stopChance = p }
}

// WithInitialText sets what is on display before the first run, so the first
// item dissolves it instead of resolving from nothing.
func WithInitialText(text string) Option {
	return func(c *Controller) { c.current = text }
}

// NewController creates an idle controller over items.
func NewController(items []string, emit func(Frame), opts ...Option) *Controller {
	c := &Controller{
		items:      append([]string(nil), items...),
		emit:       emit,
		sched:      RealScheduler{},
		alphabet:   []rune(Letters),
		timing:     DefaultTiming,
		reverse:    DefaultReverseTiming,
		frameDelay: 30 * time.Millisecond,
		pause:      3 * time.Second,
		auto:       true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = newRand()
	}
	if c.emit == nil {
		c.emit = func(Frame) {}
	}
	return c
}

// Start begins with the first item.
func (c *Controller) Start() {
	c.StartAt(0)
}

// StartAt begins with item i. It does nothing unless the controller is idle.
func (c *Controller) StartAt(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Idle || len(c.items) == 0 {
		return
	}
	c.begin(c.wrap(i))
}

// Next abandons the current run and moves to the following item.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jump(c.index + 1)
}

// Prev abandons the current run and moves to the previous item.
func (c *Controller) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jump(c.index - 1)
}

// Jump abandons the current run and moves to item i.
func (c *Controller) Jump(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jump(i)
}

// Stop cancels the pending step. No frame is emitted after Stop returns.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()
	c.state = Stopped
	c.scrambler = nil
	c.dissolver = nil
}

// State returns the current phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Index returns the item being resolved, or about to be.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Current returns the last text emitted.
func (c *Controller) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) jump(i int) {
	if c.state == Stopped || len(c.items) == 0 {
		return
	}
	c.begin(c.wrap(i))
}

func (c *Controller) wrap(i int) int {
	n := len(c.items)
	return ((i % n) + n) % n
}

func (c *Controller) cancel() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// begin starts the transition to item index, dissolving whatever is on
// display first.
func (c *Controller) begin(index int) {
	c.cancel()
	c.index = index
	c.scrambler = nil

	if c.current == "" {
		c.resolve()
		return
	}

	c.state = Dissolving
	c.dissolver = NewDissolver(c.current, c.alphabet, c.reverse, c.rng).WithStopChance(c.stopChance)
	c.schedule(c.frameDelay, c.dissolveStep)
}

func (c *Controller) resolve() {
	c.state = Resolving
	c.dissolver = nil
	c.scrambler = NewScrambler(c.items[c.index], c.alphabet, c.timing, c.rng)
	if c.scrambler.Done() {
		c.hold()
		return
	}
	c.schedule(c.frameDelay, c.resolveStep)
}

func (c *Controller) resolveStep() {
	text, complete := c.scrambler.Next()
	c.current = text
	if complete {
		c.hold()
		return
	}
	c.emit(Frame{Text: text, State: Resolving, Index: c.index})
	c.schedule(c.frameDelay, c.resolveStep)
}

func (c *Controller) hold() {
	c.state = Held
	c.current = c.scrambler.Target()
	c.scrambler = nil
	c.emit(Frame{Text: c.current, Complete: true, State: Held, Index: c.index})

	if c.auto {
		next := c.wrap(c.index + 1)
		c.schedule(c.pause, func() { c.begin(next) })
	}
}

func (c *Controller) dissolveStep() {
	text, done := c.dissolver.Next()
	c.current = text
	c.emit(Frame{Text: text, State: Dissolving, Index: c.index})
	if done {
		c.resolve()
		return
	}
	c.schedule(c.frameDelay, c.dissolveStep)
}

// schedule runs step after d unless the run has been superseded by then.
func (c *Controller) schedule(d time.Duration, step func()) {
	gen := c.gen
	c.timer = c.sched.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.gen || c.state == Stopped {
			return
		}
		step()
	})
}

// Latest bridges a controller to a reader that must never hold it up. The
// returned emit func drops the oldest buffered frame when the channel is full,
// so the newest frame always gets through.
func Latest(buffer int) (func(Frame), <-chan Frame) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Frame, buffer)
	emit := func(f Frame) {
		for {
			select {
			case ch <- f:
				return
			default:
			}
			select {
			case <-ch:
			default:
			}
		}
	}
	return emit, ch
}
