// Package notify keeps the queue of transient toast notifications. Every toast
// counts down on its own timer, pauses while it has the user's attention, and
// leaves the queue a short exit delay after it is closed or expires.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/andres-erbsen/clock"
	"github.com/google/uuid"
	"github.com/pandodao/carbon-wallet/core"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

type State string

const (
	StateScheduled State = "scheduled"
	StatePaused    State = "paused"
	StateExiting   State = "exiting"
	StateRemoved   State = "removed"
)

type Action struct {
	Label   string `json:"label"`
	OnClick func() `json:"-"`
}

type Toast struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Severity  Severity      `json:"severity"`
	Duration  time.Duration `json:"duration"`
	Action    *Action       `json:"action,omitempty"`
	State     State         `json:"state"`
	Remaining time.Duration `json:"remaining"`
}

type Option func(*Toast)

func WithSeverity(s Severity) Option {
	return func(t *Toast) { t.Severity = s }
}

// WithDuration sets the display duration. Zero disables auto-dismiss.
func WithDuration(d time.Duration) Option {
	return func(t *Toast) { t.Duration = d }
}

func WithAction(label string, onClick func()) Option {
	return func(t *Toast) { t.Action = &Action{Label: label, OnClick: onClick} }
}

type Config struct {
	Duration  time.Duration
	ExitDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Duration:  core.ToastDuration,
		ExitDelay: core.ToastExitDelay,
	}
}

type item struct {
	toast     Toast
	state     State
	remaining time.Duration
	startedAt time.Time
	timer     *clock.Timer
	// gen invalidates timer callbacks that fire after the timer was replaced.
	gen int
}

type Center struct {
	clock  clock.Clock
	cfg    Config
	logger *slog.Logger

	mux   sync.Mutex
	items []*item
}

func New(clk clock.Clock, cfg Config, logger *slog.Logger) *Center {
	return &Center{
		clock:  clk,
		cfg:    cfg,
		logger: logger.With("service", "notify"),
	}
}

// Add queues a toast and starts its countdown. It returns the toast id.
func (c *Center) Add(message string, opts ...Option) string {
	t := Toast{
		ID:       "toast-" + uuid.NewString(),
		Message:  message,
		Severity: SeverityInfo,
		Duration: c.cfg.Duration,
	}

	for _, opt := range opts {
		opt(&t)
	}

	it := &item{
		toast:     t,
		state:     StateScheduled,
		remaining: max(t.Duration, 0),
	}

	c.mux.Lock()
	c.items = append(c.items, it)
	c.start(it)
	c.mux.Unlock()

	c.logger.Debug("toast added", "id", t.ID, "severity", t.Severity)
	return t.ID
}

func (c *Center) Success(message string) string {
	return c.Add(message, WithSeverity(SeveritySuccess))
}

func (c *Center) Error(message string) string {
	return c.Add(message, WithSeverity(SeverityError))
}

func (c *Center) Info(message string) string {
	return c.Add(message, WithSeverity(SeverityInfo))
}

func (c *Center) Warning(message string) string {
	return c.Add(message, WithSeverity(SeverityWarning))
}

// Pause stops the countdown of a scheduled toast, keeping the time left.
func (c *Center) Pause(id string) bool {
	c.mux.Lock()
	defer c.mux.Unlock()

	it := c.find(id)
	if it == nil || it.state != StateScheduled {
		return false
	}

	if it.timer != nil {
		elapsed := c.clock.Now().Sub(it.startedAt)
		it.remaining = max(it.remaining-elapsed, 0)
	}

	// the countdown ran out before its timer fired
	if it.toast.Duration > 0 && it.remaining == 0 {
		c.exit(it)
		return false
	}

	c.stop(it)
	it.state = StatePaused
	return true
}

// Resume restarts the countdown of a paused toast with the time it had left.
func (c *Center) Resume(id string) bool {
	c.mux.Lock()
	defer c.mux.Unlock()

	it := c.find(id)
	if it == nil || it.state != StatePaused {
		return false
	}

	it.state = StateScheduled
	c.start(it)
	return true
}

// Close dismisses a toast. It stays listed as exiting until the exit delay
// has passed.
func (c *Center) Close(id string) bool {
	c.mux.Lock()
	defer c.mux.Unlock()

	it := c.find(id)
	if it == nil {
		return false
	}

	return c.exit(it)
}

// Remaining reports how long the toast is still displayed for.
func (c *Center) Remaining(id string) (time.Duration, bool) {
	c.mux.Lock()
	defer c.mux.Unlock()

	it := c.find(id)
	if it == nil {
		return 0, false
	}

	return c.remaining(it), true
}

func (c *Center) Get(id string) (Toast, bool) {
	c.mux.Lock()
	defer c.mux.Unlock()

	it := c.find(id)
	if it == nil {
		return Toast{}, false
	}

	return c.snapshot(it), true
}

// List returns the active toasts in creation order.
func (c *Center) List() []Toast {
	c.mux.Lock()
	defer c.mux.Unlock()

	toasts := make([]Toast, 0, len(c.items))
	for _, it := range c.items {
		toasts = append(toasts, c.snapshot(it))
	}

	return toasts
}

// Shutdown stops every timer and drops all toasts.
func (c *Center) Shutdown() {
	c.mux.Lock()
	defer c.mux.Unlock()

	for _, it := range c.items {
		c.stop(it)
		it.state = StateRemoved
	}

	c.items = nil
}

func (c *Center) find(id string) *item {
	for _, it := range c.items {
		if it.toast.ID == id {
			return it
		}
	}

	return nil
}

func (c *Center) snapshot(it *item) Toast {
	t := it.toast
	t.State = it.state
	t.Remaining = c.remaining(it)
	return t
}

func (c *Center) remaining(it *item) time.Duration {
	if it.state == StateScheduled && it.timer != nil {
		return max(it.remaining-c.clock.Now().Sub(it.startedAt), 0)
	}

	if it.state == StateExiting || it.state == StateRemoved {
		return 0
	}

	return it.remaining
}

func (c *Center) start(it *item) {
	if it.remaining <= 0 {
		return
	}

	it.gen++
	gen := it.gen
	id := it.toast.ID

	it.startedAt = c.clock.Now()
	it.timer = c.clock.AfterFunc(it.remaining, func() {
		c.expire(id, gen)
	})
}

func (c *Center) stop(it *item) {
	it.gen++
	if it.timer != nil {
		it.timer.Stop()
		it.timer = nil
	}
}

func (c *Center) expire(id string, gen int) {
	c.mux.Lock()
	defer c.mux.Unlock()

	it := c.find(id)
	if it == nil || it.gen != gen || it.state != StateScheduled {
		return
	}

	it.timer = nil
	c.exit(it)
}

func (c *Center) exit(it *item) bool {
	if it.state == StateExiting || it.state == StateRemoved {
		return false
	}

	c.stop(it)
	it.state = StateExiting
	it.remaining = 0

	gen := it.gen
	id := it.toast.ID
	it.timer = c.clock.AfterFunc(c.cfg.ExitDelay, func() {
		c.remove(id, gen)
	})

	return true
}

func (c *Center) remove(id string, gen int) {
	c.mux.Lock()
	defer c.mux.Unlock()

	for idx, it := range c.items {
		if it.toast.ID != id {
			continue
		}

		if it.gen != gen {
			return
		}

		it.timer = nil
		it.state = StateRemoved
		c.items = append(c.items[:idx], c.items[idx+1:]...)
		c.logger.Debug("toast removed", "id", id)
		return
	}
}
