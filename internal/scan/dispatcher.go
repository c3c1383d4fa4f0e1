package scan

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/khateebdev-stack/qrcode/internal/classify"
	"github.com/khateebdev-stack/qrcode/internal/deeplink"
)

// DefaultWindow is the suppression window applied when none is configured:
// the minimum gap enforced between two processed scans.
const DefaultWindow = 3 * time.Second

// Status is the dispatch outcome of a single decode event.
type Status string

const (
	// StatusExecuted: auto-category payload handed to the executor.
	StatusExecuted Status = "executed"
	// StatusNavigated: deep link resolved and handed to the navigator.
	StatusNavigated Status = "navigated"
	// StatusPresented: manual-category payload surfaced for review.
	StatusPresented Status = "presented"
	// StatusPresentedError: resolution or execution failed; the raw
	// payload is surfaced with a diagnostic reason instead.
	StatusPresentedError Status = "presented_error"
	// StatusIgnored: dropped inside the suppression window.
	StatusIgnored Status = "ignored"
	// StatusRejected: refused by the restricted dispatcher's gate.
	StatusRejected Status = "rejected"
)

// Outcome is what a dispatcher produces per decode event. Result is absent
// for ignored events; Target is set only for navigated outcomes.
type Outcome struct {
	Status Status           `json:"status"`
	Result *classify.Result `json:"result,omitempty"`
	Target *deeplink.Target `json:"target,omitempty"`
	Reason string           `json:"reason,omitempty"`
}

// gate is the shared Idle/Suppressed state machine. While suppressed all
// incoming payloads are dropped, not queued; a single one-shot timer is the
// only transition back to idle besides an explicit reset. At most one timer
// is outstanding because begin() refuses new scans while suppressed. gen
// stamps each armed window so a timer callback that fired before a reset
// but ran after a new window was armed cannot release that newer window.
type gate struct {
	mu         sync.Mutex
	window     time.Duration
	suppressed bool
	timer      *time.Timer
	gen        uint64
}

// begin reports whether the caller may process a scan. On true it
// transitions to Suppressed and arms the release timer.
func (g *gate) begin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.suppressed {
		return false
	}
	g.suppressed = true
	g.gen++
	gen := g.gen
	g.timer = time.AfterFunc(g.window, func() { g.expire(gen) })
	return true
}

// expire is the timer callback: Suppressed → Idle, but only when the window
// it was armed for is still the current one. Timer.Stop cannot recall a
// callback that has already fired and is waiting on the lock.
func (g *gate) expire(gen uint64) {
	g.mu.Lock()
	if gen == g.gen {
		g.suppressed = false
		g.timer = nil
	}
	g.mu.Unlock()
}

// reset forces Idle immediately and invalidates any in-flight timer
// callback. Idempotent; safe whether or not a timer is pending.
func (g *gate) reset() {
	g.mu.Lock()
	g.gen++
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.suppressed = false
	g.mu.Unlock()
}

// Config carries the dispatcher dependencies. Zero-value fields get safe
// defaults: DefaultWindow, logging executor/navigator, no-op camera.
type Config struct {
	Window    time.Duration
	Executor  Executor
	Navigator Navigator
	Camera    Camera
	Log       zerolog.Logger
}

func (c *Config) applyDefaults() {
	if c.Window <= 0 {
		c.Window = DefaultWindow
	}
	if c.Executor == nil {
		c.Executor = LogExecutor{Log: c.Log}
	}
	if c.Navigator == nil {
		c.Navigator = LogNavigator{Log: c.Log}
	}
	if c.Camera == nil {
		c.Camera = NopCamera{}
	}
}

// Dispatcher is the general-mode scan coordinator: suppression check,
// classification, history append, then auto-execution, deep-link
// navigation, or presentation according to the fixed dispatch policy.
//
// Collaborator failures are caught here and degraded to presented outcomes;
// nothing propagates out of OnDecode and the state machine can never stick
// in Suppressed.
type Dispatcher struct {
	gate    gate
	history *History
	exec    Executor
	nav     Navigator
	camera  Camera
	log     zerolog.Logger
}

// NewDispatcher constructs a general-mode dispatcher with its own empty
// history.
func NewDispatcher(cfg Config) *Dispatcher {
	cfg.applyDefaults()
	return &Dispatcher{
		gate:    gate{window: cfg.Window},
		history: NewHistory(),
		exec:    cfg.Executor,
		nav:     cfg.Navigator,
		camera:  cfg.Camera,
		log:     cfg.Log,
	}
}

// OnDecode processes one decoded payload. Events arriving inside the
// suppression window yield StatusIgnored with no classification and no
// history entry.
func (d *Dispatcher) OnDecode(ctx context.Context, payload string) Outcome {
	if !d.gate.begin() {
		suppressedDrops.WithLabelValues("general").Inc()
		return Outcome{Status: StatusIgnored, Reason: "suppressed"}
	}

	res := classify.Classify(payload)
	d.history.Add(Entry{Payload: payload, ContentType: res.ContentType})

	out := d.route(ctx, payload, res)
	scansTotal.WithLabelValues("general", string(res.ContentType), string(out.Status)).Inc()

	d.log.Debug().
		Str("content_type", string(res.ContentType)).
		Str("outcome", string(out.Status)).
		Msg("scan dispatched")
	return out
}

// route applies the auto/manual policy to a classified payload.
func (d *Dispatcher) route(ctx context.Context, payload string, res classify.Result) Outcome {
	switch {
	case res.ContentType == classify.AppDeepLink:
		target, err := deeplink.Resolve(payload)
		if err != nil {
			return Outcome{Status: StatusPresentedError, Result: &res, Reason: err.Error()}
		}
		d.nav.Navigate(target)
		return Outcome{Status: StatusNavigated, Result: &res, Target: target}

	case classify.IsAuto(res.ContentType):
		if err := d.exec.Execute(ctx, payload, res.ContentType); err != nil {
			d.log.Warn().Err(err).
				Str("content_type", string(res.ContentType)).
				Msg("executor failed; presenting raw result")
			return Outcome{Status: StatusPresentedError, Result: &res, Reason: "execution failed: " + err.Error()}
		}
		return Outcome{Status: StatusExecuted, Result: &res}

	default:
		return Outcome{Status: StatusPresented, Result: &res}
	}
}

// Restart forces an immediate Suppressed → Idle transition and signals the
// camera collaborator to re-acquire a capture session. Idempotent.
func (d *Dispatcher) Restart() {
	d.gate.reset()
	d.camera.Restart()
}

// History returns a snapshot of the bounded scan history, newest-first.
func (d *Dispatcher) History() []Entry {
	return d.history.Entries()
}
