package scan

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/khateebdev-stack/qrcode/internal/classify"
	"github.com/khateebdev-stack/qrcode/internal/deeplink"
)

// RejectReason is the fixed reason attached to payloads the restricted
// dispatcher refuses.
const RejectReason = "not app-related"

// RestrictedDispatcher accepts only app deep links. It shares the general
// dispatcher's Idle/Suppressed timing discipline but replaces the policy
// step with a single gate: payloads that do not carry the app scheme are
// rejected and still recorded, with the validity flag set to false. Its
// history is fully independent of the general one.
type RestrictedDispatcher struct {
	gate    gate
	history *History
	nav     Navigator
	camera  Camera
	log     zerolog.Logger
}

// NewRestrictedDispatcher constructs a restricted-mode dispatcher with its
// own empty history. The executor seam is unused in this mode: the only
// accepted category is the deep link, which navigates.
func NewRestrictedDispatcher(cfg Config) *RestrictedDispatcher {
	cfg.applyDefaults()
	return &RestrictedDispatcher{
		gate:    gate{window: cfg.Window},
		history: NewHistory(),
		nav:     cfg.Navigator,
		camera:  cfg.Camera,
		log:     cfg.Log,
	}
}

// OnDecode processes one decoded payload through the app-only gate.
func (d *RestrictedDispatcher) OnDecode(_ context.Context, payload string) Outcome {
	if !d.gate.begin() {
		suppressedDrops.WithLabelValues("restricted").Inc()
		return Outcome{Status: StatusIgnored, Reason: "suppressed"}
	}

	valid := classify.IsAppLink(payload)
	d.history.Add(Entry{Payload: payload, Valid: &valid})

	var out Outcome
	if !valid {
		out = Outcome{Status: StatusRejected, Reason: RejectReason}
	} else if target, err := deeplink.Resolve(payload); err != nil {
		out = Outcome{Status: StatusPresentedError, Reason: err.Error()}
	} else {
		d.nav.Navigate(target)
		out = Outcome{Status: StatusNavigated, Target: target}
	}

	ct := "app_link_gate"
	scansTotal.WithLabelValues("restricted", ct, string(out.Status)).Inc()
	d.log.Debug().
		Bool("valid", valid).
		Str("outcome", string(out.Status)).
		Msg("restricted scan dispatched")
	return out
}

// Restart forces an immediate Suppressed → Idle transition and signals the
// camera collaborator. Idempotent.
func (d *RestrictedDispatcher) Restart() {
	d.gate.reset()
	d.camera.Restart()
}

// History returns a snapshot of the restricted scan audit, newest-first.
func (d *RestrictedDispatcher) History() []Entry {
	return d.history.Entries()
}
