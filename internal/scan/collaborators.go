// Package scan implements the stateful dispatch core: it consumes decoded
// payload events, applies the duplicate-scan suppression window, classifies
// payloads, and routes each result to the action executor (auto types), the
// in-app navigator (deep links), or presentation (manual types). It also
// owns the two bounded, in-memory scan histories (general and restricted).
//
// This file defines the collaborator seams the dispatchers call out to.
// The core never performs the side effects itself: opening a URL, dialing,
// or switching screens happens on the client; the defaults here record the
// directive and let the HTTP layer carry it back in the response.
package scan

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/khateebdev-stack/qrcode/internal/classify"
	"github.com/khateebdev-stack/qrcode/internal/deeplink"
)

// Executor performs the concrete side effect for an auto-dispatched payload
// (open URL, dialer, SMS composer, mail client). Implementations must be
// safe for concurrent use. A returned error is absorbed by the dispatcher
// and converted into a presented outcome; it never halts the dispatch loop.
type Executor interface {
	Execute(ctx context.Context, payload string, ct classify.ContentType) error
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, payload string, ct classify.ContentType) error

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, payload string, ct classify.ContentType) error {
	return f(ctx, payload, ct)
}

// Navigator performs the in-app screen transition for a resolved deep link.
// Fire-and-forget: the dispatcher consumes no return value.
type Navigator interface {
	Navigate(target *deeplink.Target)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(target *deeplink.Target)

// Navigate calls f.
func (f NavigatorFunc) Navigate(target *deeplink.Target) { f(target) }

// Camera is the capture-session collaborator. Restart signals it to
// re-acquire a session; how re-acquisition happens is its business.
type Camera interface {
	Restart()
}

// CameraFunc adapts a function to the Camera interface.
type CameraFunc func()

// Restart calls f.
func (f CameraFunc) Restart() { f() }

// LogExecutor records the action directive without performing it. It is the
// server-side default: the mobile client executes the action from the
// dispatch response.
type LogExecutor struct {
	Log zerolog.Logger
}

// Execute logs the directive and reports success.
func (e LogExecutor) Execute(_ context.Context, payload string, ct classify.ContentType) error {
	e.Log.Info().
		Str("content_type", string(ct)).
		Int("payload_len", len(payload)).
		Msg("action directive issued")
	return nil
}

// LogNavigator records the navigation target without performing it.
type LogNavigator struct {
	Log zerolog.Logger
}

// Navigate logs the target screen.
func (n LogNavigator) Navigate(target *deeplink.Target) {
	n.Log.Info().
		Str("screen", target.Screen).
		Interface("params", target.Params).
		Msg("navigation directive issued")
}

// NopCamera ignores restart signals. Used when no capture session exists
// server-side.
type NopCamera struct{}

// Restart does nothing.
func (NopCamera) Restart() {}
