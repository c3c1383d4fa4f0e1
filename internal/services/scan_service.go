// Package services – ScanService
//
// This file implements the ScanService, which owns the two dispatcher
// instances (general and restricted) for the lifetime of the process and
// fronts them for the HTTP layer. Each dispatch is wrapped in an OTel span
// so scan traffic shows up alongside HTTP traces.
//
// The service adds no policy of its own: suppression, classification, and
// routing all live in the scan package. Histories remain in-memory and are
// lost on process restart.
package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khateebdev-stack/qrcode/internal/scan"
)

// tracerName identifies scan spans in trace backends.
const tracerName = "github.com/khateebdev-stack/qrcode/internal/services"

// ScanService fronts the general and restricted dispatchers.
type ScanService struct {
	General    *scan.Dispatcher
	Restricted *scan.RestrictedDispatcher
}

// NewScanService constructs both dispatchers from the same configuration.
// They share the window and collaborators but nothing else: state and
// histories are fully independent.
func NewScanService(cfg scan.Config) *ScanService {
	return &ScanService{
		General:    scan.NewDispatcher(cfg),
		Restricted: scan.NewRestrictedDispatcher(cfg),
	}
}

// Decode dispatches one decoded payload through the general dispatcher.
func (s *ScanService) Decode(ctx context.Context, payload string) scan.Outcome {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "scan.dispatch")
	defer span.End()

	out := s.General.OnDecode(ctx, payload)
	span.SetAttributes(
		attribute.String("scan.mode", "general"),
		attribute.String("scan.outcome", string(out.Status)),
	)
	return out
}

// DecodeRestricted dispatches one decoded payload through the app-only
// dispatcher.
func (s *ScanService) DecodeRestricted(ctx context.Context, payload string) scan.Outcome {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "scan.dispatch.restricted")
	defer span.End()

	out := s.Restricted.OnDecode(ctx, payload)
	span.SetAttributes(
		attribute.String("scan.mode", "restricted"),
		attribute.String("scan.outcome", string(out.Status)),
	)
	return out
}

// History returns the general scan history, newest-first.
func (s *ScanService) History() []scan.Entry { return s.General.History() }

// RestrictedHistory returns the restricted audit history, newest-first.
func (s *ScanService) RestrictedHistory() []scan.Entry { return s.Restricted.History() }

// Restart forces the general dispatcher back to Idle.
func (s *ScanService) Restart() { s.General.Restart() }

// RestartRestricted forces the restricted dispatcher back to Idle.
func (s *ScanService) RestartRestricted() { s.Restricted.Restart() }
