package scan

import (
	"context"
	"testing"
	"time"

	"github.com/khateebdev-stack/qrcode/internal/deeplink"
)

func TestRestrictedDispatcher_RejectsNonAppPayloads(t *testing.T) {
	nav := &recordingNav{}
	d := NewRestrictedDispatcher(Config{Window: time.Hour, Navigator: nav})

	tests := []string{
		"https://example.com",
		"tel:123",
		"plain text",
		"QRCODEAPP://home", // scheme gate is case-sensitive
	}
	for _, payload := range tests {
		out := d.OnDecode(context.Background(), payload)
		if out.Status != StatusRejected {
			t.Fatalf("OnDecode(%q) status = %q, want %q", payload, out.Status, StatusRejected)
		}
		if out.Reason != RejectReason {
			t.Fatalf("OnDecode(%q) reason = %q, want %q", payload, out.Reason, RejectReason)
		}
		d.Restart()
	}
	if len(nav.targets) != 0 {
		t.Fatalf("navigator called for rejected payloads: %d", len(nav.targets))
	}

	// Every rejection is still audited, flagged invalid.
	entries := d.History()
	if len(entries) != len(tests) {
		t.Fatalf("audit length = %d, want %d", len(entries), len(tests))
	}
	for _, e := range entries {
		if e.Valid == nil || *e.Valid {
			t.Fatalf("rejected entry %q not flagged invalid: %+v", e.Payload, e.Valid)
		}
		if e.ContentType != "" {
			t.Fatalf("restricted entry carries a content type: %q", e.ContentType)
		}
	}
}

func TestRestrictedDispatcher_NavigatesAppLinks(t *testing.T) {
	nav := &recordingNav{}
	d := NewRestrictedDispatcher(Config{Window: time.Hour, Navigator: nav})

	out := d.OnDecode(context.Background(), "qrcodeapp://user/42")
	if out.Status != StatusNavigated {
		t.Fatalf("status = %q, want %q", out.Status, StatusNavigated)
	}
	if out.Target == nil || out.Target.Screen != deeplink.ScreenUserDetail {
		t.Fatalf("target = %+v", out.Target)
	}
	if len(nav.targets) != 1 {
		t.Fatalf("navigator called %d times, want 1", len(nav.targets))
	}

	entries := d.History()
	if len(entries) != 1 || entries[0].Valid == nil || !*entries[0].Valid {
		t.Fatalf("accepted entry not flagged valid: %+v", entries)
	}
}

func TestRestrictedDispatcher_SuppressionWindow(t *testing.T) {
	d := NewRestrictedDispatcher(Config{Window: 60 * time.Millisecond})
	ctx := context.Background()

	d.OnDecode(ctx, "qrcodeapp://home")
	out := d.OnDecode(ctx, "qrcodeapp://users")
	if out.Status != StatusIgnored {
		t.Fatalf("suppressed scan status = %q, want %q", out.Status, StatusIgnored)
	}
	if got := len(d.History()); got != 1 {
		t.Fatalf("audit length after drop = %d, want 1", got)
	}

	time.Sleep(100 * time.Millisecond)
	if out := d.OnDecode(ctx, "qrcodeapp://users"); out.Status != StatusNavigated {
		t.Fatalf("post-window scan status = %q", out.Status)
	}
}

// The two dispatch modes never share an audit trail.
func TestDispatchers_HistoriesAreIndependent(t *testing.T) {
	general := NewDispatcher(Config{Window: time.Hour, Executor: &recordingExec{}})
	restricted := NewRestrictedDispatcher(Config{Window: time.Hour})
	ctx := context.Background()

	general.OnDecode(ctx, "https://example.com")
	restricted.OnDecode(ctx, "qrcodeapp://home")

	if len(general.History()) != 1 || len(restricted.History()) != 1 {
		t.Fatalf("history lengths = %d/%d, want 1/1",
			len(general.History()), len(restricted.History()))
	}
	if general.History()[0].Payload == restricted.History()[0].Payload {
		t.Fatalf("histories appear shared")
	}
}
