// Package classify implements the QR payload classifier: a total,
// deterministic function from a decoded string to a content type and a
// suggested action label, plus the fixed auto/manual dispatch policy.
//
// Rules are applied in strict priority order (first match wins), because a
// malformed payload could in principle match more than one loose pattern.
// The URL rule is case-insensitive while every other prefix check is
// case-sensitive; this asymmetry is intentional and pinned by tests.
package classify

import "strings"

// ContentType tags a decoded payload with one of the known categories.
// Classification is total: every input maps to exactly one ContentType,
// with Text as the catch-all, so classification itself never fails.
type ContentType string

const (
	Website       ContentType = "website"
	Phone         ContentType = "phone"
	SMS           ContentType = "sms"
	Email         ContentType = "email"
	AppDeepLink   ContentType = "app_deep_link"
	ContactCard   ContentType = "contact_card"
	CalendarEvent ContentType = "calendar_event"
	Text          ContentType = "text"
)

// AppLinkScheme is the URL scheme reserved for in-app deep links.
const AppLinkScheme = "qrcodeapp://"

// Result pairs the assigned content type with a human-readable action label
// shown to the user (or used as the auto-action description).
type Result struct {
	ContentType     ContentType `json:"content_type"`
	SuggestedAction string      `json:"suggested_action"`
}

// Classify assigns exactly one content type to the payload. It performs no
// I/O and holds no state.
func Classify(payload string) Result {
	switch {
	case hasURLScheme(payload):
		return Result{Website, "Open in browser"}
	case strings.HasPrefix(payload, "tel:"):
		return Result{Phone, "Call number"}
	case strings.HasPrefix(payload, "sms:"):
		return Result{SMS, "Compose SMS"}
	case strings.HasPrefix(payload, "mailto:"):
		return Result{Email, "Compose email"}
	case strings.HasPrefix(payload, "BEGIN:VCARD") && strings.Contains(payload, "END:VCARD"):
		return Result{ContactCard, "View contact"}
	case strings.HasPrefix(payload, "BEGIN:VEVENT") && strings.Contains(payload, "END:VEVENT"):
		return Result{CalendarEvent, "View event"}
	case strings.HasPrefix(payload, AppLinkScheme):
		return Result{AppDeepLink, "Open in app"}
	default:
		return Result{Text, "Copy or search"}
	}
}

// IsAppLink reports whether the payload carries the in-app deep-link scheme.
// It is the single gate used by the restricted dispatcher.
func IsAppLink(payload string) bool {
	return strings.HasPrefix(payload, AppLinkScheme)
}

// IsAuto reports whether a content type is dispatched without user
// confirmation. The partition is exhaustive and fixed at build time:
// auto = {Website, Phone, SMS, Email, AppDeepLink},
// manual = {ContactCard, CalendarEvent, Text}.
func IsAuto(ct ContentType) bool {
	switch ct {
	case Website, Phone, SMS, Email, AppDeepLink:
		return true
	default:
		return false
	}
}

// hasURLScheme matches http:// and https:// case-insensitively. Only the
// URL rule tolerates mixed-case schemes; see the package comment.
func hasURLScheme(s string) bool {
	if len(s) > 8 {
		s = s[:8]
	}
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
