package classify

import "testing"

func TestClassify_PriorityRules(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    ContentType
	}{
		{"https url", "https://example.com", Website},
		{"http url", "http://example.com", Website},
		{"uppercase scheme", "HTTPS://EXAMPLE.COM", Website},
		{"mixed case scheme", "HtTp://example.com", Website},
		{"tel", "tel:123", Phone},
		{"sms", "sms:+15551234567", SMS},
		{"mailto", "mailto:a@b.com", Email},
		{"vcard", "BEGIN:VCARD\nFN:Ada\nEND:VCARD", ContactCard},
		{"vevent", "BEGIN:VEVENT\nSUMMARY:x\nEND:VEVENT", CalendarEvent},
		{"app link", "qrcodeapp://user/42", AppDeepLink},
		{"plain text", "random text", Text},
		{"empty string", "", Text},
		{"url beats text", "http://", Website},
		{"vcard without end is text", "BEGIN:VCARD\nFN:Ada", Text},
		{"vevent without end is text", "BEGIN:VEVENT\nSUMMARY:x", Text},
		{"end without begin is text", "hello END:VCARD", Text},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.payload)
			if got.ContentType != tt.want {
				t.Fatalf("Classify(%q).ContentType = %q, want %q", tt.payload, got.ContentType, tt.want)
			}
			if got.SuggestedAction == "" {
				t.Fatalf("Classify(%q) returned empty suggested action", tt.payload)
			}
		})
	}
}

// Only the URL rule is case-insensitive; every other prefix is matched
// exactly. Pinned so a future normalization is a deliberate change.
func TestClassify_PrefixCaseSensitivity(t *testing.T) {
	tests := []struct {
		payload string
		want    ContentType
	}{
		{"TEL:123", Text},
		{"Sms:123", Text},
		{"MAILTO:a@b.com", Text},
		{"QRCODEAPP://home", Text},
		{"begin:vcard x end:vcard", Text},
	}
	for _, tt := range tests {
		if got := Classify(tt.payload); got.ContentType != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.payload, got.ContentType, tt.want)
		}
	}
}

func TestIsAppLink(t *testing.T) {
	if !IsAppLink("qrcodeapp://user/42") {
		t.Fatalf("expected app link to pass the gate")
	}
	if IsAppLink("https://example.com") {
		t.Fatalf("expected non-app payload to fail the gate")
	}
	if IsAppLink("QRCODEAPP://home") {
		t.Fatalf("gate is case-sensitive by contract")
	}
}

func TestIsAuto_PartitionIsExhaustive(t *testing.T) {
	auto := []ContentType{Website, Phone, SMS, Email, AppDeepLink}
	manual := []ContentType{ContactCard, CalendarEvent, Text}

	for _, ct := range auto {
		if !IsAuto(ct) {
			t.Errorf("IsAuto(%q) = false, want true", ct)
		}
	}
	for _, ct := range manual {
		if IsAuto(ct) {
			t.Errorf("IsAuto(%q) = true, want false", ct)
		}
	}
}
