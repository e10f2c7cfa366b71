package transport

import (
	"strings"
	"testing"

	"github.com/osokin/lingvo/internal/dialog"
)

func TestClassify(t *testing.T) {
	options := []string{"English", "French", "Cancel"}

	tests := []struct {
		name     string
		input    string
		options  []string
		wantKind dialog.Kind
		wantText string
		wantOK   bool
	}{
		{"command", "/start", nil, dialog.KindCommand, "/start", true},
		{"command with args", "  /help me  ", nil, dialog.KindCommand, "/help me", true},
		{"plain message", "what does bonjour mean?", nil, dialog.KindMessage, "what does bonjour mean?", true},
		{"button by number", "2", options, dialog.KindButton, "French", true},
		{"button out of range", "9", options, dialog.KindMessage, "9", true},
		{"number without options", "2", nil, dialog.KindMessage, "2", true},
		{"empty", "   ", nil, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := classify("u1", tt.input, tt.options)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if ev.Kind != tt.wantKind || ev.Text != tt.wantText {
				t.Errorf("got (%v, %q), want (%v, %q)", ev.Kind, ev.Text, tt.wantKind, tt.wantText)
			}
			if ev.UserID != "u1" {
				t.Errorf("user = %q", ev.UserID)
			}
		})
	}
}

func TestRenderTranscriptTail(t *testing.T) {
	lines := []string{"one", "two", "three", "four"}
	got := renderTranscript(lines, 2)
	if strings.Contains(got, "one") || !strings.Contains(got, "four") {
		t.Errorf("transcript = %q, want newest lines only", got)
	}
}

func TestRenderTranscriptPadsShortHistory(t *testing.T) {
	got := renderTranscript([]string{"hello"}, 3)
	if n := strings.Count(got, "\n"); n != 2 {
		t.Errorf("line breaks = %d, want 2", n)
	}
}

func TestRenderOptionsEmpty(t *testing.T) {
	if renderOptions(nil) != "" {
		t.Error("expected empty bar for no options")
	}
}
