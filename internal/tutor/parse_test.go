package tutor

import "testing"

func TestParseWordPair(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		wantTerm        string
		wantTranslation string
		wantErr         bool
	}{
		{"json object", `{"term":"chat","translation":"cat"}`, "chat", "cat", false},
		{"json with whitespace", "  {\"term\": \" chat \", \"translation\": \" cat \"}\n", "chat", "cat", false},
		{"parenthesized", "(chat, cat)", "chat", "cat", false},
		{"parenthesized no space", "(chat,cat)", "chat", "cat", false},
		{"translation with comma", "(doch, but/after all)", "doch", "but/after all", false},
		{"json missing translation", `{"term":"chat"}`, "", "", true},
		{"json empty term", `{"term":"","translation":"cat"}`, "", "", true},
		{"malformed json", `{"term":`, "", "", true},
		{"no separator", "(chatcat)", "", "", true},
		{"prose reply", "A good word to learn is chat, meaning cat.", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := ParseWordPair(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseWordPair(%q) = %+v, want error", tt.text, pair)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWordPair(%q): %v", tt.text, err)
			}
			if pair.Term != tt.wantTerm || pair.Translation != tt.wantTranslation {
				t.Errorf("got (%q, %q), want (%q, %q)",
					pair.Term, pair.Translation, tt.wantTerm, tt.wantTranslation)
			}
		})
	}
}

func TestIsYes(t *testing.T) {
	yes := []string{"yes", "Yes", "YES", " yes ", "yes.", "Yes!"}
	for _, s := range yes {
		if !isYes(s) {
			t.Errorf("isYes(%q) = false, want true", s)
		}
	}
	no := []string{"no", "Yes, that is correct", "maybe", "yess", "", "the answer is yes"}
	for _, s := range no {
		if isYes(s) {
			t.Errorf("isYes(%q) = true, want false", s)
		}
	}
}
