package dialog

import "strings"

// Language is one selectable target language.
type Language struct {
	Code  string
	Label string
}

// Languages is the fixed set of supported target languages.
var Languages = []Language{
	{Code: "en", Label: "English"},
	{Code: "fr", Label: "French"},
	{Code: "it", Label: "Italian"},
	{Code: "de", Label: "German"},
	{Code: "es", Label: "Spanish"},
}

// Levels is the fixed set of proficiency tiers, in ascending order.
var Levels = []string{"beginner", "elementary", "intermediate", "advanced"}

// matchLanguage resolves user input (code or label, any case) to a
// language code.
func matchLanguage(input string) (string, bool) {
	s := strings.TrimSpace(input)
	for _, l := range Languages {
		if strings.EqualFold(s, l.Code) || strings.EqualFold(s, l.Label) {
			return l.Code, true
		}
	}
	return "", false
}

// matchLevel resolves user input to a proficiency tier.
func matchLevel(input string) (string, bool) {
	s := strings.TrimSpace(input)
	for _, l := range Levels {
		if strings.EqualFold(s, l) {
			return l, true
		}
	}
	return "", false
}

// languageLabel returns the display label for a code, or the code
// itself when unknown.
func languageLabel(code string) string {
	for _, l := range Languages {
		if l.Code == code {
			return l.Label
		}
	}
	return code
}

// isCancel reports whether input is the cancel token or button.
func isCancel(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "cancel")
}
