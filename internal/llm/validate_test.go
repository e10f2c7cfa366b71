package llm

import (
	"errors"
	"testing"
)

var wordPairSchema = &Schema{
	Name:        "word-pair-test",
	Description: "A vocabulary word with its translation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"term":        map[string]any{"type": "string"},
			"translation": map[string]any{"type": "string"},
		},
		"required":             []any{"term", "translation"},
		"additionalProperties": false,
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"valid pair", `{"term":"cat","translation":"chat"}`, false},
		{"missing field", `{"term":"cat"}`, true},
		{"wrong type", `{"term":1,"translation":"chat"}`, true},
		{"not json", `(cat, chat)`, true},
		{"extra field", `{"term":"cat","translation":"chat","x":1}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(wordPairSchema, tt.text)
			if tt.wantErr {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Fatalf("got %v, want ErrInvalidResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, "anything at all"); err != nil {
		t.Fatalf("nil schema should pass: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"unknown provider", Config{Provider: "gigachat"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
