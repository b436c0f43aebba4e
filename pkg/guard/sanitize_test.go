package guard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeForPrompt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		modified bool
	}{
		{
			name:  "plain text unchanged",
			input: "Diagnose: Morbus Parkinson",
			want:  "Diagnose: Morbus Parkinson",
		},
		{
			name:     "braces doubled",
			input:    "value {x} and {y}",
			want:     "value {{x}} and {{y}}",
			modified: true,
		},
		{
			name:     "zero width space stripped",
			input:    "Arzt\u200Bbrief",
			want:     "Arztbrief",
			modified: true,
		},
		{
			name:     "bom and directional marks stripped",
			input:    "\uFEFF\u202Etext\u200F",
			want:     "text",
			modified: true,
		},
		{
			name:     "nbsp becomes space",
			input:    "Betrag: 123\u00A0EUR",
			want:     "Betrag: 123 EUR",
			modified: true,
		},
		{
			name:     "line separator becomes newline",
			input:    "Zeile1\u2028Zeile2",
			want:     "Zeile1\nZeile2",
			modified: true,
		},
		{
			name:     "paragraph separator becomes blank line",
			input:    "Absatz1\u2029Absatz2",
			want:     "Absatz1\n\nAbsatz2",
			modified: true,
		},
		{
			name:     "nfkc folds fullwidth",
			input:    "\uFF29gnore",
			want:     "Ignore",
			modified: true,
		},
		{
			name:     "fullwidth braces end up doubled",
			input:    "\uFF5Binput_text\uFF5D",
			want:     "{{input_text}}",
			modified: true,
		},
		{
			name:     "small braces end up doubled",
			input:    "\uFE5Binput_text\uFE5C",
			want:     "{{input_text}}",
			modified: true,
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, modified := SanitizeForPrompt(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.modified, modified)
		})
	}
}

func TestSanitizeForPromptInvariants(t *testing.T) {
	inputs := []string{
		"{{already}} escaped",
		"mixed \u200B{inject}\u200D tail",
		"Sehr geehrte Kollegen,\nDiagnose: {Morbus}",
		"fullwidth \uFF5Battack\uFF5D in disguise",
	}
	for _, in := range inputs {
		out, _ := SanitizeForPrompt(in)

		// No invisible runes survive.
		for r := range invisibleRunes {
			if r == '\u00A0' || r == '\u2028' {
				continue // replaced, not removed
			}
			assert.NotContains(t, out, string(r))
		}

		// Every brace is doubled.
		stripped := strings.ReplaceAll(strings.ReplaceAll(out, "{{", ""), "}}", "")
		assert.NotContains(t, stripped, "{")
		assert.NotContains(t, stripped, "}")

		// Idempotent modulo brace re-escaping has no surprises: a second pass
		// only doubles braces again, nothing else changes.
		again, _ := SanitizeForPrompt(out)
		assert.Equal(t, strings.ReplaceAll(strings.ReplaceAll(out, "{", "{{"), "}", "}}"), again)
	}
}
