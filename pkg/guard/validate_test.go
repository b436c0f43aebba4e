package guard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstToken(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ARZTBRIEF", "ARZTBRIEF"},
		{"  ARZTBRIEF\nweiterer Text", "ARZTBRIEF"},
		{"**NICHT_MEDIZINISCH**", "NICHT_MEDIZINISCH"},
		{"\"MEDIZINISCH\".", "MEDIZINISCH"},
		{"- Befund: unauffällig", "Befund"},
		{"...", ""},
		{"", ""},
		{"42 Tage", "42"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FirstToken(tt.input), "input %q", tt.input)
	}
}

func TestFirstTokenMatches(t *testing.T) {
	matched, ok := FirstTokenMatches("arztbrief\nRest", []string{"ARZTBRIEF", "LABORBERICHT"})
	assert.True(t, ok)
	assert.Equal(t, "ARZTBRIEF", matched, "canonical spelling wins")

	_, ok = FirstTokenMatches("UNBEKANNT", []string{"ARZTBRIEF"})
	assert.False(t, ok)

	_, ok = FirstTokenMatches("", []string{"ARZTBRIEF"})
	assert.False(t, ok)
}

func TestDetectPromptLeakage(t *testing.T) {
	systemPrompt := "Du bist ein strenger Prüfer für medizinische Dokumente und antwortest knapp."

	t.Run("verbatim window leaks", func(t *testing.T) {
		out := "Hinweis: ein strenger Prüfer für medizinische Dokumente würde dies ablehnen."
		assert.True(t, DetectPromptLeakage(out, systemPrompt))
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		out := "EIN  STRENGER\nPRÜFER FÜR medizinische inhalte"
		assert.True(t, DetectPromptLeakage(out, systemPrompt))
	})

	t.Run("clean output passes", func(t *testing.T) {
		out := "Der Arztbrief beschreibt eine Parkinson-Diagnose mit Levodopa-Therapie."
		assert.False(t, DetectPromptLeakage(out, systemPrompt))
	})

	t.Run("short system prompt skipped", func(t *testing.T) {
		assert.False(t, DetectPromptLeakage("Antworte nur auf Deutsch bitte", "Antworte nur auf Deutsch"))
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.False(t, DetectPromptLeakage("", systemPrompt))
		assert.False(t, DetectPromptLeakage("output", ""))
	})
}

func TestValidateStepOutput(t *testing.T) {
	t.Run("empty output fails", func(t *testing.T) {
		res := ValidateStepOutput("   \n", "input", nil, "")
		assert.False(t, res.Valid)
	})

	t.Run("expected value match", func(t *testing.T) {
		res := ValidateStepOutput("MEDIZINISCH", "text", []string{"MEDIZINISCH", "NICHT_MEDIZINISCH"}, "")
		assert.True(t, res.Valid)
	})

	t.Run("unexpected value fails retryably", func(t *testing.T) {
		res := ValidateStepOutput("VIELLEICHT", "text", []string{"MEDIZINISCH", "NICHT_MEDIZINISCH"}, "")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Message, "VIELLEICHT")
	})

	t.Run("no expected values disables the check", func(t *testing.T) {
		res := ValidateStepOutput("freier Text jeder Art", "input", nil, "")
		assert.True(t, res.Valid)
	})

	t.Run("length ratio warns but passes", func(t *testing.T) {
		res := ValidateStepOutput(strings.Repeat("lang ", 200), "kurz", nil, "")
		assert.True(t, res.Valid)
		assert.NotEmpty(t, res.Warning)
	})

	t.Run("leakage fails", func(t *testing.T) {
		sys := "Du bist ein strenger Prüfer für medizinische Dokumente."
		out := "Ich bin ein strenger Prüfer für medizinische Dokumente und sage nein."
		res := ValidateStepOutput(out, "input", nil, sys)
		assert.False(t, res.Valid)
	})
}
