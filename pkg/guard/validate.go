package guard

import (
	"fmt"
	"strings"
	"unicode"
)

// leakageWindow is the number of consecutive system-prompt words that must
// appear verbatim in an output to count as leakage.
const leakageWindow = 4

// minLeakagePromptWords: shorter system prompts produce too many false
// positives (e.g. "Antworte auf Deutsch") and are skipped.
const minLeakagePromptWords = 5

// lengthRatioWarn is the output/input size ratio past which a warning is
// logged. Never fails the step.
const lengthRatioWarn = 10

// FirstToken returns the first run of letters, digits or underscores in s,
// skipping any leading punctuation or markup. Stop-condition and branching
// matches are defined over this token, case-insensitively.
func FirstToken(s string) string {
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return s[start:i]
		}
	}
	if start >= 0 {
		return s[start:]
	}
	return ""
}

// FirstTokenMatches reports whether the first alphanumeric token of output
// equals one of the candidates, case-insensitively, and returns the matched
// candidate in its canonical spelling.
func FirstTokenMatches(output string, candidates []string) (string, bool) {
	token := FirstToken(output)
	if token == "" {
		return "", false
	}
	for _, c := range candidates {
		if strings.EqualFold(token, c) {
			return c, true
		}
	}
	return "", false
}

// DetectPromptLeakage reports whether any 4-word window of the system prompt
// appears verbatim in the output. Comparison is case-insensitive over
// whitespace-normalized text.
func DetectPromptLeakage(output, systemPrompt string) bool {
	if systemPrompt == "" || output == "" {
		return false
	}
	words := strings.Fields(normalizeForLeakage(systemPrompt))
	if len(words) < minLeakagePromptWords {
		return false
	}
	haystack := normalizeForLeakage(output)
	for i := 0; i+leakageWindow <= len(words); i++ {
		window := strings.Join(words[i:i+leakageWindow], " ")
		if strings.Contains(haystack, window) {
			return true
		}
	}
	return false
}

func normalizeForLeakage(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// ValidationResult is the verdict of ValidateStepOutput. Invalid results are
// retryable under the step's own retry policy; Warning is advisory only.
type ValidationResult struct {
	Valid   bool
	Message string
	Warning string
}

// ValidateStepOutput composes the per-step output checks: non-empty output,
// expected first token (when the step declares one), length-ratio anomaly,
// and system-prompt leakage.
//
// expectedValues is the union of the step's stop values, allowed continue
// values and (for the branching step) the known class keys; empty slice
// disables the check.
func ValidateStepOutput(output, inputText string, expectedValues []string, systemPrompt string) ValidationResult {
	if strings.TrimSpace(output) == "" {
		return ValidationResult{Valid: false, Message: "model returned empty output"}
	}

	if len(expectedValues) > 0 {
		if _, ok := FirstTokenMatches(output, expectedValues); !ok {
			return ValidationResult{
				Valid: false,
				Message: fmt.Sprintf("first token %q is not an expected value (%s)",
					FirstToken(output), strings.Join(expectedValues, ", ")),
			}
		}
	}

	if DetectPromptLeakage(output, systemPrompt) {
		return ValidationResult{Valid: false, Message: "output contains a verbatim system prompt fragment"}
	}

	var warning string
	if len(inputText) > 0 && len(output) > lengthRatioWarn*len(inputText) {
		warning = fmt.Sprintf("output is %dx larger than input", len(output)/len(inputText))
	}

	return ValidationResult{Valid: true, Warning: warning}
}
