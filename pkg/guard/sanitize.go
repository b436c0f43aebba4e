// Package guard is the prompt-injection defense layer wrapped around every
// LLM invocation: input sanitization, pattern-based injection detection,
// system-prompt leakage checks, and step output validation.
package guard

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// invisibleRunes are the 20 invisible or direction-control characters
// stripped from untrusted text before it is substituted into a prompt.
// NBSP and the line/paragraph separators are replaced with plain
// equivalents rather than removed so word boundaries survive.
var invisibleRunes = map[rune]string{
	'\u200B': "",   // zero width space
	'\u200C': "",   // zero width non-joiner
	'\u200D': "",   // zero width joiner
	'\u200E': "",   // left-to-right mark
	'\u200F': "",   // right-to-left mark
	'\u202A': "",   // left-to-right embedding
	'\u202B': "",   // right-to-left embedding
	'\u202C': "",   // pop directional formatting
	'\u202D': "",   // left-to-right override
	'\u202E': "",   // right-to-left override
	'\u2060': "",   // word joiner
	'\u2062': "",   // invisible times
	'\u2063': "",   // invisible separator
	'\u2066': "",   // left-to-right isolate
	'\u2067': "",   // right-to-left isolate
	'\uFEFF': "",   // byte order mark
	'\u00AD': "",   // soft hyphen
	'\u00A0': " ",  // no-break space
	'\u2028': "\n", // line separator
}

// SanitizeForPrompt prepares untrusted text for substitution into a prompt
// template: the text is NFKC-normalized, the invisible-character set is
// stripped, and braces are doubled so they cannot open a placeholder.
// Normalization runs first because NFKC folds fullwidth and small bracket
// forms into plain braces, which must end up doubled like any other.
// The second return value reports whether the text was changed.
func SanitizeForPrompt(text string) (string, bool) {
	normalized := norm.NFKC.String(text)

	var b strings.Builder
	b.Grow(len(normalized))

	for _, r := range normalized {
		switch r {
		case '{':
			b.WriteString("{{")
		case '}':
			b.WriteString("}}")
		case '\u2029': // paragraph separator
			b.WriteString("\n\n")
		default:
			if repl, ok := invisibleRunes[r]; ok {
				b.WriteString(repl)
				continue
			}
			b.WriteRune(r)
		}
	}

	out := b.String()
	return out, out != text
}
