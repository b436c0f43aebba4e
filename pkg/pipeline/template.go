package pipeline

import (
	"fmt"
	"strings"
	"unicode"
)

// Reserved context variable names the engine populates itself.
const (
	VarInputText    = "input_text"
	VarOriginalText = "original_text"
	VarOCRText      = "ocr_text"
	VarTargetLang   = "target_language"
	VarDocumentType = "document_type"
)

// optionalVars may be absent from the context; an unresolved reference to
// one of them substitutes to the empty string instead of failing the step.
var optionalVars = map[string]bool{
	VarTargetLang:   true,
	VarDocumentType: true,
}

// MissingVariableError reports a template placeholder with no value in the
// execution context. Steps fail closed on it rather than sending a prompt
// with a literal placeholder to the model.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("prompt template references undefined variable {%s}", e.Name)
}

// Substitute renders a prompt template against the context. "{{" and "}}"
// are escapes for literal braces; "{name}" is replaced by the context value.
// Values arrive brace-doubled from the sanitizer, and insertion is the end
// of template parsing, so the doubling is undone here and document text
// reaches the model verbatim. An unmatched "{" or an undefined non-optional
// variable is an error.
func Substitute(template string, vars map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated placeholder at offset %d", i)
			}
			name := template[i+1 : i+1+end]
			if !validVarName(name) {
				return "", fmt.Errorf("invalid placeholder name %q", name)
			}
			val, ok := vars[name]
			if !ok {
				if !optionalVars[name] {
					return "", &MissingVariableError{Name: name}
				}
				val = ""
			}
			b.WriteString(unescapeBraces(val))
			i += end + 2
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("unmatched '}' at offset %d", i)
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

// unescapeBraces collapses the sanitizer's doubled braces back to single
// ones. Single braces pass through untouched.
func unescapeBraces(val string) string {
	if !strings.Contains(val, "{{") && !strings.Contains(val, "}}") {
		return val
	}
	val = strings.ReplaceAll(val, "{{", "{")
	return strings.ReplaceAll(val, "}}", "}")
}

func validVarName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
