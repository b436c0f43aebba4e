package guard

import (
	"log/slog"
	"regexp"
)

// Severity grades an injection report.
type Severity string

// Severity levels, ordered NONE < LOW < MEDIUM < HIGH.
const (
	SeverityNone   Severity = "NONE"
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Category groups injection rules by attack technique.
type Category string

// Rule categories.
const (
	CategoryRoleManipulation    Category = "role_manipulation"
	CategoryInstructionOverride Category = "instruction_override"
	CategoryBoundaryAttack      Category = "boundary_attack"
	CategoryDataExfiltration    Category = "data_exfiltration"
	CategoryEncodingEvasion     Category = "encoding_evasion"
	CategoryFormatString        Category = "format_string"
)

// injectionRule is a compact table entry; compiled once at package init.
type injectionRule struct {
	id          string
	category    Category
	pattern     string
	description string
}

// Detection is one matched rule.
type Detection struct {
	RuleID      string   `json:"rule_id"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

// Report is the result of DetectInjection. Detection is advisory and never
// blocks a step; callers log the report and proceed.
type Report struct {
	Severity   Severity
	Detections []Detection
}

// injectionRules holds the 16 built-in detection patterns in 6 categories.
// Patterns match case-insensitively over medical OCR text, which is noisy;
// each rule anchors on phrasing a document scan has no reason to contain.
var injectionRules = []injectionRule{
	// role manipulation
	{"INJ-001", CategoryRoleManipulation, `(?i)\byou\s+are\s+(now|no\s+longer)\b`, "role reassignment"},
	{"INJ-002", CategoryRoleManipulation, `(?i)\b(act|behave|respond)\s+as\s+(if\s+you\s+(are|were)|an?\s+)`, "persona override"},
	{"INJ-003", CategoryRoleManipulation, `(?i)\bpretend\s+(to\s+be|you\s+(are|have))\b`, "pretend directive"},

	// instruction override
	{"INJ-004", CategoryInstructionOverride, `(?i)\b(ignore|disregard|forget)\s+(all\s+|any\s+)?(previous|prior|above|earlier)\s+(instructions?|prompts?|rules?|context)\b`, "ignore-previous-instructions"},
	{"INJ-005", CategoryInstructionOverride, `(?i)\bnew\s+instructions?\s*:`, "inline instruction block"},
	{"INJ-006", CategoryInstructionOverride, `(?i)\b(override|overrule|supersede)\s+(the\s+)?(system|safety|previous)\b`, "explicit override"},
	{"INJ-007", CategoryInstructionOverride, `(?i)\bdo\s+not\s+(follow|obey|apply)\s+(the\s+)?(system|previous|above)\b`, "negated compliance"},

	// boundary attacks
	{"INJ-008", CategoryBoundaryAttack, `(?i)<\s*/?\s*(system|assistant|im_start|im_end|instruction)\s*>`, "pseudo role tag"},
	{"INJ-009", CategoryBoundaryAttack, `(?i)\[\s*(system|assistant|inst)\s*\]`, "bracketed role marker"},
	{"INJ-010", CategoryBoundaryAttack, "(?i)```\\s*(system|assistant)\\b", "fenced role block"},

	// data exfiltration
	{"INJ-011", CategoryDataExfiltration, `(?i)\b(reveal|show|print|output|repeat|display)\b.{0,40}\b(system\s+prompt|instructions?|initial\s+prompt)\b`, "system prompt extraction"},
	{"INJ-012", CategoryDataExfiltration, `(?i)\bwhat\s+(are|were)\s+your\s+(instructions?|rules?|guidelines)\b`, "instruction probing"},
	{"INJ-013", CategoryDataExfiltration, `(?i)\b(api[_\s-]?key|secret|password|token)\b.{0,30}\b(send|post|exfiltrate|include)\b`, "credential exfiltration"},

	// encoding evasion
	{"INJ-014", CategoryEncodingEvasion, `(?i)\b(base64|rot13|hex)[\s-]?(decode|encoded?)\b`, "encoded payload marker"},
	{"INJ-015", CategoryEncodingEvasion, `(?:\\u[0-9a-fA-F]{4}){4,}`, "unicode escape run"},

	// format-string attacks
	{"INJ-016", CategoryFormatString, `\{\{?\s*[a-zA-Z_][a-zA-Z0-9_]*\s*\}?\}|%\([a-zA-Z_][a-zA-Z0-9_]*\)s`, "template placeholder smuggling"},
}

type compiledRule struct {
	injectionRule
	re *regexp.Regexp
}

var compiledRules = compileRules()

func compileRules() []compiledRule {
	out := make([]compiledRule, 0, len(injectionRules))
	for _, r := range injectionRules {
		out = append(out, compiledRule{injectionRule: r, re: regexp.MustCompile(r.pattern)})
	}
	return out
}

// DetectInjection scans untrusted text against the rule table and grades the
// result. Severity follows match count (0 NONE, 1 LOW, 2-3 MEDIUM, >=4 HIGH)
// with a floor of MEDIUM when any exfiltration or format-string rule fires.
func DetectInjection(text string) Report {
	if text == "" {
		return Report{Severity: SeverityNone}
	}

	var detections []Detection
	boost := false
	for _, r := range compiledRules {
		if r.re.MatchString(text) {
			detections = append(detections, Detection{
				RuleID:      r.id,
				Category:    r.category,
				Description: r.description,
			})
			if r.category == CategoryDataExfiltration || r.category == CategoryFormatString {
				boost = true
			}
		}
	}

	sev := severityForCount(len(detections))
	if boost && severityRank(sev) < severityRank(SeverityMedium) {
		sev = SeverityMedium
	}
	return Report{Severity: sev, Detections: detections}
}

func severityForCount(n int) Severity {
	switch {
	case n == 0:
		return SeverityNone
	case n == 1:
		return SeverityLow
	case n <= 3:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

func severityRank(s Severity) int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether s is at or above min in the severity order.
func (s Severity) AtLeast(min Severity) bool {
	return severityRank(s) >= severityRank(min)
}

// LogSecurityEvent emits the single-line structured security event for a
// positive injection report. Silent for NONE.
func LogSecurityEvent(logger *slog.Logger, processingID, stepName string, report Report) {
	if report.Severity == SeverityNone {
		return
	}
	logger.Warn("SECURITY:PROMPT_INJECTION_DETECTED",
		"processing_id", processingID,
		"step", stepName,
		"severity", report.Severity,
		"patterns", len(report.Detections))
}
