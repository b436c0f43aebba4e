// Package privacy removes personally identifiable information from extracted
// document text before any LLM sees it. The primary path is the remote
// removal service; a local regex filter covers outages and deployments
// without the external service.
package privacy

import "context"

// Placeholder tokens the filter substitutes for detected PII. The set is
// fixed: downstream prompts and the frontend both key on these exact strings.
const (
	PlaceholderName           = "[NAME]"
	PlaceholderDoctorName     = "[DOCTOR_NAME]"
	PlaceholderPatientName    = "[PATIENT_NAME]"
	PlaceholderBirthdate      = "[BIRTHDATE]"
	PlaceholderDate           = "[DATE]"
	PlaceholderPhone          = "[PHONE]"
	PlaceholderFax            = "[FAX]"
	PlaceholderEmail          = "[EMAIL]"
	PlaceholderAddress        = "[ADDRESS]"
	PlaceholderPLZCity        = "[PLZ_CITY]"
	PlaceholderTaxID          = "[TAX_ID]"
	PlaceholderSocialSecurity = "[SOCIAL_SECURITY]"
	PlaceholderInsuranceID    = "[INSURANCE_ID]"
	PlaceholderPatientID      = "[PATIENT_ID]"
	PlaceholderReferenceID    = "[REFERENCE_ID]"
	PlaceholderIBAN           = "[IBAN]"
	PlaceholderCreditCard     = "[CREDIT_CARD]"
	PlaceholderIPAddress      = "[IP_ADDRESS]"
	PlaceholderURL            = "[URL]"
	PlaceholderLocation       = "[LOCATION]"
	PlaceholderOrganization   = "[ORGANIZATION]"
	PlaceholderTime           = "[TIME]"
)

// Result is the outcome of a removal pass.
type Result struct {
	CleanedText      string
	ProcessingTimeMS int64
	LanguageUsed     string

	// Degraded is true when the local fallback produced the result because
	// the remote service was disabled, unreachable, or circuit-broken.
	Degraded bool

	// Placeholders counts substitutions by placeholder token.
	Placeholders map[string]int
}

// Filter removes PII from text. Implementations must be idempotent
// (filtering already-filtered text changes nothing) and must never rewrite
// strings listed in protectedTerms.
type Filter interface {
	RemovePII(ctx context.Context, text, language string, protectedTerms []string) (*Result, error)
}
