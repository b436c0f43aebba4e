package privacy

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// piiPattern pairs a compiled regex with its placeholder. Order matters:
// specific formats (IBAN, insurance numbers) run before generic ones (names,
// plain digit runs) so a value is claimed by its most specific pattern.
type piiPattern struct {
	name        string
	re          *regexp.Regexp
	placeholder string
}

// localPatterns is the German-format detection table for the fallback
// filter. Patterns are written so they can never match a placeholder token
// (all placeholders are bracketed upper-case words; every pattern here
// requires digits, lower-case letters, or punctuation a placeholder lacks).
var localPatterns = []piiPattern{
	{"email", regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`), PlaceholderEmail},
	{"url", regexp.MustCompile(`https?://[^\s<>"]+|www\.[a-z0-9\-]+\.[a-z]{2,}[^\s<>"]*`), PlaceholderURL},
	{"ip_address", regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), PlaceholderIPAddress},
	{"iban", regexp.MustCompile(`\bDE\d{2}[ ]?(?:\d{4}[ ]?){4}\d{2}\b`), PlaceholderIBAN},
	{"credit_card", regexp.MustCompile(`\b(?:\d{4}[ \-]){3}\d{4}\b`), PlaceholderCreditCard},
	{"tax_id", regexp.MustCompile(`\b(?:Steuer-?(?:ID|Nr\.?)|St\.?-?Nr\.?)[:\s]*\d[\d/ ]{8,12}\d\b`), PlaceholderTaxID},
	{"social_security", regexp.MustCompile(`\b\d{2}[ ]?\d{6}[ ]?[A-Z][ ]?\d{3}\b`), PlaceholderSocialSecurity},
	{"insurance_id", regexp.MustCompile(`\b(?:Versichertennr\.?|Versicherten-?Nr\.?|KVNR)[:\s]*[A-Z]\d{9}\b|\b[A-Z]\d{9}\b`), PlaceholderInsuranceID},
	{"patient_id", regexp.MustCompile(`\b(?:Patienten-?(?:ID|Nr\.?)|Pat\.?-?Nr\.?)[:\s]*[A-Za-z0-9\-]{4,}\b`), PlaceholderPatientID},
	{"reference_id", regexp.MustCompile(`\b(?:Aktenzeichen|Fallnummer|Fall-?Nr\.?|Az\.?)[:\s]*[A-Za-z0-9\-/]{4,}\b`), PlaceholderReferenceID},
	{"fax", regexp.MustCompile(`\b(?:Fax|Telefax)[:\s]*(?:\+49[ \-]?|0)[1-9]\d{1,4}[ \-/]?\d{3,}(?:[ \-]?\d+)*\b`), PlaceholderFax},
	{"phone", regexp.MustCompile(`(?:\+49[ \-]?|\b0)[1-9]\d{1,4}[ \-/]\d{3,}(?:[ \-]?\d+)*\b|\b(?:Tel\.?|Telefon)[:\s]*\+?[\d \-/()]{6,}\d`), PlaceholderPhone},
	{"birthdate", regexp.MustCompile(`\b(?:geb\.?(?:oren)?(?:[ ]am)?|Geburtsdatum)[:\s]*\d{1,2}\.\d{1,2}\.\d{2,4}\b`), PlaceholderBirthdate},
	{"date", regexp.MustCompile(`\b\d{1,2}\.\d{1,2}\.\d{4}\b|\b\d{4}-\d{2}-\d{2}\b`), PlaceholderDate},
	{"time", regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?(?:[ ]?Uhr)?\b`), PlaceholderTime},
	{"plz_city", regexp.MustCompile(`\b\d{5}[ ]+\p{Lu}[\p{Ll}ßäöü]+(?:[ \-]\p{Lu}[\p{Ll}ßäöü]+)*\b`), PlaceholderPLZCity},
	{"address", regexp.MustCompile(`\b\p{Lu}[\p{Ll}ßäöü]+(?:straße|strasse|weg|gasse|allee|platz|ring|damm)[ ]+\d+[a-z]?\b`), PlaceholderAddress},
	{"doctor_name", regexp.MustCompile(`\b(?:Dr\.[ ]?(?:med\.[ ]?)?|Prof\.[ ]?(?:Dr\.[ ]?)?(?:med\.[ ]?)?)\p{Lu}[\p{Ll}ßäöü]+(?:[ ]\p{Lu}[\p{Ll}ßäöü]+)?`), PlaceholderDoctorName},
	{"patient_name", regexp.MustCompile(`\b(?:Patient(?:in)?)[:\s]+\p{Lu}[\p{Ll}ßäöü]+(?:[ ]\p{Lu}[\p{Ll}ßäöü]+)?`), PlaceholderPatientName},
	{"name", regexp.MustCompile(`\b(?:Herr[n]?|Frau)[ ]\p{Lu}[\p{Ll}ßäöü]+(?:[ ]\p{Lu}[\p{Ll}ßäöü]+)?`), PlaceholderName},
}

// medicalWhitelist lists terms the filter must never touch even when a name
// pattern would claim them (eponymous diseases and common clinical phrases).
var medicalWhitelist = []string{
	"Morbus Parkinson",
	"Morbus Crohn",
	"Morbus Basedow",
	"Morbus Bechterew",
	"Herr Doktor", // salutation without a name
}

// LocalFilter is the regex-only fallback. It carries no remote dependencies
// and always reports Degraded=true.
type LocalFilter struct{}

// NewLocalFilter builds the fallback filter.
func NewLocalFilter() *LocalFilter {
	return &LocalFilter{}
}

// RemovePII applies the pattern table. Protected terms (caller-supplied plus
// the medical whitelist) are shielded with sentinels for the duration of the
// pass, making the operation safe for medical terminology and idempotent.
func (f *LocalFilter) RemovePII(_ context.Context, text, language string, protectedTerms []string) (*Result, error) {
	start := time.Now()

	shielded, restore := shieldTerms(text, append(protectedTerms, medicalWhitelist...))

	counts := make(map[string]int)
	for _, p := range localPatterns {
		shielded = p.re.ReplaceAllStringFunc(shielded, func(match string) string {
			counts[p.placeholder]++
			return p.placeholder
		})
	}

	cleaned := restore(shielded)
	if language == "" {
		language = "de"
	}
	return &Result{
		CleanedText:      cleaned,
		ProcessingTimeMS: time.Since(start).Milliseconds(),
		LanguageUsed:     language,
		Degraded:         true,
		Placeholders:     counts,
	}, nil
}

// shieldTerms replaces each protected term with an unmatchable sentinel and
// returns a function that restores them. Sentinels use control characters no
// OCR text contains and no pattern matches.
func shieldTerms(text string, terms []string) (string, func(string) string) {
	type shield struct {
		sentinel string
		original string
	}
	var shields []shield
	for i, term := range terms {
		if term == "" || !strings.Contains(text, term) {
			continue
		}
		s := shield{sentinel: fmt.Sprintf("\x00P%d\x00", i), original: term}
		text = strings.ReplaceAll(text, term, s.sentinel)
		shields = append(shields, s)
	}
	restore := func(s string) string {
		for _, sh := range shields {
			s = strings.ReplaceAll(s, sh.sentinel, sh.original)
		}
		return s
	}
	return text, restore
}
