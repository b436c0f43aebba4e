package privacy

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func removeLocal(t *testing.T, text string, protected ...string) *Result {
	t.Helper()
	result, err := NewLocalFilter().RemovePII(context.Background(), text, "de", protected)
	require.NoError(t, err)
	return result
}

func TestLocalFilterGermanFormats(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		placeholder string
		survivor    string // fragment that must remain untouched
	}{
		{
			name:        "email",
			input:       "Kontakt: praxis.mueller@example.de bei Rückfragen",
			placeholder: PlaceholderEmail,
			survivor:    "Kontakt",
		},
		{
			name:        "phone",
			input:       "Tel: +49 30 1234567 erreichbar",
			placeholder: PlaceholderPhone,
			survivor:    "erreichbar",
		},
		{
			name:        "fax",
			input:       "Fax: 030 7654321",
			placeholder: PlaceholderFax,
		},
		{
			name:        "iban",
			input:       "Überweisung an DE89 3704 0044 0532 0130 00 erbeten",
			placeholder: PlaceholderIBAN,
			survivor:    "Überweisung",
		},
		{
			name:        "birthdate",
			input:       "Patient geb. am 12.03.1956, männlich",
			placeholder: PlaceholderBirthdate,
			survivor:    "männlich",
		},
		{
			name:        "date",
			input:       "Aufnahme am 01.02.2024 erfolgt",
			placeholder: PlaceholderDate,
			survivor:    "Aufnahme",
		},
		{
			name:        "plz city",
			input:       "wohnhaft in 10115 Berlin",
			placeholder: PlaceholderPLZCity,
			survivor:    "wohnhaft",
		},
		{
			name:        "address",
			input:       "Musterstraße 12a, Eingang B",
			placeholder: PlaceholderAddress,
			survivor:    "Eingang",
		},
		{
			name:        "doctor name",
			input:       "Befund erstellt von Dr. med. Hans Müller",
			placeholder: PlaceholderDoctorName,
			survivor:    "Befund",
		},
		{
			name:        "salutation name",
			input:       "Wir berichten über Frau Erika Mustermann",
			placeholder: PlaceholderName,
			survivor:    "berichten",
		},
		{
			name:        "url",
			input:       "Details unter https://klinik.example.de/portal abrufbar",
			placeholder: PlaceholderURL,
			survivor:    "abrufbar",
		},
		{
			name:        "time",
			input:       "Aufnahme um 14:30 Uhr",
			placeholder: PlaceholderTime,
			survivor:    "Aufnahme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := removeLocal(t, tt.input)
			assert.Contains(t, result.CleanedText, tt.placeholder)
			if tt.survivor != "" {
				assert.Contains(t, result.CleanedText, tt.survivor)
			}
			assert.True(t, result.Degraded)
			assert.GreaterOrEqual(t, result.Placeholders[tt.placeholder], 1)
		})
	}
}

func TestLocalFilterPreservesMedicalTerminology(t *testing.T) {
	input := "Diagnose: Morbus Parkinson. Therapie: Levodopa 100mg."
	result := removeLocal(t, input)
	assert.Equal(t, input, result.CleanedText)
	assert.Empty(t, result.Placeholders)
}

func TestLocalFilterProtectedTerms(t *testing.T) {
	// Without protection the salutation pattern would claim this string.
	input := "Studie nach Frau Professorin Beispielmethode, Kontrolle am 01.02.2024"
	result := removeLocal(t, input, "Frau Professorin Beispielmethode")
	assert.Contains(t, result.CleanedText, "Frau Professorin Beispielmethode")
	assert.Contains(t, result.CleanedText, PlaceholderDate)
}

func TestLocalFilterIdempotent(t *testing.T) {
	inputs := []string{
		"Patient: Max Beispiel, geb. 01.01.1970, Tel: 030 1234567, wohnhaft Musterstraße 5, 10115 Berlin",
		"Dr. med. Eva Beispiel, praxis@example.de, Fax: 030 7654321",
		"Kein PII hier, nur Befunde: CRP 12 mg/l, Leukozyten 8.2",
		"",
	}
	filter := NewLocalFilter()
	for _, in := range inputs {
		once, err := filter.RemovePII(context.Background(), in, "de", nil)
		require.NoError(t, err)
		twice, err := filter.RemovePII(context.Background(), once.CleanedText, "de", nil)
		require.NoError(t, err)
		assert.Equal(t, once.CleanedText, twice.CleanedText, "input %q", in)
		assert.Empty(t, twice.Placeholders, "second pass must detect nothing in %q", once.CleanedText)
	}
}

func TestLocalFilterMultiplePlaceholderCounts(t *testing.T) {
	input := "Termine am 01.02.2024 und 15.03.2024 und 20.04.2024"
	result := removeLocal(t, input)
	assert.Equal(t, 3, result.Placeholders[PlaceholderDate])
	assert.Equal(t, 3, strings.Count(result.CleanedText, PlaceholderDate))
}

func TestLocalFilterLengthContract(t *testing.T) {
	// Real PII strings are longer than their placeholder tokens, so typical
	// documents shrink.
	inputs := []string{
		"Kontakt: praxis.mueller@example.de oder Tel.: 030 1234567",
		"IBAN DE89 3704 0044 0532 0130 00, Versichertennr.: A123456789",
		"Dr. med. Anna Schmidt, Musterstraße 12, 10115 Berlin, geb. 12.03.1958",
		"Befund vom 01.02.2024 an praxis@example.de, Fax: 030 7654321",
	}
	filter := NewLocalFilter()
	for _, in := range inputs {
		res, err := filter.RemovePII(context.Background(), in, "de", nil)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(res.CleanedText), len(in), "input %q", in)
	}
}

func TestLocalFilterShortMatchExpansionBounded(t *testing.T) {
	// A match shorter than its token ("9:05" vs "[TIME]") grows the text:
	// substitution wins over length here, bounded per replacement by the
	// longest placeholder.
	res := removeLocal(t, "um 9:05")
	assert.Equal(t, "um "+PlaceholderTime, res.CleanedText)

	replacements := 0
	for _, n := range res.Placeholders {
		replacements += n
	}
	assert.Equal(t, 1, replacements)
	assert.LessOrEqual(t, len(res.CleanedText), len("um 9:05")+replacements*len(PlaceholderSocialSecurity))
}
