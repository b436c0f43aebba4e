package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klartext-health/befund/ent/job"
)

const arztbriefText = `Sehr geehrte Frau Kollegin,

wir berichten über unseren gemeinsamen Patienten, der sich mit
persistierendem Husten vorstellte. Diagnose: J20.9 Akute Bronchitis.
Therapie: Amoxicillin 1000mg 1-0-1 für 7 Tage. Auskultatorisch
grobblasige Rasselgeräusche beidseits, CRP 48 mg/l.

Mit freundlichen Grüßen`

const laborText = `Laborbericht

Kleines Blutbild: Leukozyten 11.2 /nl (erhöht), Hämoglobin 14.1 g/dl,
Thrombozyten 250 /nl. CRP 48 mg/l (Referenz < 5). Kreatinin 0.9 mg/dl.`

// ────────────────────────────────────────────────────────────
// Scenario: full pipeline run of an Arztbrief, no target language
// ────────────────────────────────────────────────────────────

func TestE2E_ArztbriefHappyPath(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddScript(
		"MEDIZINISCH",
		"ARZTBRIEF",
		"Bereinigter Brieftext über eine akute Bronchitis.",
		"Sie hatten eine akute Bronchitis, eine Entzündung der Atemwege.",
		"Sie hatten eine akute Bronchitis, eine Entzündung der Atemwege. Das Antibiotikum nehmen Sie sieben Tage.",
		"Sie hatten eine akute Bronchitis. Das Antibiotikum nehmen Sie sieben Tage lang, morgens und abends.",
		"# Ihr Arztbrief\n\nSie hatten eine akute Bronchitis. Das Antibiotikum nehmen Sie sieben Tage lang.",
	)

	app := NewTestApp(t, WithLLMClient(llm))
	pid := app.Process(t, "brief.txt", arztbriefText, nil)

	app.WaitForStatus(t, pid, job.StatusCompleted)

	resp := app.GetProcessing(t, pid)
	assert.Equal(t, "COMPLETED", resp["status"])
	assert.Equal(t, "# Ihr Arztbrief\n\nSie hatten eine akute Bronchitis. Das Antibiotikum nehmen Sie sieben Tage lang.",
		resp["simplified_text"])
	assert.NotContains(t, resp, "translated_text")

	result, ok := resp["result"].(map[string]interface{})
	if assert.True(t, ok, "completed response carries result data") {
		assert.Equal(t, "ARZTBRIEF", result["document_type"])
		assert.Greater(t, result["total_cost"].(float64), 0.0)
	}

	// The translation step is skipped without a target language; everything
	// else runs once.
	steps := app.QuerySteps(t, pid)
	assert.Equal(t, []string{
		"Medical Content Validation:succeeded",
		"Classification:succeeded",
		"PII Preprocessing:succeeded",
		"Arztbrief Translation:succeeded",
		"Fact Check:succeeded",
		"Language Translation:skipped",
		"Final Check:succeeded",
		"Formatting:succeeded",
	}, StepNames(steps))
	assert.Equal(t, 7, llm.CallCount())

	// Accounting: one interaction per call, all successful, priced.
	inters := app.QueryInteractions(t, pid)
	assert.Len(t, inters, 7)
	for _, in := range inters {
		assert.True(t, in.Success)
		assert.Greater(t, in.Cost, 0.0)
	}

	jb := app.Job(t, pid)
	assert.Equal(t, 100, jb.ProgressPercent)
	assert.Greater(t, jb.TotalCost, 0.0)
	assert.NotNil(t, jb.CompletedAt)
}

// ────────────────────────────────────────────────────────────
// Scenario: translation into a requested target language
// ────────────────────────────────────────────────────────────

func TestE2E_TargetLanguageTranslation(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddScript(
		"MEDIZINISCH",
		"ARZTBRIEF",
		"Bereinigter Brieftext.",
		"Vereinfachter Text.",
		"Vereinfachter, geprüfter Text.",
		"You had acute bronchitis. Take the antibiotic for seven days.",
		"You had acute bronchitis. Take the antibiotic for seven days.",
		"# Your doctor's letter\n\nYou had acute bronchitis.",
	)

	app := NewTestApp(t, WithLLMClient(llm))
	pid := app.Process(t, "brief.txt", arztbriefText, map[string]interface{}{
		"target_language": "Englisch",
	})

	app.WaitForStatus(t, pid, job.StatusCompleted)

	assert.Equal(t, 8, llm.CallCount())
	steps := app.QuerySteps(t, pid)
	assert.Contains(t, StepNames(steps), "Language Translation:succeeded")

	// The translation prompt carries the requested language.
	var sawTarget bool
	for _, req := range llm.CapturedRequests() {
		for _, msg := range req.Messages {
			if msg.Role == "user" && strings.Contains(msg.Content, "Übersetze") && strings.Contains(msg.Content, "Englisch") {
				sawTarget = true
			}
		}
	}
	assert.True(t, sawTarget, "no prompt asked for the Englisch translation")

	resp := app.GetProcessing(t, pid)
	assert.Equal(t, "# Your doctor's letter\n\nYou had acute bronchitis.", resp["simplified_text"])
}

// ────────────────────────────────────────────────────────────
// Scenario: classification routes to the Laborbericht branch
// ────────────────────────────────────────────────────────────

func TestE2E_LaborberichtBranch(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddScript(
		"MEDIZINISCH",
		"LABORBERICHT",
		"Bereinigte Laborwerte.",
		"Ihre Leukozyten sind leicht erhöht, das passt zu einer Entzündung.",
		"Ihre Leukozyten sind leicht erhöht. Das passt zu einer Entzündung im Körper.",
		"# Ihre Laborwerte\n\nIhre Leukozyten sind leicht erhöht.",
	)

	app := NewTestApp(t, WithLLMClient(llm))
	pid := app.Process(t, "labor.txt", laborText, nil)

	app.WaitForStatus(t, pid, job.StatusCompleted)

	names := StepNames(app.QuerySteps(t, pid))
	assert.Contains(t, names, "Laborwert Explanation:succeeded")
	assert.NotContains(t, names, "Arztbrief Translation:succeeded")
	assert.NotContains(t, names, "Befund Simplification:succeeded")

	resp := app.GetProcessing(t, pid)
	result := resp["result"].(map[string]interface{})
	assert.Equal(t, "LABORBERICHT", result["document_type"])
}

// ────────────────────────────────────────────────────────────
// Scenario: unknown class completes with an empty class phase
// ────────────────────────────────────────────────────────────

func TestE2E_UnknownClassSkipsClassPhase(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddScript(
		"MEDIZINISCH",
		"UNBEKANNT",
		"Bereinigter Text.",
		"Geprüfter Text.",
		"# Ergebnis\n\nGeprüfter Text.",
	)

	app := NewTestApp(t, WithLLMClient(llm))
	pid := app.Process(t, "sonstiges.txt", arztbriefText, nil)

	app.WaitForStatus(t, pid, job.StatusCompleted)
	assert.Equal(t, 5, llm.CallCount())

	resp := app.GetProcessing(t, pid)
	result := resp["result"].(map[string]interface{})
	_, hasType := result["document_type"]
	assert.False(t, hasType, "unknown classification must not record a document type")
}

