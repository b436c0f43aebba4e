package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	vars := map[string]string{
		"input_text":      "Befund Text",
		"target_language": "en",
	}

	t.Run("replaces placeholders", func(t *testing.T) {
		out, err := Substitute("Vereinfache: {input_text} nach {target_language}", vars)
		require.NoError(t, err)
		assert.Equal(t, "Vereinfache: Befund Text nach en", out)
	})

	t.Run("doubled braces are literals", func(t *testing.T) {
		out, err := Substitute("JSON: {{\"key\": \"{input_text}\"}}", vars)
		require.NoError(t, err)
		assert.Equal(t, "JSON: {\"key\": \"Befund Text\"}", out)
	})

	t.Run("escaped braces in values are restored", func(t *testing.T) {
		out, err := Substitute("Text: {input_text}", map[string]string{
			"input_text": "Befund mit {{geschweiften}} Klammern und {{input_text}} als Text",
		})
		require.NoError(t, err)
		assert.Equal(t, "Text: Befund mit {geschweiften} Klammern und {input_text} als Text", out)
	})

	t.Run("raw braces in values pass through", func(t *testing.T) {
		out, err := Substitute("{input_text}", map[string]string{"input_text": "a { b } c"})
		require.NoError(t, err)
		assert.Equal(t, "a { b } c", out)
	})

	t.Run("undefined variable fails closed", func(t *testing.T) {
		_, err := Substitute("{input_text} {nicht_definiert}", vars)
		require.Error(t, err)
		var missing *MissingVariableError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "nicht_definiert", missing.Name)
	})

	t.Run("optional variables default to empty", func(t *testing.T) {
		out, err := Substitute("Typ: {document_type}.", map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, "Typ: .", out)

		out, err = Substitute("Sprache: {target_language}.", map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, "Sprache: .", out)
	})

	t.Run("unterminated placeholder", func(t *testing.T) {
		_, err := Substitute("kaputt {input_text", vars)
		assert.Error(t, err)
	})

	t.Run("stray closing brace", func(t *testing.T) {
		_, err := Substitute("kaputt } hier", vars)
		assert.Error(t, err)
	})

	t.Run("invalid placeholder name", func(t *testing.T) {
		_, err := Substitute("{input text}", vars)
		assert.Error(t, err)
	})

	t.Run("no placeholders passes through", func(t *testing.T) {
		out, err := Substitute("Nur Text ohne Variablen.", nil)
		require.NoError(t, err)
		assert.Equal(t, "Nur Text ohne Variablen.", out)
	})
}
