package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBox(t *testing.T) *Box {
	t.Helper()
	key, err := GenerateKey()
	require.NoError(t, err)
	box, err := NewBoxFromBase64(key)
	require.NoError(t, err)
	return box
}

func TestSealOpenRoundTrip(t *testing.T) {
	box := newTestBox(t)

	plaintext := []byte("Sehr geehrte Kollegen, Diagnose: Morbus Parkinson.")
	sealed, err := box.Seal(plaintext)
	require.NoError(t, err)
	assert.False(t, bytes.Contains(sealed, []byte("Parkinson")), "ciphertext must not contain plaintext")

	opened, err := box.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestSealIsNonDeterministic(t *testing.T) {
	box := newTestBox(t)
	a, err := box.Seal([]byte("gleicher Inhalt"))
	require.NoError(t, err)
	b, err := box.Seal([]byte("gleicher Inhalt"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "fresh nonce per message")
}

func TestNilAndEmptyHandling(t *testing.T) {
	box := newTestBox(t)

	sealed, err := box.Seal(nil)
	require.NoError(t, err)
	assert.Nil(t, sealed)

	opened, err := box.Open(nil)
	require.NoError(t, err)
	assert.Nil(t, opened)

	sealed, err = box.SealString("")
	require.NoError(t, err)
	assert.Nil(t, sealed)
}

func TestOpenRejectsTamperedPayload(t *testing.T) {
	box := newTestBox(t)
	sealed, err := box.SealString("vertraulich")
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xFF
	_, err = box.Open(sealed)
	assert.Error(t, err)
}

func TestOpenRejectsWrongKey(t *testing.T) {
	sealed, err := newTestBox(t).SealString("vertraulich")
	require.NoError(t, err)

	_, err = newTestBox(t).Open(sealed)
	assert.Error(t, err)
}

func TestInvalidKeys(t *testing.T) {
	_, err := NewBox([]byte("short"))
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = NewBoxFromBase64("not base64 !!!")
	assert.Error(t, err)
}

func TestBase64RoundTrip(t *testing.T) {
	box := newTestBox(t)
	encoded, err := box.SealBase64("data key material")
	require.NoError(t, err)

	decoded, err := box.OpenBase64(encoded)
	require.NoError(t, err)
	assert.Equal(t, "data key material", decoded)
}
