package ocr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlainText(t *testing.T) {
	service := NewService(nil)

	text, err := service.Extract(context.Background(), Document{
		Filename: "befund.txt",
		FileType: "txt",
		Content:  []byte("  Diagnose: Morbus Parkinson\r\nTherapie: Levodopa\n\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Diagnose: Morbus Parkinson\nTherapie: Levodopa", text)
}

func TestExtractRejectsEmptyAndInvalid(t *testing.T) {
	service := NewService(nil)

	_, err := service.Extract(context.Background(), Document{FileType: "txt", Content: []byte("   \n ")})
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = service.Extract(context.Background(), Document{FileType: "txt", Content: []byte{0xff, 0xfe}})
	assert.Error(t, err)

	_, err = service.Extract(context.Background(), Document{FileType: "exe", Content: []byte("x")})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = service.Extract(context.Background(), Document{FileType: "pdf", Content: []byte("%PDF")})
	assert.ErrorIs(t, err, ErrUnsupportedType, "pdf without a configured engine")
}

func TestExtractViaRemoteEngine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/extract", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "deu,eng", r.FormValue("languages"))
		_, _, err := r.FormFile("file")
		require.NoError(t, err)
		_, _ = w.Write([]byte(`{"text":"Arztbrief Inhalt","confidence":0.97,"pages":1}`))
	}))
	defer server.Close()

	service := NewService(NewRemoteEngine(server.URL, []string{"deu", "eng"}))
	text, err := service.Extract(context.Background(), Document{
		Filename: "scan.pdf",
		FileType: "pdf",
		Content:  []byte("%PDF-1.4 fake"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Arztbrief Inhalt", text)
}

func TestExtractRemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewService(NewRemoteEngine(server.URL, nil))
	_, err := service.Extract(context.Background(), Document{FileType: "png", Content: []byte("img")})
	assert.Error(t, err)
}
