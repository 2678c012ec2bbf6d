package vision

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPDetector_Detecta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"label":"Luvas Cirúrgicas","confidence":0.92}`))
	}))
	defer srv.Close()

	d := NewHTTPDetector(srv.URL, 0.5)
	det, err := d.Detect(context.Background(), []byte{0xFF, 0xD8})
	require.NoError(t, err)
	require.NotNil(t, det)
	assert.Equal(t, "Luvas Cirúrgicas", det.Label)
	assert.InDelta(t, 0.92, det.Confidence, 1e-9)
}

func TestHTTPDetector_AbaixoDoThreshold(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"label":"Seringa 5ml","confidence":0.31}`))
	}))
	defer srv.Close()

	d := NewHTTPDetector(srv.URL, 0.5)
	det, err := d.Detect(context.Background(), []byte{0xFF, 0xD8})
	require.NoError(t, err)
	assert.Nil(t, det)
}

func TestHTTPDetector_SemObjeto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"label":"","confidence":0.0}`))
	}))
	defer srv.Close()

	d := NewHTTPDetector(srv.URL, 0.5)
	det, err := d.Detect(context.Background(), []byte{0x01})
	require.NoError(t, err)
	assert.Nil(t, det)
}

func TestHTTPDetector_ErroDoServico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "modelo indisponível", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	d := NewHTTPDetector(srv.URL, 0.5)
	det, err := d.Detect(context.Background(), []byte{0x01})
	require.Error(t, err)
	assert.Nil(t, det)
	assert.Contains(t, err.Error(), "503")
}

func TestHTTPDetector_ImagemVazia(t *testing.T) {
	d := NewHTTPDetector("http://localhost:0", 0.5)
	det, err := d.Detect(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, det)
}

func TestStaticDetector(t *testing.T) {
	d := NewStaticDetector("Máscara N95")

	det, err := d.Detect(context.Background(), []byte{0x01})
	require.NoError(t, err)
	require.NotNil(t, det)
	assert.Equal(t, "Máscara N95", det.Label)
	assert.Equal(t, 1.0, det.Confidence)

	det, err = d.Detect(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, det)
}
