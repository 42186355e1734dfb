package services_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/natindo/voicecal/internal/models"
	"github.com/natindo/voicecal/internal/services"
)

func TestFetchReturnsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/ogg")
		_, _ = w.Write([]byte("opus-payload"))
	}))
	defer srv.Close()

	d := services.NewDownloader(srv.Client(), discardLogger())
	payload, err := d.Fetch(context.Background(), srv.URL)

	assert.NoError(t, err)
	assert.Equal(t, []byte("opus-payload"), payload)
}

func TestFetchNonSuccessStatusIsRetrievalError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	d := services.NewDownloader(srv.Client(), discardLogger())
	_, err := d.Fetch(context.Background(), srv.URL)

	var retrievalErr *models.RetrievalError
	assert.True(t, errors.As(err, &retrievalErr))
}

func TestFetchUnreachableHostIsRetrievalError(t *testing.T) {
	d := services.NewDownloader(nil, discardLogger())
	_, err := d.Fetch(context.Background(), "http://127.0.0.1:1/file")

	var retrievalErr *models.RetrievalError
	assert.True(t, errors.As(err, &retrievalErr))
}
