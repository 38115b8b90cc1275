package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"name": "value"}`))
	}))
	t.Cleanup(server.Close)

	client := NewDefaultHTTPClient(5 * time.Second)

	var out struct {
		Name string `json:"name"`
	}
	err := GetJSON(context.Background(), client, server.URL, "test-token", &out)

	require.NoError(t, err)
	assert.Equal(t, "value", out.Name)
}

func TestGetJSON_StripsBOM(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"name": "value"}`)...))
	}))
	t.Cleanup(server.Close)

	client := NewDefaultHTTPClient(5 * time.Second)

	var out struct {
		Name string `json:"name"`
	}
	err := GetJSON(context.Background(), client, server.URL, "", &out)

	require.NoError(t, err)
	assert.Equal(t, "value", out.Name)
}

func TestGetJSON_NoTokenSendsNoHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	var out map[string]interface{}
	err := GetJSON(context.Background(), NewDefaultHTTPClient(5*time.Second), server.URL, "", &out)
	require.NoError(t, err)
}

func TestGetJSON_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	var out map[string]interface{}
	err := GetJSON(context.Background(), NewDefaultHTTPClient(5*time.Second), server.URL, "bad-token", &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestGetJSON_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	t.Cleanup(server.Close)

	var out map[string]interface{}
	err := GetJSON(context.Background(), NewDefaultHTTPClient(5*time.Second), server.URL, "", &out)
	assert.Error(t, err)
}
