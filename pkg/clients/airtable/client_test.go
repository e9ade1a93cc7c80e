package airtable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelerateanalytics/website/pkg/logger"
)

func TestRecordExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/app123/Leads", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		assert.Equal(t, `{ref}="abc"`, r.URL.Query().Get("filterByFormula"))
		_, _ = w.Write([]byte(`{"records":[{"id":"rec1"}]}`))
	}))
	defer srv.Close()

	c := NewClient("key", "app123", logger.Discard(), WithBaseURL(srv.URL))
	exists, err := c.RecordExists(context.Background(), "Leads", "ref", "abc")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRecordExistsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"records":[]}`))
	}))
	defer srv.Close()

	c := NewClient("key", "app123", logger.Discard(), WithBaseURL(srv.URL))
	exists, err := c.RecordExists(context.Background(), "Leads", "ref", "abc")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateRecord(t *testing.T) {
	var got struct {
		Records []struct {
			Fields map[string]interface{} `json:"fields"`
		} `json:"records"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"records":[{"id":"rec1"}]}`))
	}))
	defer srv.Close()

	c := NewClient("key", "app123", logger.Discard(), WithBaseURL(srv.URL+"/"))
	err := c.CreateRecord(context.Background(), "Leads", map[string]interface{}{"Company": "Acme"})
	require.NoError(t, err)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "Acme", got.Records[0].Fields["Company"])
}

func TestCreateRecordAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"type":"INVALID_VALUE_FOR_COLUMN"}}`))
	}))
	defer srv.Close()

	c := NewClient("key", "app123", logger.Discard(), WithBaseURL(srv.URL))
	err := c.CreateRecord(context.Background(), "Leads", map[string]interface{}{})
	assert.ErrorContains(t, err, "INVALID_VALUE_FOR_COLUMN")
}
