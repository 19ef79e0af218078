package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamyam/internal/models"
)

func TestDealsClient_ListDeals_ParsesWireDates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/deals/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"id": "d1",
			"title": "Annual license",
			"value": 1000,
			"currency": "USD",
			"stage": "lead",
			"probability": 50,
			"expectedCloseDate": "2026-03-15T00:00:00Z",
			"assignedTo": "alice",
			"createdAt": "2026-01-02T10:00:00Z",
			"updatedAt": "2026-01-02T10:00:00Z"
		}]`))
	}))
	defer srv.Close()

	c := NewDealsClient(srv.URL)
	deals, err := c.ListDeals(context.Background())
	require.NoError(t, err)
	require.Len(t, deals, 1)

	d := deals[0]
	assert.Equal(t, "d1", d.ID)
	assert.Equal(t, models.StageLead, d.Stage)
	assert.True(t, d.ExpectedCloseDate.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, d.CreatedAt.Equal(time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)))
}

func TestDealsClient_CreateDeal_StripsIDFromPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Empty(t, payload["id"])

		var stored models.Deal
		raw, _ := json.Marshal(payload)
		_ = json.Unmarshal(raw, &stored)
		stored.ID = "srv-1"
		now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		stored.CreatedAt = now
		stored.UpdatedAt = now

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(stored)
	}))
	defer srv.Close()

	c := NewDealsClient(srv.URL)
	created, err := c.CreateDeal(context.Background(), models.Deal{
		ID:          "client-chosen", // must not reach the server
		Title:       "New deal",
		Value:       500,
		Stage:       models.StageProposal,
		Probability: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestDealsClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "deal not found"}`))
	}))
	defer srv.Close()

	c := NewDealsClient(srv.URL)

	err := c.DeleteDeal(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.UpdateDeal(context.Background(), models.Deal{ID: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDealsClient_ServerErrorMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "validation failed: value must be non-negative"}`))
	}))
	defer srv.Close()

	c := NewDealsClient(srv.URL)
	_, err := c.CreateDeal(context.Background(), models.Deal{Title: "Bad", Value: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value must be non-negative")
}

func TestDealsClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable from here on

	c := NewDealsClient(srv.URL)
	_, err := c.ListDeals(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestDealsClient_DeleteNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/deals/d1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewDealsClient(srv.URL)
	assert.NoError(t, c.DeleteDeal(context.Background(), "d1"))
}
