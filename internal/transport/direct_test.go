package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectSendKeepsHistory(t *testing.T) {
	var requests [][]map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []map[string]any `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req.Messages)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "reply"}}]}`))
	}))
	t.Cleanup(srv.Close)

	d := NewDirect("test-key", srv.URL+"/v1", "test-model")

	reply, err := d.Send(context.Background(), "first", "")
	require.NoError(t, err)
	assert.Equal(t, "reply", reply.Content)
	assert.Empty(t, reply.ThreadID, "direct mode never assigns a thread id")

	_, err = d.Send(context.Background(), "second", "")
	require.NoError(t, err)

	require.Len(t, requests, 2)
	assert.Len(t, requests[0], 1)
	// Second request carries the whole exchange so far.
	require.Len(t, requests[1], 3)
	assert.Equal(t, "assistant", requests[1][1]["role"])
	assert.Equal(t, "reply", requests[1][1]["content"])
}

func TestDirectSendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid key"}}`, http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	d := NewDirect("bad-key", srv.URL+"/v1", "test-model")

	_, err := d.Send(context.Background(), "hello", "")
	require.Error(t, err)

	var terr *Error
	assert.ErrorAs(t, err, &terr, "direct failures share the single transport error kind")
}
