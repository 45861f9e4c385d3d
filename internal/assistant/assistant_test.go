package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikocevicstefan/term-chat/internal/config"
	"github.com/nikocevicstefan/term-chat/internal/transcript"
)

// newTestServer returns an httptest server speaking just enough of the
// chat-completion protocol for the client, plus a pointer to the last
// request body it saw.
func newTestServer(t *testing.T, reply string) (*httptest.Server, *map[string]any) {
	t.Helper()
	lastReq := &map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		*lastReq = body

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  body["model"],
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": reply},
					"finish_reason": "stop",
				},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, lastReq
}

func testClient(t *testing.T, baseURL string) Client {
	t.Helper()
	c, err := New(config.Config{APIKey: "test-key", Model: "test-model", BaseURL: baseURL})
	require.NoError(t, err)
	return c
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(config.Config{Model: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestExplainSendsInteraction(t *testing.T) {
	srv, lastReq := newTestServer(t, "The command listed your files.")
	c := testClient(t, srv.URL+"/v1")

	reply, err := c.Explain(context.Background(), transcript.Interaction{
		Command: strPtr("ls"),
		Output:  []string{"a.txt", "b.txt"},
	})
	require.NoError(t, err)
	assert.Equal(t, "The command listed your files.", reply)

	// The user message embeds both the command and its output.
	msgs := (*lastReq)["messages"].([]any)
	require.Len(t, msgs, 2)
	user := msgs[1].(map[string]any)
	assert.Equal(t, "user", user["role"])
	assert.Contains(t, user["content"], "ls")
	assert.Contains(t, user["content"], "a.txt")
	assert.Equal(t, "test-model", (*lastReq)["model"])
}

func TestExplainWithoutCommand(t *testing.T) {
	srv, _ := newTestServer(t, "unused")
	c := testClient(t, srv.URL+"/v1")

	_, err := c.Explain(context.Background(), transcript.Interaction{Output: []string{"stray"}})
	require.ErrorIs(t, err, ErrNoCommand)
}

func TestAsk(t *testing.T) {
	srv, lastReq := newTestServer(t, "Use tar -xzf.")
	c := testClient(t, srv.URL+"/v1")

	reply, err := c.Ask(context.Background(), "how do I extract a tarball?")
	require.NoError(t, err)
	assert.Equal(t, "Use tar -xzf.", reply)

	msgs := (*lastReq)["messages"].([]any)
	user := msgs[1].(map[string]any)
	assert.Equal(t, "how do I extract a tarball?", user["content"])
}

func TestEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	}))
	t.Cleanup(srv.Close)
	c := testClient(t, srv.URL+"/v1")

	_, err := c.Ask(context.Background(), "anything")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoCommand))
}
