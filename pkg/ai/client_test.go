package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerSummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai-response", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Full page text.", req["text"])
		_, hasQuestion := req["question"]
		assert.False(t, hasQuestion, "empty question is omitted from the wire")

		json.NewEncoder(w).Encode(map[string]string{"answer": "A concise summary."})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	answer, err := client.Answer(context.Background(), "Full page text.", "")

	assert.NoError(t, err)
	assert.Equal(t, "A concise summary.", answer)
}

func TestAnswerWithQuestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "Who signed?", req["question"])
		json.NewEncoder(w).Encode(map[string]string{"answer": "Alice Johnson."})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	answer, err := client.Answer(context.Background(), "text", "Who signed?")

	assert.NoError(t, err)
	assert.Equal(t, "Alice Johnson.", answer)
}

func TestAnswerNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model offline", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Answer(context.Background(), "text", "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestAnswerMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Answer(context.Background(), "text", "")

	assert.Error(t, err)
}
