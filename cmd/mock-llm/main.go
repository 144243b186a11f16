// mock-llm is a local OpenAI-compatible completion endpoint for demos and
// manual testing:
//
//	go run ./cmd/mock-llm
//	NVIDIA_API_BASE=http://localhost:9400/v1 NVIDIA_API_KEY=local go run ./cmd/nvsum
//
// It answers every chat completion with a canned summary built from the last
// user message, so the UI can be exercised without NVIDIA credentials.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ccastromar/nvsum/internal/logx"
)

var listenAndServe = http.ListenAndServe

func buildMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", handleModels)
	mux.HandleFunc("/v1/chat/completions", handleChatCompletions)
	return mux
}

func handleModels(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": []map[string]any{
			{"id": "mock/summarizer-1b", "object": "model"},
		},
	})
}

func handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	var prompt string
	for _, m := range req.Messages {
		if m.Role == "user" {
			prompt = m.Content
		}
	}

	logx.Info("Mock", "completion for model=%s, prompt=%d chars", req.Model, len(prompt))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": cannedSummary(prompt)}},
		},
	})
}

// cannedSummary fabricates a plausible-looking summary from the first words
// of the prompt's document section.
func cannedSummary(prompt string) string {
	doc := prompt
	if i := strings.LastIndex(prompt, "Document:\n"); i >= 0 {
		doc = prompt[i+len("Document:\n"):]
	}
	words := strings.Fields(doc)
	if len(words) > 12 {
		words = words[:12]
	}
	return fmt.Sprintf("Title: Mock Summary\n- %s...\n- (generated by mock-llm, no model involved)", strings.Join(words, " "))
}

func main() {
	mux := buildMux()
	logx.Info("Mock", "mock completion endpoint listening on :9400")
	if err := listenAndServe(":9400", mux); err != nil {
		logx.Error("Mock", "server stopped: %v", err)
	}
}
