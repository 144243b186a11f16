package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ccastromar/nvsum/internal/metrics"
)

// Fixed sampling parameters for summarization. One request, one attempt:
// retries and streaming are deliberately out of scope.
const (
	defaultTimeout   = 60 * time.Second
	temperature      = 0.2
	defaultMaxTokens = 512

	systemMessage = "You are a world-class summarization assistant."
)

// NvidiaClient talks to an NVIDIA-hosted (NIM/NeMo) OpenAI-compatible
// /chat/completions endpoint. Configuration is explicit struct state: the
// client never reads env vars or other ambient globals.
type NvidiaClient struct {
	BaseURL string
	APIKey  string
	Model   string
	HTTP    *http.Client
	Timeout time.Duration
}

// Compile-time interface conformance
var _ CompletionClient = (*NvidiaClient)(nil)

func NewNvidiaClient(baseURL, apiKey, model string) *NvidiaClient {
	if baseURL == "" {
		baseURL = "https://integrate.api.nvidia.com/v1"
	}

	return &NvidiaClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		HTTP: &http.Client{
			Timeout: defaultTimeout,
		},
		Timeout: defaultTimeout,
	}
}

// Ping checks reachability and credentials via GET /models.
func (c *NvidiaClient) Ping(ctx context.Context) error {
	if c.APIKey == "" {
		return &APIError{Kind: KindAuth, Message: "api key is empty"}
	}

	to := c.Timeout
	if to <= 0 {
		to = 2 * time.Second
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, to)
	defer cancel()

	url := strings.TrimRight(c.BaseURL, "/") + "/models"
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: to}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		metrics.LLMPings.Inc(map[string]string{"provider": "nvidia", "outcome": "error"})
		return &APIError{Kind: KindNetwork, Message: fmt.Sprintf("ping failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		metrics.LLMPings.Inc(map[string]string{"provider": "nvidia", "outcome": "error"})
		return &APIError{
			Kind:    classifyStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: "ping bad status, body: " + strings.TrimSpace(string(b)),
		}
	}

	metrics.LLMPings.Inc(map[string]string{"provider": "nvidia", "outcome": "ok"})
	return nil
}

// Complete sends one synchronous chat completion request and returns the
// summary text. Every failure is an *APIError carrying its ErrorKind.
func (c *NvidiaClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c.APIKey == "" {
		return "", &APIError{Kind: KindAuth, Message: "api key is empty"}
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	payload := map[string]any{
		"model": c.Model,
		"messages": []map[string]string{
			{"role": "system", "content": systemMessage},
			{"role": "user", "content": prompt},
		},
		"temperature": temperature,
		"max_tokens":  maxTokens,
		"stream":      false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	to := c.Timeout
	if to <= 0 {
		to = defaultTimeout
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, to)
	defer cancel()

	url := strings.TrimRight(c.BaseURL, "/") + "/chat/completions"
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: to}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		metrics.LLMCompletions.Inc(map[string]string{"provider": "nvidia", "outcome": "error"})
		return "", &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		metrics.LLMCompletions.Inc(map[string]string{"provider": "nvidia", "outcome": "error"})
		return "", &APIError{
			Kind:    classifyStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(b)),
		}
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		metrics.LLMCompletions.Inc(map[string]string{"provider": "nvidia", "outcome": "error"})
		return "", &APIError{Kind: KindMalformed, Message: "decode response: " + err.Error()}
	}

	content := result.content()
	if content == "" {
		metrics.LLMCompletions.Inc(map[string]string{"provider": "nvidia", "outcome": "error"})
		return "", &APIError{Kind: KindMalformed, Message: "response has no completion content"}
	}

	metrics.LLMCompletions.Inc(map[string]string{"provider": "nvidia", "outcome": "ok"})
	metrics.LLMCompletionDur.Observe(map[string]string{"provider": "nvidia", "outcome": "ok"}, time.Since(start).Seconds())
	return strings.TrimSpace(content), nil
}

// completionResponse covers the shapes NVIDIA deployments answer with. The
// chat shape (choices[0].message.content) is the common case; the rest are
// fallbacks seen on older text-completion deployments.
type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		Text string `json:"text"`
	} `json:"choices"`
	OutputText string `json:"output_text"`
	Text       string `json:"text"`
}

func (r *completionResponse) content() string {
	if len(r.Choices) > 0 {
		if c := r.Choices[0].Message.Content; c != "" {
			return c
		}
		if c := r.Choices[0].Text; c != "" {
			return c
		}
	}
	if r.OutputText != "" {
		return r.OutputText
	}
	return r.Text
}
