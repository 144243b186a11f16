package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ccastromar/nvsum/internal/llm"
	"github.com/ccastromar/nvsum/internal/runtime"
)

type fakeClient struct{ pingErr error }

func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return "", nil
}

var _ llm.CompletionClient = (*fakeClient)(nil)

func TestLiveHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	LiveHandler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "ok") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestReadyHandler_PresetsNotLoaded(t *testing.T) {
	h := ReadyHandler(&runtime.Runtime{PresetsLoaded: false})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestReadyHandler_NoEnvClient(t *testing.T) {
	// no key in the environment -> no client -> ready without pinging
	h := ReadyHandler(&runtime.Runtime{PresetsLoaded: true})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestReadyHandler_PingOutcome(t *testing.T) {
	ok := ReadyHandler(&runtime.Runtime{PresetsLoaded: true, LLMClient: &fakeClient{}})
	rr := httptest.NewRecorder()
	ok(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 when ping succeeds, got %d", rr.Code)
	}

	bad := ReadyHandler(&runtime.Runtime{PresetsLoaded: true, LLMClient: &fakeClient{pingErr: errors.New("down")}})
	rr = httptest.NewRecorder()
	bad(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when ping fails, got %d", rr.Code)
	}
}
