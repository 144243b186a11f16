package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// chdirToRepoRoot changes the working directory to the repository root
// so that relative preset paths (definitions/presets/...) resolve during tests.
func chdirToRepoRoot(t *testing.T) {
	t.Helper()
	_, file, _, _ := runtime.Caller(0)
	// internal/config/config_test.go -> repo root is two dirs up
	root := filepath.Clean(filepath.Join(filepath.Dir(file), "../.."))
	if err := os.Chdir(root); err != nil {
		t.Fatalf("chdir to repo root: %v", err)
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "NVIDIA_API_KEY", "NVIDIA_API_BASE", "NVIDIA_MODEL", "NVIDIA_TIMEOUT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	v, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() unexpected error: %v", err)
	}
	if v.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", v.Port)
	}
	if v.APIBase != "https://integrate.api.nvidia.com/v1" {
		t.Fatalf("unexpected default api base: %s", v.APIBase)
	}
	if v.Model != "meta/llama-3.1-8b-instruct" {
		t.Fatalf("unexpected default model: %s", v.Model)
	}
	if v.APIKey != "" {
		t.Fatalf("expected empty api key by default, got %q", v.APIKey)
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("NVIDIA_API_KEY", "nvapi-test")
	t.Setenv("NVIDIA_MODEL", "meta/llama-3.1-70b-instruct")
	t.Setenv("NVIDIA_TIMEOUT", "5s")

	v, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() unexpected error: %v", err)
	}
	if v.APIKey != "nvapi-test" {
		t.Fatalf("expected api key from env, got %q", v.APIKey)
	}
	if v.Model != "meta/llama-3.1-70b-instruct" {
		t.Fatalf("expected model from env, got %q", v.Model)
	}
	if v.Timeout.Seconds() != 5 {
		t.Fatalf("expected 5s timeout, got %v", v.Timeout)
	}
}

func TestLoadPresets_FromDefinitions(t *testing.T) {
	chdirToRepoRoot(t)

	p, err := LoadPresets("definitions")
	if err != nil {
		t.Fatalf("LoadPresets() unexpected error: %v", err)
	}

	short, ok := p.Length("short")
	if !ok {
		t.Fatalf("expected 'short' length preset")
	}
	if short.MaxTokens != 256 {
		t.Fatalf("expected short max_tokens 256, got %d", short.MaxTokens)
	}

	if _, ok := p.Tone("professional"); !ok {
		t.Fatalf("expected 'professional' tone preset")
	}

	if got := p.DefaultLength(); got != "short" {
		t.Fatalf("expected default length 'short', got %q", got)
	}
	if got := p.DefaultTone(); got != "neutral" {
		t.Fatalf("expected default tone 'neutral', got %q", got)
	}

	names := p.LengthNames()
	if len(names) != 3 || names[0] != "short" || names[2] != "detailed" {
		t.Fatalf("unexpected length order: %v", names)
	}
}

func TestLoadPresets_MissingDir(t *testing.T) {
	if _, err := LoadPresets(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing presets dir")
	}
}
