package runtime

import (
	"github.com/ccastromar/nvsum/internal/llm"
)

// Runtime is the readiness snapshot the health endpoints inspect.
// LLMClient is nil when no API key was configured in the environment
// (the UI can still supply one per session).
type Runtime struct {
	PresetsLoaded bool
	LLMClient     llm.CompletionClient
}
