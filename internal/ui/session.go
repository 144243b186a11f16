package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/ccastromar/nvsum/internal/config"
)

// State is the per-session display state. The submit action is the only
// transition trigger: Idle/Result/Error -> Loading on submit, then Loading ->
// Result or Error depending on the completion outcome. A validation failure
// aborts the submission and returns Loading -> Idle.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateResult  State = "result"
	StateError   State = "error"
)

var validTransitions = map[State][]State{
	StateIdle:    {StateLoading},
	StateLoading: {StateResult, StateError, StateIdle},
	StateResult:  {StateLoading, StateIdle},
	StateError:   {StateLoading, StateIdle},
}

// Overrides are configuration values entered in the UI for this session.
// Non-empty values take precedence over the environment.
type Overrides struct {
	APIKey  string
	APIBase string
	Model   string
}

type Session struct {
	ID        string
	State     State
	Overrides Overrides

	// Summarization options, kept so the form re-renders as last submitted.
	Length       string
	Tone         string
	BulletPoints bool
	IncludeTitle bool
	ShowPrompt   bool

	// Last request/response cycle. Nothing here outlives the session.
	LastInput   string
	LastPrompt  string
	LastSummary string
	LastError   string
	InputChars  int

	UpdatedAt time.Time
}

func (s *Session) Transition(next State) error {
	for _, allowed := range validTransitions[s.State] {
		if allowed == next {
			s.State = next
			s.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("invalid state transition %s -> %s", s.State, next)
}

// effective resolves the configuration for this session: UI overrides first,
// environment values as fallback.
func (s *Session) effective(env *config.EnvVars) (apiKey, apiBase, model string) {
	apiKey = s.Overrides.APIKey
	if apiKey == "" {
		apiKey = env.APIKey
	}
	apiBase = s.Overrides.APIBase
	if apiBase == "" {
		apiBase = env.APIBase
	}
	model = s.Overrides.Model
	if model == "" {
		model = env.Model
	}
	return apiKey, apiBase, model
}

// Store keeps sessions in memory, keyed by the session cookie. Values are
// copied in and out so callers never alias store-internal state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]Session),
	}
}

func (st *Store) Lookup(id string) (Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	return s, ok
}

func (st *Store) Save(s Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sessions[s.ID] = s
}

// snapshot devuelve una copia segura de los datos.
func (st *Store) snapshot() map[string]Session {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make(map[string]Session, len(st.sessions))
	for k, v := range st.sessions {
		out[k] = v
	}
	return out
}
