package ui

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/ccastromar/nvsum/internal/config"
	"github.com/ccastromar/nvsum/internal/llm"
	"github.com/ccastromar/nvsum/internal/logx"
	"github.com/ccastromar/nvsum/internal/metrics"
	"github.com/ccastromar/nvsum/internal/prompt"
	"github.com/google/uuid"
)

const sessionCookie = "nvsum_session"

const sampleText = `Streamlit is an open-source Python library that makes it easy to build custom web apps for machine learning and data science.
In just a few minutes you can build and deploy powerful data apps.
It allows data scientists to turn Python scripts into interactive apps without needing any frontend experience.
Streamlit apps are written entirely in Python, using a simple API that focuses on rapid prototyping, visualization, and interactivity.`

// Shell renders the summarizer UI and drives one synchronous completion call
// per submit.
type Shell struct {
	store   *Store
	env     *config.EnvVars
	presets *config.Presets

	// newClient is a constructor indirection so tests can fake the endpoint.
	newClient func(apiBase, apiKey, model string, timeout time.Duration) llm.CompletionClient
}

func NewShell(env *config.EnvVars, presets *config.Presets) *Shell {
	return &Shell{
		store:   NewStore(),
		env:     env,
		presets: presets,
		newClient: func(apiBase, apiKey, model string, timeout time.Duration) llm.CompletionClient {
			c := llm.NewNvidiaClient(apiBase, apiKey, model)
			c.Timeout = timeout
			return c
		},
	}
}

func (h *Shell) RegisterHTTP(mux *http.ServeMux) {
	mux.HandleFunc("/", h.HandleIndex)
	mux.HandleFunc("/summarize", h.HandleSummarize)
}

// session returns the caller's session, creating one (and setting the cookie)
// on first contact.
func (h *Shell) session(w http.ResponseWriter, r *http.Request) Session {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := h.store.Lookup(c.Value); ok {
			return sess
		}
	}

	sess := Session{
		ID:           uuid.NewString(),
		State:        StateIdle,
		Length:       h.presets.DefaultLength(),
		Tone:         h.presets.DefaultTone(),
		BulletPoints: true,
		IncludeTitle: true,
		UpdatedAt:    time.Now(),
	}
	h.store.Save(sess)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// view is what the index template renders.
type view struct {
	State State

	APIKey  string
	APIBase string
	Model   string

	Lengths []string
	Tones   []string
	Length  string
	Tone    string

	BulletPoints bool
	IncludeTitle bool
	ShowPrompt   bool

	Doc        string
	InputChars int

	Summary     string
	ErrorBanner string
	FieldError  string
	Prompt      string

	SampleText string
}

func (h *Shell) render(w http.ResponseWriter, sess Session, fieldErr string) {
	apiKey, apiBase, model := sess.effective(h.env)

	v := view{
		State:        sess.State,
		APIKey:       apiKey,
		APIBase:      apiBase,
		Model:        model,
		Lengths:      h.presets.LengthNames(),
		Tones:        h.presets.ToneNames(),
		Length:       sess.Length,
		Tone:         sess.Tone,
		BulletPoints: sess.BulletPoints,
		IncludeTitle: sess.IncludeTitle,
		ShowPrompt:   sess.ShowPrompt,
		Doc:          sess.LastInput,
		InputChars:   sess.InputChars,
		FieldError:   fieldErr,
		SampleText:   sampleText,
	}
	if sess.State == StateResult {
		v.Summary = sess.LastSummary
	}
	if sess.State == StateError {
		v.ErrorBanner = sess.LastError
	}
	if sess.ShowPrompt {
		v.Prompt = sess.LastPrompt
	}

	tpl := template.Must(template.ParseFiles(
		filepath.Join("templates", "ui", "index.html"),
	))
	if err := tpl.Execute(w, v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// HandleIndex shows the form with the session's last state.
func (h *Shell) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	sess := h.session(w, r)
	h.render(w, sess, "")
}

// HandleSummarize runs one submission: validate, build the prompt, call the
// completion endpoint, render the summary or the error. Idempotent per click.
func (h *Shell) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := h.session(w, r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.failValidation(w, sess, "could not parse form: "+err.Error())
		return
	}

	// Submit is the only transition trigger.
	if err := sess.Transition(StateLoading); err != nil {
		logx.Warn("UI", "session %s: %v", sess.ID, err)
		sess.State = StateIdle
		_ = sess.Transition(StateLoading)
	}

	sess.Overrides.APIKey = strings.TrimSpace(r.FormValue("api_key"))
	sess.Overrides.APIBase = strings.TrimSpace(r.FormValue("api_base"))
	sess.Overrides.Model = strings.TrimSpace(r.FormValue("model"))

	if v := r.FormValue("length"); v != "" {
		sess.Length = v
	}
	if v := r.FormValue("tone"); v != "" {
		sess.Tone = v
	}
	sess.BulletPoints = r.FormValue("bullets") != ""
	sess.IncludeTitle = r.FormValue("title") != ""
	sess.ShowPrompt = r.FormValue("show_prompt") != ""

	text := r.FormValue("doc")
	if file, fh, err := r.FormFile("file"); err == nil {
		file.Close()
		extracted, uerr := readUpload(fh)
		if uerr != nil {
			h.failValidation(w, sess, uerr.Error())
			return
		}
		text = extracted
	}

	apiKey, apiBase, model := sess.effective(h.env)
	switch {
	case apiKey == "":
		h.failValidation(w, sess, "provide an API key in the configuration panel")
		return
	case apiBase == "":
		h.failValidation(w, sess, "provide the API base URL in the configuration panel")
		return
	case model == "":
		h.failValidation(w, sess, "provide a model name in the configuration panel")
		return
	}

	lp, ok := h.presets.Length(sess.Length)
	if !ok {
		h.failValidation(w, sess, "unknown target length "+sess.Length)
		return
	}
	tp, ok := h.presets.Tone(sess.Tone)
	if !ok {
		h.failValidation(w, sess, "unknown tone "+sess.Tone)
		return
	}

	p, err := prompt.Build(text, prompt.Options{
		TargetWords:  lp.Words,
		ToneStyle:    tp.Style,
		BulletPoints: sess.BulletPoints,
		IncludeTitle: sess.IncludeTitle,
	})
	if err != nil {
		h.failValidation(w, sess, err.Error())
		return
	}

	sess.LastInput = text
	sess.InputChars = len(text)
	sess.LastPrompt = p

	client := h.newClient(apiBase, apiKey, model, h.env.Timeout)
	logx.L(sess.ID, "UI", "summarize: %d chars, length=%s tone=%s model=%s", len(text), sess.Length, sess.Tone, model)

	timer := logx.Start(sess.ID, "UI", "completion call")
	summary, err := client.Complete(r.Context(), p, lp.MaxTokens)
	timer.End()

	if err != nil {
		_ = sess.Transition(StateError)
		sess.LastError = err.Error()
		sess.LastSummary = ""
		metrics.SummarizeRequests.Inc(map[string]string{"outcome": "completion_error"})
		logx.Error("UI", "summarize %s failed: %v", sess.ID, err)
	} else {
		_ = sess.Transition(StateResult)
		sess.LastSummary = summary
		sess.LastError = ""
		metrics.SummarizeRequests.Inc(map[string]string{"outcome": "ok"})
	}

	h.store.Save(sess)
	h.render(w, sess, "")
}

// failValidation renders the form again with an inline error. The session
// returns to Idle: validation failures never reach the network.
func (h *Shell) failValidation(w http.ResponseWriter, sess Session, msg string) {
	metrics.SummarizeRequests.Inc(map[string]string{"outcome": "validation_error"})
	if sess.State == StateLoading {
		_ = sess.Transition(StateIdle)
	}
	h.store.Save(sess)
	h.render(w, sess, msg)
}
