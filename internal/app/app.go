package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ccastromar/nvsum/internal/config"
	"github.com/ccastromar/nvsum/internal/llm"
	"github.com/ccastromar/nvsum/internal/logx"
	"github.com/ccastromar/nvsum/internal/runtime"
	"github.com/ccastromar/nvsum/internal/ui"
)

type App struct {
	env     *config.EnvVars
	presets *config.Presets
	shell   *ui.Shell
	llm     llm.CompletionClient
	http    *HTTPServer
}

func New() (*App, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}
	logx.SetLevel(env.LogLevel)

	presets, err := config.LoadPresets("definitions")
	if err != nil {
		return nil, err
	}

	shell := ui.NewShell(env, presets)

	// A readiness client exists only when the environment carries a key;
	// otherwise the key arrives per session through the UI.
	var client llm.CompletionClient
	if env.APIKey != "" {
		c := llm.NewNvidiaClient(env.APIBase, env.APIKey, env.Model)
		c.Timeout = env.Timeout
		client = c
	}

	rt := &runtime.Runtime{
		PresetsLoaded: true,
		LLMClient:     client,
	}

	httpServer := NewHTTPServer(shell, rt, env)

	return &App{
		env:     env,
		presets: presets,
		shell:   shell,
		llm:     client,
		http:    httpServer,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.http.Start(gctx)
	})

	logx.Info("App", "nvsum started (api_base=%s model=%s)", a.env.APIBase, a.env.Model)

	return g.Wait()
}
