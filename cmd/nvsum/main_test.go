package main

import (
	"context"
	"errors"
	"testing"
)

type stubRunner struct {
	ran bool
	err error
}

func (s *stubRunner) Run(ctx context.Context) error {
	s.ran = true
	return s.err
}

// swapIndirections replaces the app constructor and fatalf for one test and
// reports whether fatalf was hit.
func swapIndirections(t *testing.T, ctor func() (runner, error)) *bool {
	t.Helper()
	oldCtor := appCtor
	oldFatalf := fatalf
	t.Cleanup(func() { appCtor = oldCtor; fatalf = oldFatalf })

	appCtor = ctor
	calledFatal := false
	fatalf = func(format string, v ...any) { calledFatal = true }
	return &calledFatal
}

func TestRun_Success(t *testing.T) {
	sr := &stubRunner{}
	calledFatal := swapIndirections(t, func() (runner, error) { return sr, nil })

	run(context.Background())

	if !sr.ran {
		t.Fatalf("expected runner.Run to be called")
	}
	if *calledFatal {
		t.Fatalf("did not expect fatalf to be called")
	}
}

func TestRun_FatalOnCtorError(t *testing.T) {
	calledFatal := swapIndirections(t, func() (runner, error) { return nil, errors.New("boom") })

	run(context.Background())

	if !*calledFatal {
		t.Fatalf("expected fatalf to be called on ctor error")
	}
}

func TestRun_FatalOnRunError(t *testing.T) {
	sr := &stubRunner{err: errors.New("oops")}
	calledFatal := swapIndirections(t, func() (runner, error) { return sr, nil })

	run(context.Background())

	if !*calledFatal {
		t.Fatalf("expected fatalf to be called on run error")
	}
}
