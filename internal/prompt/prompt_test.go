package prompt

import (
	"errors"
	"strings"
	"testing"
)

func TestBuild_ContainsInputVerbatim(t *testing.T) {
	inputs := []string{
		"hello world",
		"a",
		"Streamlit is an open-source library.\nIt builds data apps.",
		`quotes "and" <tags> & symbols % $`,
		strings.Repeat("lorem ipsum ", 500), // well under the bound
	}
	for _, in := range inputs {
		out, err := Build(in, Options{})
		if err != nil {
			t.Fatalf("Build(%q...) unexpected error: %v", in[:min(20, len(in))], err)
		}
		if !strings.Contains(out, strings.TrimSpace(in)) {
			t.Fatalf("prompt does not contain input verbatim for %q...", in[:min(20, len(in))])
		}
	}
}

func TestBuild_RejectsEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t\n"} {
		_, err := Build(in, Options{})
		if !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput for %q, got %v", in, err)
		}
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	in := "  some document  "
	want := "  some document  "
	if _, err := Build(in, Options{}); err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if in != want {
		t.Fatalf("input was mutated: %q", in)
	}
}

func TestBuild_TruncatesLongInput(t *testing.T) {
	long := strings.Repeat("x", MaxInputChars+500)
	out, err := Build(long, Options{})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if strings.Contains(out, long) {
		t.Fatalf("expected oversized input to be truncated")
	}
	if !strings.Contains(out, long[:MaxInputChars]) {
		t.Fatalf("expected the first %d chars to survive verbatim", MaxInputChars)
	}
	if !strings.Contains(out, "[...truncated...]") {
		t.Fatalf("expected truncation marker in prompt")
	}
}

func TestBuild_OptionsWording(t *testing.T) {
	out, err := Build("doc", Options{
		TargetWords:  "200-300 words",
		ToneStyle:    "concise, business-professional",
		BulletPoints: true,
		IncludeTitle: true,
	})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	for _, want := range []string{
		"Target length: 200-300 words",
		"Tone: concise, business-professional",
		"bullet points",
		"single-line title",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("prompt missing %q:\n%s", want, out)
		}
	}

	plain, err := Build("doc", Options{})
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if strings.Contains(plain, "bullet points") || strings.Contains(plain, "single-line title") {
		t.Fatalf("format directives should be absent when options are off:\n%s", plain)
	}
}
