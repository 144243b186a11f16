// Package prompt builds the summarization prompt sent to the completion
// endpoint. It is pure: no I/O, no mutation of its inputs.
package prompt

import (
	"errors"
	"strings"
)

// MaxInputChars bounds the document embedded in a prompt. Longer input is
// truncated and marked so the model never sees a silently clipped document.
const MaxInputChars = 12000

const truncationMark = "\n\n[...truncated...]"

const instruction = "You are a precise summarizer that produces accurate, faithful summaries."

// ErrEmptyInput is returned when there is nothing to summarize. It is a
// validation error: the UI surfaces it inline, before any network call.
var ErrEmptyInput = errors.New("nothing to summarize: input is empty")

type Options struct {
	TargetWords  string // e.g. "120-150 words"
	ToneStyle    string // e.g. "neutral, objective"
	BulletPoints bool
	IncludeTitle bool
}

// Build assembles the full prompt for a document. The document appears in the
// output verbatim, truncated at MaxInputChars.
func Build(docText string, opts Options) (string, error) {
	text := strings.TrimSpace(docText)
	if text == "" {
		return "", ErrEmptyInput
	}
	if len(text) > MaxInputChars {
		text = text[:MaxInputChars] + truncationMark
	}

	words := opts.TargetWords
	if words == "" {
		words = "about 150 words"
	}
	tone := opts.ToneStyle
	if tone == "" {
		tone = "neutral, objective"
	}

	var format []string
	if opts.IncludeTitle {
		format = append(format, "Start with a single-line title that captures the main topic.")
	}
	if opts.BulletPoints {
		format = append(format, "Use bullet points for the key takeaways.")
	}
	format = append(format,
		"Avoid speculation. Preserve the original meaning.",
		"If the input is not summarizable, say so briefly.",
	)

	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n\nGoal: summarize the document below.")
	b.WriteString("\nTarget length: ")
	b.WriteString(words)
	b.WriteString("\nTone: ")
	b.WriteString(tone)
	b.WriteString("\nFormatting:")
	for _, f := range format {
		b.WriteString("\n- ")
		b.WriteString(f)
	}
	b.WriteString("\n\nDocument:\n")
	b.WriteString(text)

	return b.String(), nil
}
