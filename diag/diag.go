// Package diag implements the diagnostics record and sink: structured
// (severity, code, location, message) values with optional hints,
// suggestions, and "caused by" chains, plus grapheme-safe source-context
// rendering for terminal output.
package diag

import (
	"fmt"

	"github.com/lumenlang/lumen/token"
)

// Severity classifies a Diagnostic.
type Severity uint8

const (
	Error Severity = iota
	Warning
	Info
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	}
	return "unknown"
}

// Code is a stable, greppable diagnostic identifier, e.g. "E0042".
type Code string

// Diagnostic is a single reported problem: what (Message), where
// (Line/Column derived from Span), how bad (Severity), and why
// (CausedBy — an enclosing construct the parser was inside when recovery
// gave up, surfaced as "caused by: unclosed X").
type Diagnostic struct {
	Severity   Severity
	Code       Code
	Span       token.Span
	Message    string
	Hint       string
	Suggestion string
	CausedBy   string
	// SourceContext is the full line (or lines) of source the diagnostic
	// points into, set by a Sink that has access to the original text.
	SourceContext string
}

// Line reports the 1-based line the diagnostic starts on.
func (d Diagnostic) Line() int { return d.Span.Start.Line }

// Column reports the 1-based column the diagnostic starts on.
func (d Diagnostic) Column() int { return d.Span.Start.Column }

func (d Diagnostic) String() string {
	loc := fmt.Sprintf("%d:%d", d.Line(), d.Column())
	s := fmt.Sprintf("%s: %s [%s] %s", loc, d.Severity, d.Code, d.Message)
	if d.CausedBy != "" {
		s += fmt.Sprintf(" (caused by: %s)", d.CausedBy)
	}
	if d.Hint != "" {
		s += fmt.Sprintf("\n  hint: %s", d.Hint)
	}
	if d.Suggestion != "" {
		s += fmt.Sprintf("\n  suggestion: %s", d.Suggestion)
	}
	return s
}

// Sink collects diagnostics as they're produced. Parser, Builder, and any
// future analysis pass all report through the same interface so callers
// can choose where diagnostics end up (in-memory, streamed, filtered).
type Sink interface {
	Report(d Diagnostic)
	Diagnostics() []Diagnostic
	HasErrors() bool
}

// MemorySink is the default Sink: an append-only slice held in memory.
type MemorySink struct {
	diags []Diagnostic
}

// NewMemorySink returns a ready-to-use in-memory Sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Report(d Diagnostic) {
	s.diags = append(s.diags, d)
}

func (s *MemorySink) Diagnostics() []Diagnostic {
	return s.diags
}

func (s *MemorySink) HasErrors() bool {
	for _, d := range s.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}
