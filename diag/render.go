package diag

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// maxSnippetGraphemes bounds how much of a source line is shown around a
// diagnostic's column, counted in grapheme clusters (not bytes or runes)
// so multi-codepoint emoji and combining-mark sequences in user source
// truncate cleanly rather than splitting a cluster in half.
const maxSnippetGraphemes = 80

// Render produces the compiler's standard text format: one line of
// "location: severity [code] message", an optional caused-by line, a
// source snippet with a caret under the offending column, then hint and
// suggestion lines.
func Render(d Diagnostic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: %s[%s]: %s\n", d.Line(), d.Column(), d.Severity, d.Code, d.Message)
	if d.CausedBy != "" {
		fmt.Fprintf(&b, "  caused by: %s\n", d.CausedBy)
	}
	if d.SourceContext != "" {
		snippet, caretOffset := truncateSnippet(d.SourceContext, d.Column())
		fmt.Fprintf(&b, "  %s\n", snippet)
		fmt.Fprintf(&b, "  %s^\n", strings.Repeat(" ", caretOffset))
	}
	if d.Hint != "" {
		fmt.Fprintf(&b, "  hint: %s\n", d.Hint)
	}
	if d.Suggestion != "" {
		fmt.Fprintf(&b, "  suggestion: %s\n", d.Suggestion)
	}
	return b.String()
}

// truncateSnippet trims line to at most maxSnippetGraphemes grapheme
// clusters centered on column, returning the trimmed text and the
// (grapheme-counted) offset of column within it for caret placement.
func truncateSnippet(line string, column int) (string, int) {
	clusters := splitGraphemes(line)
	if len(clusters) <= maxSnippetGraphemes {
		return line, clampColumn(column-1, len(clusters))
	}

	target := column - 1
	half := maxSnippetGraphemes / 2
	start := target - half
	if start < 0 {
		start = 0
	}
	end := start + maxSnippetGraphemes
	if end > len(clusters) {
		end = len(clusters)
		start = end - maxSnippetGraphemes
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	prefix := 0
	if start > 0 {
		b.WriteString("... ")
		prefix = 4
	}
	for _, c := range clusters[start:end] {
		b.WriteString(c)
	}
	if end < len(clusters) {
		b.WriteString(" ...")
	}
	return b.String(), prefix + clampColumn(target-start, end-start)
}

func clampColumn(col, max int) int {
	if col < 0 {
		return 0
	}
	if col > max {
		return max
	}
	return col
}

func splitGraphemes(s string) []string {
	var clusters []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}
