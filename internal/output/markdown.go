package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownWriter emits the response body followed by a metadata footer.
// Model output is usually already markdown, so the body passes through
// untouched.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, resp *Response) error {
	var b strings.Builder
	b.WriteString(resp.Text)
	if !strings.HasSuffix(resp.Text, "\n") {
		b.WriteString("\n")
	}

	b.WriteString("\n---\n")
	fmt.Fprintf(&b, "*%s / %s", resp.Provider, resp.Model)
	if resp.InputTokens > 0 || resp.OutputTokens > 0 {
		fmt.Fprintf(&b, " - %d in / %d out tokens", resp.InputTokens, resp.OutputTokens)
	}
	if resp.Cached {
		b.WriteString(" (cached)")
	}
	b.WriteString("*\n")

	_, err := io.WriteString(w, b.String())
	return err
}
