package output

import (
	"io"
	"strings"
)

// TextWriter emits the response body as-is, with a trailing newline.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, resp *Response) error {
	text := resp.Text
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}
