package output

import (
	"fmt"
	"io"
	"os"
)

// Response is a rendered AI result plus request metadata.
type Response struct {
	Text         string `json:"text"`
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	InputTokens  int    `json:"inputTokens,omitempty"`
	OutputTokens int    `json:"outputTokens,omitempty"`
	ElapsedMs    int64  `json:"elapsedMs,omitempty"`
	Cached       bool   `json:"cached,omitempty"`
}

// Writer renders a response in one display format.
type Writer interface {
	Write(w io.Writer, resp *Response) error
}

// GetWriter returns a writer for the given format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteResponse writes the response to outPath, or stdout when outPath
// is empty.
func WriteResponse(resp *Response, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, resp)
}
