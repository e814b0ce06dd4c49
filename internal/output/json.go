package output

import (
	"encoding/json"
	"io"
)

// JSONWriter emits the full response record as indented JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, resp *Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
