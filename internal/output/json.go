package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Output formats accepted by Output
const (
	FormatTable     = "table"
	FormatJSON      = "json"
	FormatJSONLines = "jsonl"
)

// IsJSON reports whether format produces machine-readable JSON
func IsJSON(format string) bool {
	return format == FormatJSON || format == FormatJSONLines
}

// JSONTo writes data as indented JSON to the given writer
func JSONTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// JSONLinesTo writes one compact JSON document per line. A slice yields one
// line per element so ranked results can be piped into line-oriented tools;
// any other value is written as a single line.
func JSONLinesTo(w io.Writer, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if len(raw) == 0 || raw[0] != '[' {
		_, err := fmt.Fprintf(w, "%s\n", raw)
		return err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}

	var line bytes.Buffer
	for _, item := range items {
		line.Reset()
		if err := json.Compact(&line, item); err != nil {
			return err
		}
		line.WriteByte('\n')
		if _, err := w.Write(line.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// Output writes data to stdout in the requested format
func Output(format string, data interface{}) error {
	return OutputTo(os.Stdout, format, data)
}

// OutputTo writes data to w in the requested format
func OutputTo(w io.Writer, format string, data interface{}) error {
	switch format {
	case FormatJSON:
		return JSONTo(w, data)
	case FormatJSONLines:
		return JSONLinesTo(w, data)
	case FormatTable, "":
		return TableTo(w, data)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
