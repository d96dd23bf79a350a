package runner

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/aretw0/scrambler/pkg/domain"
)

// Record is one processed message/command pair.
type Record struct {
	Line      int              `json:"line"`
	Input     string           `json:"input"`
	Commands  string           `json:"commands"`
	Direction domain.Direction `json:"direction"`
	Output    string           `json:"output"`
}

// RecordWriter is the output strategy of a Runner.
type RecordWriter interface {
	WriteRecord(rec Record) error
}

// TextWriter writes each result followed by a single newline.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a buffered plain-text writer. Runner flushes it at the end of a run.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

func (t *TextWriter) WriteRecord(rec Record) error {
	if _, err := t.w.WriteString(rec.Output); err != nil {
		return err
	}
	return t.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (t *TextWriter) Flush() error {
	return t.w.Flush()
}

// JSONWriter writes one JSON object per record (NDJSON).
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates an NDJSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

func (j *JSONWriter) WriteRecord(rec Record) error {
	return j.enc.Encode(rec)
}

// MultiWriter fans a record out to several writers, like io.MultiWriter.
type MultiWriter []RecordWriter

func (m MultiWriter) WriteRecord(rec Record) error {
	for _, w := range m {
		if err := w.WriteRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiWriter) Flush() error {
	for _, w := range m {
		if f, ok := w.(interface{ Flush() error }); ok {
			if err := f.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}
