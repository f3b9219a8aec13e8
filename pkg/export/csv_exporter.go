package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// CSVExporter renders csv-tagged struct slices and decodes them back.
type CSVExporter struct {
	comma rune
}

// NewCSVExporter builds a comma separated exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{comma: ','}
}

// Render encodes rows, a slice of structs or struct pointers, with a header line.
func (e *CSVExporter) Render(rows interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	writer.Comma = e.comma
	safe := gocsv.NewSafeCSVWriter(writer)
	if err := gocsv.MarshalCSV(rows, safe); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	safe.Flush()
	if err := safe.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reads CSV with a header line into out, a pointer to a slice of structs.
func (e *CSVExporter) Decode(in io.Reader, out interface{}) error {
	reader := csv.NewReader(in)
	reader.Comma = e.comma
	reader.TrimLeadingSpace = true
	if err := gocsv.UnmarshalCSV(reader, out); err != nil {
		return fmt.Errorf("read csv: %w", err)
	}
	return nil
}
