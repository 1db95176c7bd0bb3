package formats

import (
	"bytes"
	"encoding/csv"
	"os"

	"github.com/lilellia/fluidpath/atomicfile"
	"github.com/lilellia/fluidpath/fserr"
)

// ReadCSV parses the CSV file at path. With hasHeader, the first row
// is returned separately as the header.
func ReadCSV(path string, hasHeader bool) (header []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fserr.New("read_csv", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fserr.WithKind("read_csv", path, fserr.IOFailure, err)
	}
	if hasHeader && len(records) > 0 {
		return records[0], records[1:], nil
	}
	return nil, records, nil
}

// WriteCSV atomically writes rows (optionally preceded by a header
// row) as CSV to path.
func WriteCSV(path string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if len(header) > 0 {
		if err := w.Write(header); err != nil {
			return fserr.WithKind("write_csv", path, fserr.IOFailure, err)
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return fserr.WithKind("write_csv", path, fserr.IOFailure, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fserr.WithKind("write_csv", path, fserr.IOFailure, err)
	}
	return atomicfile.WriteFile(path, buf.Bytes(), 0o644)
}
