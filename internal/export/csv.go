package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVOptions tunes WriteCSV.
type CSVOptions struct {
	// BOM prefixes the output with a UTF-8 byte order mark so spreadsheet
	// applications pick the right encoding.
	BOM bool
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes a header line and one record per row using CRLF line
// endings. Absent values are empty fields.
func WriteCSV(w io.Writer, rows []Row, opts CSVOptions) error {
	if opts.BOM {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("writing BOM: %w", err)
		}
	}
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.fields()); err != nil {
			return fmt.Errorf("writing csv row %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// fields renders r in Headers order with absent values as "".
func (r Row) fields() []string {
	return []string{
		r.ID,
		strconv.Itoa(r.Depth),
		r.Title,
		deref(r.StartDate),
		deref(r.DueDate),
		formatHours(r.InvestedTimeHours),
		formatInt(r.ElapsedTimeDays),
		deref(r.Assignee),
		deref(r.Status),
		r.ParentPath,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatHours(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
