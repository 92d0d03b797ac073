package csv

import (
	stdcsv "encoding/csv"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/txreplay/internal/domain"
)

// Writer renders the final account snapshot as CSV with the fields client,
// available, held, total and locked.
type Writer struct {
	csv *stdcsv.Writer
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: stdcsv.NewWriter(w)}
}

// WriteAccounts writes the header row followed by one row per account, in
// the order the sequence yields them.
func (w *Writer) WriteAccounts(accounts iter.Seq[*domain.Account]) error {
	if err := w.csv.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}

	for acc := range accounts {
		row := []string{
			strconv.FormatUint(uint64(acc.ID), 10),
			formatAmount(acc.Available),
			formatAmount(acc.Held),
			formatAmount(acc.Total),
			strconv.FormatBool(acc.Locked),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	w.csv.Flush()
	return w.csv.Error()
}

// formatAmount renders d with up to 4 fractional digits, stripping trailing
// zeros and a trailing decimal point (100.5 rather than 100.5000, 100 rather
// than 100.0000).
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(4)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
