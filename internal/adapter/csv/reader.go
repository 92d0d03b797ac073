// Package csv adapts the delimited text encoding of operation records and
// account snapshots to and from the engine's domain types.
package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/txreplay/internal/domain"
)

// Reader produces operation records from a CSV stream with a header row
// naming the fields type, client, tx and amount. The type field is matched
// case-insensitively, surrounding whitespace is trimmed, and the amount
// column may be absent for rows that do not carry one.
type Reader struct {
	csv  *stdcsv.Reader
	cols map[string]int
	row  int
}

// NewReader creates a Reader over r. The header row is consumed on the first
// call to Read.
func NewReader(r io.Reader) *Reader {
	cr := stdcsv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// Read returns the next record. It returns io.EOF once the stream is
// exhausted; any other error marks a single bad row and the stream stays
// readable.
func (r *Reader) Read() (domain.Record, error) {
	if r.cols == nil {
		if err := r.readHeader(); err != nil {
			return domain.Record{}, err
		}
	}

	row, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return domain.Record{}, io.EOF
		}
		r.row++
		return domain.Record{}, fmt.Errorf("row %d: %w", r.row, err)
	}
	r.row++

	rec, err := r.parseRow(row)
	if err != nil {
		return domain.Record{}, fmt.Errorf("row %d: %w", r.row, err)
	}
	return rec, nil
}

func (r *Reader) readHeader() error {
	header, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"type", "client", "tx"} {
		if _, ok := cols[required]; !ok {
			return fmt.Errorf("header is missing the %q field", required)
		}
	}

	r.cols = cols
	return nil
}

func (r *Reader) parseRow(row []string) (domain.Record, error) {
	kind, err := parseKind(r.field(row, "type"))
	if err != nil {
		return domain.Record{}, err
	}

	client, err := strconv.ParseUint(r.field(row, "client"), 10, 16)
	if err != nil {
		return domain.Record{}, fmt.Errorf("invalid client id: %w", err)
	}

	tx, err := strconv.ParseUint(r.field(row, "tx"), 10, 32)
	if err != nil {
		return domain.Record{}, fmt.Errorf("invalid tx id: %w", err)
	}

	rec := domain.Record{
		Kind:   kind,
		Client: domain.ClientID(client),
		Tx:     domain.TxID(tx),
	}

	// amount is required for deposits and withdrawals, ignored otherwise
	if kind == domain.KindDeposit || kind == domain.KindWithdrawal {
		raw := r.field(row, "amount")
		if raw == "" {
			return domain.Record{}, fmt.Errorf("missing amount for %s", kind)
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.Record{}, fmt.Errorf("invalid amount: %w", err)
		}
		if amount.IsNegative() {
			return domain.Record{}, fmt.Errorf("negative amount %s", amount)
		}
		rec.Amount = amount
	}

	return rec, nil
}

// field returns the trimmed value of the named column, or "" when the row is
// too short or the column is not present in the header.
func (r *Reader) field(row []string, name string) string {
	idx, ok := r.cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseKind(raw string) (domain.RecordKind, error) {
	switch strings.ToLower(raw) {
	case "deposit":
		return domain.KindDeposit, nil
	case "withdrawal":
		return domain.KindWithdrawal, nil
	case "dispute":
		return domain.KindDispute, nil
	case "resolve":
		return domain.KindResolve, nil
	case "chargeback":
		return domain.KindChargeback, nil
	default:
		return 0, fmt.Errorf("unknown record type %q", raw)
	}
}
