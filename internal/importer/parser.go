// Package importer turns bank and spreadsheet CSV exports into transactions.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ascend/internal/encoding"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
)

// ErrUnknownFormat is returned when no header row matches a known profile.
var ErrUnknownFormat = errors.New("no recognisable header: expected date, description and amount columns")

// separators are tried in order. Semicolon goes first because comma is also a
// decimal separator in the files that use it.
var separators = []rune{';', '\t', ','}

var dateLayouts = []string{
	time.DateOnly,
	"02-01-2006",
	"02/01/2006",
	"02.01.2006",
	"2006/01/02",
}

// Parsed is the outcome of reading one file.
type Parsed struct {
	Rows    []transaction.CreateParams
	Charset encoding.Charset
	Profile string
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) (*Parsed, error) {
	utf8r, charset, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	for _, sep := range separators {
		rows, err := readCSV(data, sep)
		if err != nil {
			continue
		}

		l, headerIdx := detectLayout(rows)
		if l == nil {
			continue
		}

		txs, err := parseRows(l, rows[headerIdx+1:], headerIdx+1)
		if err != nil {
			return nil, err
		}

		return &Parsed{Rows: txs, Charset: charset, Profile: l.profile.Name}, nil
	}

	return nil, ErrUnknownFormat
}

func readCSV(data []byte, sep rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sep
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

// detectLayout scans rows for a header that matches a known profile.
// Preamble lines before the header are ignored.
func detectLayout(rows [][]string) (*layout, int) {
	for rowIdx, row := range rows {
		if len(row) < 3 {
			continue
		}

		cols := newColIndex(row)

		for i := range profiles {
			if l, ok := profiles[i].resolve(cols); ok {
				return l, rowIdx
			}
		}
	}

	return nil, 0
}

// parseRows extracts transactions from data rows. Rows without a parseable
// date or with a zero amount are footers or noise and are skipped.
// headerRowNum is the 0-based index of the header in the file.
func parseRows(l *layout, rows [][]string, headerRowNum int) ([]transaction.CreateParams, error) {
	var txs []transaction.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2

		date, ok := parseDate(cellValue(row, l.date))
		if !ok {
			continue
		}

		amount, typ, ok, err := l.amount(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		if !ok {
			continue
		}

		desc := cellValue(row, l.desc)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		params := transaction.CreateParams{
			Type:        typ,
			Amount:      amount,
			Description: desc,
			Date:        date,
		}

		if c := cellValue(row, l.category); c != "" {
			params.Category = &c
		}

		txs = append(txs, params)
	}

	return txs, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// amount returns the absolute amount and its type. ok is false for rows that
// carry no movement.
func (l *layout) amount(row []string) (decimal.Decimal, transaction.Type, bool, error) {
	switch l.profile.AmountMode {
	case amountSigned:
		return signedAmount(cellValue(row, l.amount))
	case amountSplit:
		return splitAmount(cellValue(row, l.debit), cellValue(row, l.credit))
	case amountTyped:
		return typedAmount(cellValue(row, l.amount), cellValue(row, l.typ))
	}

	return decimal.Zero, "", false, nil
}

func signedAmount(s string) (decimal.Decimal, transaction.Type, bool, error) {
	if s == "" {
		return decimal.Zero, "", false, nil
	}

	d, err := parseAmount(s)
	if err != nil {
		return decimal.Zero, "", false, fmt.Errorf("invalid amount %q", s)
	}

	switch d.Sign() {
	case -1:
		return d.Neg(), transaction.TypeExpense, true, nil
	case 1:
		return d, transaction.TypeIncome, true, nil
	}

	return decimal.Zero, "", false, nil
}

func splitAmount(debit, credit string) (decimal.Decimal, transaction.Type, bool, error) {
	if debit != "" {
		d, err := parseAmount(debit)
		if err != nil {
			return decimal.Zero, "", false, fmt.Errorf("invalid debit %q", debit)
		}

		if !d.IsZero() {
			return d.Abs(), transaction.TypeExpense, true, nil
		}
	}

	if credit != "" {
		d, err := parseAmount(credit)
		if err != nil {
			return decimal.Zero, "", false, fmt.Errorf("invalid credit %q", credit)
		}

		if !d.IsZero() {
			return d.Abs(), transaction.TypeIncome, true, nil
		}
	}

	return decimal.Zero, "", false, nil
}

func typedAmount(amount, typ string) (decimal.Decimal, transaction.Type, bool, error) {
	t := transaction.Type(strings.ToLower(typ))
	if !t.Valid() {
		return decimal.Zero, "", false, fmt.Errorf("invalid type %q", typ)
	}

	if amount == "" {
		return decimal.Zero, "", false, nil
	}

	d, err := parseAmount(amount)
	if err != nil {
		return decimal.Zero, "", false, fmt.Errorf("invalid amount %q", amount)
	}

	if d.IsZero() {
		return decimal.Zero, "", false, nil
	}

	return d.Abs(), t, true, nil
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
