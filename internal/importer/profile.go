package importer

import "strings"

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSigned means one signed column, negative for expenses.
	amountSigned amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
	// amountTyped means an unsigned amount plus an income/expense type column.
	amountTyped
)

// Profile describes a CSV layout by the header names each column may carry.
// Header names are compared lowercased and trimmed.
type Profile struct {
	Name       string
	Date       []string
	Desc       []string
	AmountMode amountMode
	Amount     []string
	Debit      []string
	Credit     []string
	Type       []string
}

var (
	dateHeaders     = []string{"date", "data", "data mov.", "data mov", "booking date", "transaction date", "fecha"}
	descHeaders     = []string{"description", "descrição", "descricao", "details", "memo", "payee", "concepto"}
	amountHeaders   = []string{"amount", "montante", "movimento", "value", "valor", "importe"}
	debitHeaders    = []string{"débito", "debito", "debit", "withdrawal", "money out"}
	creditHeaders   = []string{"crédito", "credito", "credit", "deposit", "money in"}
	typeHeaders     = []string{"type", "tipo"}
	categoryHeaders = []string{"category", "categoria"}
)

// profiles is the ordered list of layouts tried during auto-detection.
// More specific profiles come first.
var profiles = []Profile{
	{
		Name:       "typed",
		Date:       dateHeaders,
		Desc:       descHeaders,
		AmountMode: amountTyped,
		Amount:     amountHeaders,
		Type:       typeHeaders,
	},
	{
		Name:       "split",
		Date:       dateHeaders,
		Desc:       descHeaders,
		AmountMode: amountSplit,
		Debit:      debitHeaders,
		Credit:     creditHeaders,
	},
	{
		Name:       "signed",
		Date:       dateHeaders,
		Desc:       descHeaders,
		AmountMode: amountSigned,
		Amount:     amountHeaders,
	},
}

// colIndex maps normalized header names to their index in the row.
type colIndex map[string]int

func newColIndex(row []string) colIndex {
	cols := make(colIndex, len(row))

	for i, cell := range row {
		name := normalizeHeader(cell)
		if name == "" {
			continue
		}

		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}

	return cols
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "\ufeff")))
}

// find returns the index of the first alias present, or -1.
func (c colIndex) find(aliases []string) int {
	for _, a := range aliases {
		if i, ok := c[a]; ok {
			return i
		}
	}

	return -1
}

// layout is a Profile resolved against a concrete header row.
type layout struct {
	profile  *Profile
	date     int
	desc     int
	amount   int
	debit    int
	credit   int
	typ      int
	category int
}

func (p *Profile) resolve(cols colIndex) (*layout, bool) {
	l := &layout{
		profile:  p,
		date:     cols.find(p.Date),
		desc:     cols.find(p.Desc),
		amount:   -1,
		debit:    -1,
		credit:   -1,
		typ:      -1,
		category: cols.find(categoryHeaders),
	}

	if l.date < 0 || l.desc < 0 {
		return nil, false
	}

	switch p.AmountMode {
	case amountSigned:
		l.amount = cols.find(p.Amount)
		return l, l.amount >= 0
	case amountSplit:
		l.debit = cols.find(p.Debit)
		l.credit = cols.find(p.Credit)
		return l, l.debit >= 0 && l.credit >= 0
	case amountTyped:
		l.amount = cols.find(p.Amount)
		l.typ = cols.find(p.Type)
		return l, l.amount >= 0 && l.typ >= 0
	}

	return nil, false
}
