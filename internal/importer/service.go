package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/ascend/internal/category"
	"github.com/MrJamesThe3rd/ascend/internal/encoding"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer
type TransactionImporter interface {
	Import(ctx context.Context, userID string, params []transaction.CreateParams) (*transaction.ImportResult, error)
}

type RuleSource interface {
	Matcher(ctx context.Context, userID string) (*category.Matcher, error)
}

type Service struct {
	parser *Parser
	txs    TransactionImporter
	rules  RuleSource
}

func NewService(txs TransactionImporter, rules RuleSource) *Service {
	return &Service{
		parser: NewParser(),
		txs:    txs,
		rules:  rules,
	}
}

// ParseError means the upload itself is unusable, as opposed to a failure
// storing its rows.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

type Result struct {
	Charset    encoding.Charset
	Profile    string
	Imported   []*transaction.Transaction
	Duplicates []transaction.CreateParams
}

// Import parses r, fills missing categories from the user's rules and stores
// the rows in one batch.
func (s *Service) Import(ctx context.Context, userID string, r io.Reader) (*Result, error) {
	parsed, err := s.parser.Parse(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	matcher, err := s.rules.Matcher(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load category rules: %w", err)
	}

	for i := range parsed.Rows {
		if parsed.Rows[i].Category != nil {
			continue
		}

		if c := matcher.Match(parsed.Rows[i].Description); c != "" {
			parsed.Rows[i].Category = &c
		}
	}

	res, err := s.txs.Import(ctx, userID, parsed.Rows)
	if err != nil {
		return nil, err
	}

	return &Result{
		Charset:    parsed.Charset,
		Profile:    parsed.Profile,
		Imported:   res.Imported,
		Duplicates: res.Duplicates,
	}, nil
}
