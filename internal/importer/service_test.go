package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ascend/internal/category"
	"github.com/MrJamesThe3rd/ascend/internal/importer"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
)

const userID = "user-1"

const statement = `Data mov.;Descrição;Montante;Categoria
30-01-2026;PINGO DOCE ALVALADE;-42,10;
29-01-2026;UBER TRIP;-8,00;Work
28-01-2026;NETFLIX;-13,99;
`

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := importer.NewMockTransactionImporter(ctrl)
	rules := importer.NewMockRuleSource(ctrl)

	rules.EXPECT().Matcher(gomock.Any(), userID).Return(category.NewMatcher([]*category.Rule{
		{Pattern: "pingo doce", Category: "Groceries"},
		{Pattern: "uber", Category: "Transport"},
	}), nil)

	txs.EXPECT().
		Import(gomock.Any(), userID, gomock.Len(3)).
		DoAndReturn(func(_ context.Context, _ string, params []transaction.CreateParams) (*transaction.ImportResult, error) {
			require.NotNil(t, params[0].Category)
			assert.Equal(t, "Groceries", *params[0].Category)

			require.NotNil(t, params[1].Category)
			assert.Equal(t, "Work", *params[1].Category, "file category wins over rules")

			assert.Nil(t, params[2].Category)

			return &transaction.ImportResult{
				Imported:   []*transaction.Transaction{{}, {}},
				Duplicates: params[2:],
			}, nil
		})

	res, err := importer.NewService(txs, rules).Import(context.Background(), userID, strings.NewReader(statement))
	require.NoError(t, err)

	assert.Equal(t, "signed", res.Profile)
	assert.Len(t, res.Imported, 2)
	assert.Len(t, res.Duplicates, 1)
}

func TestService_Import_Failures(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		setup   func(txs *importer.MockTransactionImporter, rules *importer.MockRuleSource)
		wantErr  string
		parseErr bool
	}{
		{
			name:    "unparseable file",
			input:   "hello world",
			wantErr:  "no recognisable header",
			parseErr: true,
		},
		{
			name:  "rules unavailable",
			input: statement,
			setup: func(_ *importer.MockTransactionImporter, rules *importer.MockRuleSource) {
				rules.EXPECT().Matcher(gomock.Any(), userID).Return(nil, errors.New("db down"))
			},
			wantErr: "load category rules",
		},
		{
			name:  "store failure",
			input: statement,
			setup: func(txs *importer.MockTransactionImporter, rules *importer.MockRuleSource) {
				rules.EXPECT().Matcher(gomock.Any(), userID).Return(category.NewMatcher(nil), nil)
				txs.EXPECT().Import(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("commit failed"))
			},
			wantErr: "commit failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			txs := importer.NewMockTransactionImporter(ctrl)
			rules := importer.NewMockRuleSource(ctrl)

			if tt.setup != nil {
				tt.setup(txs, rules)
			}

			res, err := importer.NewService(txs, rules).Import(context.Background(), userID, strings.NewReader(tt.input))
			assert.Nil(t, res)
			assert.ErrorContains(t, err, tt.wantErr)

			var perr *importer.ParseError
			assert.Equal(t, tt.parseErr, errors.As(err, &perr))
		})
	}
}
