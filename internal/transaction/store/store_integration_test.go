//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
	"github.com/MrJamesThe3rd/ascend/internal/database/dbtest"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
	"github.com/MrJamesThe3rd/ascend/internal/transaction/store"
)

func TestIntegration_ImportSkipsDuplicates(t *testing.T) {
	pool := dbtest.Pool(t)
	dbtest.SeedUser(t, pool, "import-user")
	dbtest.SeedUser(t, pool, "other-user")

	ctx := context.Background()
	svc := transaction.NewService(store.New(pool))
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	rows := []transaction.CreateParams{
		{Type: transaction.TypeExpense, Amount: decimal.RequireFromString("12.50"), Description: "Supermarket", Date: day},
		{Type: transaction.TypeIncome, Amount: decimal.RequireFromString("1500"), Description: "Salary", Date: day},
	}

	first, err := svc.Import(ctx, "import-user", rows)
	require.NoError(t, err)
	assert.Len(t, first.Imported, 2)
	assert.Empty(t, first.Duplicates)

	second, err := svc.Import(ctx, "import-user", rows)
	require.NoError(t, err)
	assert.Empty(t, second.Imported)
	assert.Len(t, second.Duplicates, 2)

	listed, err := svc.List(ctx, "import-user", transaction.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	others, err := svc.List(ctx, "other-user", transaction.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, others)

	err = svc.Delete(ctx, "other-user", listed[0].ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
