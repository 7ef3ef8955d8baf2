package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
)

func TestMapError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"no rows", pgx.ErrNoRows, apperr.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, apperr.ErrConflict},
		{"fk violation", &pgconn.PgError{Code: "23503", ConstraintName: "goals_user_id_fkey"}, apperr.ErrValidation},
		{"check violation", &pgconn.PgError{Code: "23514", ConstraintName: "goals_progress_check"}, apperr.ErrValidation},
		{"context canceled", context.Canceled, context.Canceled},
		{"other", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapError("getting goal", tt.err)
			assert.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), "getting goal")
		})
	}

	assert.NoError(t, MapError("noop", nil))
}

func TestMapError_ValidationField(t *testing.T) {
	err := MapError("creating goal", &pgconn.PgError{
		Code:           "23514",
		Message:        "violates check constraint",
		ConstraintName: "goals_progress_check",
	})

	var ve *apperr.ValidationError
	if assert.ErrorAs(t, err, &ve) {
		assert.Equal(t, "goals_progress_check", ve.Errors[0].Field)
	}
}

func TestMigrations_Embedded(t *testing.T) {
	entries, err := Migrations().Open("00001_init.sql")
	if assert.NoError(t, err) {
		assert.NoError(t, entries.Close())
	}
}
