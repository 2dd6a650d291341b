package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

func TestTranslateConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "record write for deleted user maps to user not found",
			err: &pgconn.PgError{
				Code:           PgErrorCodeForeignKeyViolation,
				ConstraintName: constraintRecordUserFK,
			},
			want: domain.ErrUserNotFound,
		},
		{
			name: "record write for unknown printing maps to printing not found",
			err: &pgconn.PgError{
				Code:           PgErrorCodeForeignKeyViolation,
				ConstraintName: constraintRecordPrintingFK,
			},
			want: domain.ErrPrintingNotFound,
		},
		{
			name: "duplicate username maps to username taken",
			err: &pgconn.PgError{
				Code:           PgErrorCodeUniqueViolation,
				ConstraintName: constraintUsernameUnique,
			},
			want: domain.ErrUsernameTaken,
		},
		{
			name: "wrapped pg errors still translate",
			err: fmt.Errorf("exec failed: %w", &pgconn.PgError{
				Code:           PgErrorCodeForeignKeyViolation,
				ConstraintName: constraintRecordUserFK,
			}),
			want: domain.ErrUserNotFound,
		},
		{
			name: "unrecognized constraint passes through",
			err: &pgconn.PgError{
				Code:           PgErrorCodeForeignKeyViolation,
				ConstraintName: "deck_cards_deck_id_fkey",
			},
			want: nil,
		},
		{
			name: "non-postgres error passes through",
			err:  errors.New("connection reset"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateConstraintError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
