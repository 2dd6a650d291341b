package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/CardBinder_Go/internal/domain"
)

// Constraint names from the schema. Postgres derives these from table and
// column names, so renaming either in a migration means updating this list.
const (
	constraintRecordUserFK     = "user_card_records_user_id_fkey"
	constraintRecordPrintingFK = "user_card_records_printing_id_fkey"
	constraintUsernameUnique   = "users_username_key"
)

// translateConstraintError maps constraint violations from writes onto
// domain errors, so a record write for a user that was deleted between
// header validation and the upsert surfaces as not-found rather than as an
// opaque server error. Returns nil when the error is not a recognized
// constraint violation.
func translateConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case PgErrorCodeForeignKeyViolation:
		switch pgErr.ConstraintName {
		case constraintRecordUserFK:
			return domain.ErrUserNotFound
		case constraintRecordPrintingFK:
			return domain.ErrPrintingNotFound
		}
	case PgErrorCodeUniqueViolation:
		if pgErr.ConstraintName == constraintUsernameUnique {
			return domain.ErrUsernameTaken
		}
	}
	return nil
}
