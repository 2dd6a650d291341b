package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is the PostgreSQL error code for foreign key violations
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
)
