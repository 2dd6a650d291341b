package database

// Connection pool defaults
const (
	// DefaultMinConnections is the minimum number of connections kept open in the pool
	DefaultMinConnections = 2
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
)
