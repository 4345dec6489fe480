package store

import "errors"

// Sentinel errors returned by the storage backends to signal well-known
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a key or file does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrInvalidName is returned when a document name cannot be used as a
	// file name inside the documents directory.
	ErrInvalidName = errors.New("invalid record name")

	// ErrNotInitialized is returned by [Gate.Wait] when the gate was built
	// without an initialization function.
	ErrNotInitialized = errors.New("storage initialization is not configured")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
