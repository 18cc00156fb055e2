package store

import "errors"

// Sentinel errors returned by the persistence layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSnapshotSerialize is returned when the workspace document cannot be
	// serialized before writing.
	ErrSnapshotSerialize = errors.New("error serializing workspace document")

	// ErrSnapshotWrite is returned when the serialized workspace document
	// cannot be written to disk.
	ErrSnapshotWrite = errors.New("error writing workspace document")

	// ErrDataDirUnavailable is returned when the per-user application-data
	// directory cannot be resolved or created.
	ErrDataDirUnavailable = errors.New("application data directory unavailable")
)

// Low-level database operation errors for the sync history repository.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan sync history rows")
)
