package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering a profile fails
	// because the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrProfileNotFound is returned when a profile lookup matches nothing.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrMemberNotFound is returned when a member lookup or update targets a
	// record that does not exist for the given gym.
	ErrMemberNotFound = errors.New("member was not found")

	// ErrProductNotFound is returned when a product lookup or update targets
	// a record that does not exist for the given gym.
	ErrProductNotFound = errors.New("product was not found")

	// ErrNoteNotFound is returned when a note delete targets a record that
	// does not exist for the given gym.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNothingToUpdate is returned when a partial update carries no fields.
	ErrNothingToUpdate = errors.New("no fields provided for update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
