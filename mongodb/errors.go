package mongodb

import "errors"

var (
	// ErrNotFound means the identifier does not resolve to a record owned
	// by the requesting user.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a uniqueness constraint was violated, e.g. a second
	// notification settings record for the same user. Callers should fall
	// back to the upsert path rather than retry the insert.
	ErrConflict = errors.New("record already exists")
)
