package domain

import "errors"

// ErrInvalidRequest marks requests the engine refuses to serve: row counts
// outside [MinRows, MaxRows] and category/subcategory pairs that no
// generator is registered for.
var ErrInvalidRequest = errors.New("invalid request")
