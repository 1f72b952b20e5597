package errs

import cr "github.com/cockroachdb/errors"

// Categories a use-case error is marked with. Handlers log and map by
// category when no specific sentinel matches.
var (
	ErrNotFound          = New("not found")
	ErrBusinessRejection = New("business rejection")
	ErrForbidden         = New("forbidden")
	ErrValidation        = New("validation failed")
	ErrUnauthenticated   = New("unauthenticated")
)

// Sentinel returns a new error marked with category so that both
// errors.Is(err, sentinel) and HasCategory(err, category) hold.
func Sentinel(msg string, category error) error {
	return Mark(New(msg), category)
}

// HasCategory reports whether err carries the category mark. Specific
// sentinels of one category all share that mark, so compare sentinels with
// the standard errors.Is instead.
func HasCategory(err, category error) bool {
	return cr.Is(err, category)
}
