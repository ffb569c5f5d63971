package isbn10

import isbnerrors "github.com/lepinkainen/isbn10/internal/errors"

// InvalidArgumentError is returned for empty or whitespace-only candidates.
type InvalidArgumentError = isbnerrors.InvalidArgumentError

// IsInvalidArgumentError reports whether err is an InvalidArgumentError (even when wrapped).
func IsInvalidArgumentError(err error) bool {
	return isbnerrors.IsInvalidArgumentError(err)
}
