package errs

import "errors"

var (
	MissingAuthorization = errors.New("authorization header missing")
	InvalidToken         = errors.New("invalid token")
	AdminRequired        = errors.New("you are not allowed to modify problems")
	InternalError        = errors.New("internal error")
)
