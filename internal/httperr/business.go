package httperr

import "errors"

// BusinessError is an expected failure raised below the handlers. Two
// business errors match under errors.Is when their codes are equal.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return "business: " + e.Code
}

func (e BusinessError) Is(target error) bool {
	t, ok := target.(BusinessError)
	return ok && t.Code == e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err wraps the business error code.
func IsBusiness(err error, code string) bool {
	return errors.Is(err, BusinessError{Code: code})
}
