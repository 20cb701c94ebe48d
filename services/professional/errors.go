package professional

import "fmt"

// AccountError is a typed service-level failure.
type AccountError struct {
	Code    string
	Message string
}

func (e *AccountError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAccountError(code, msg string) error {
	return &AccountError{Code: code, Message: msg}
}
