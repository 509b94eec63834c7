package errors

import (
	"github.com/owuwix/wiishy/constant"
	validatorx "github.com/owuwix/wiishy/utils/validator"
)

type CustomError struct {
	errType constant.ErrorType
	fields  validatorx.FieldErrors
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// Fields returns the per-field validation messages, if any.
func (c CustomError) Fields() validatorx.FieldErrors {
	return c.fields
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetValidationError builds an invalid-request error carrying the
// field -> message detail.
func SetValidationError(fields validatorx.FieldErrors) CustomError {
	return CustomError{
		errType: constant.ErrInvalidRequest,
		fields:  fields,
	}
}
