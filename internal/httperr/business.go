package httperr

import "errors"

// Códigos usados por los use cases:
//
//	branch_not_found, chair_not_found, service_not_found,
//	appointment_not_found, slot_taken, invalid_schedule,
//	validation_error, invalid_state
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
