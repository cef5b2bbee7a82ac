package billing

import "errors"

var (
	ErrMissingContactID = errors.New("contactId is required")
	ErrMissingDate      = errors.New("date is required")
	ErrInvalidDate      = errors.New("invalid date format")
)
