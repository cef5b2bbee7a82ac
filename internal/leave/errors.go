package leave

import "errors"

var (
	ErrMissingTaskID    = errors.New("task id is required")
	ErrTaskLookupFailed = errors.New("task lookup failed")
	ErrInvalidStartDate = errors.New("startDate must be RFC 3339 or epoch milliseconds")
)
