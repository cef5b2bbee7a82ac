package goal

import "errors"

var (
	ErrGoalNotFound     = errors.New("goal not found")
	ErrDiscoveryTimeout = errors.New("goal discovery timed out")
	ErrMissingCallName  = errors.New("callName is required")
	ErrMissingContactID = errors.New("contactId is required")
)
