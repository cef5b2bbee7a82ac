package response

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

	MessageInternalError = "Internal server error"
	MessageInvalidJSON   = "Invalid JSON body"
)
