package response

// Response messages and codes.
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	ValidationErrorCode     = 1
	InternalServerErrorCode = 500
)

// DateTimeFormat is the layout of DateTime.
const DateTimeFormat = "2006-01-02 15:04:05"
