package response

const (
	MessageSuccess          = "Success"
	MessageRateLimited      = "Too many requests"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
)
