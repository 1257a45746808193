package constant

const (
	ERR_VALIDATION_CODE                 = "VALIDATION_ERROR"
	ERR_INVALID_REQUEST_BODY_ERROR_CODE = "INVALID_REQUEST_BODY_ERROR"
	ERR_INTERNAL_SERVER_ERROR_CODE      = "INTERNAL_SERVER_ERROR"
	ERR_INTENRAL_SERVER_ERROR_MESSAGE   = "Something went wrong. If the problem persists, please contact support"
	ERR_INVALID_REQUEST_BODY_MESSAGE    = "The request is invalid or malformed"
	ERR_NOT_FOUND_ERROR                 = "NOT_FOUND_ERROR"
	ERR_UNATHORIZED_ERROR               = "UNAUTHORIEZED_ERROR"
	ERR_UNAUTHENTICATED_MESSAGE         = "Unauthenticated."
	ERR_POST_NOT_FOUND_MESSAGE          = "Post not found"
	ERR_USER_NOT_FOUND_MESSAGE          = "User not found"
	ERR_INVALID_CREDENTIALS_MESSAGE     = "Invalid login credentials"
)
