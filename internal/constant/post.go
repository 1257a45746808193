package constant

const (
	POST_IMAGE_DIR         = "posts"
	POST_IMAGE_MAX_SIZE_KB = 2048
	POST_FIELD_MAX_LENGTH  = 255
	STORAGE_URL_PREFIX     = "storage"

	POST_DELETED_MESSAGE = "Post deleted successfully"
	LOGOUT_MESSAGE       = "Logged out successfully"
)
