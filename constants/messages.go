package constants

// Toast and validation messages shown in the console.
const (
	FILL_ALL_FIELDS        = "Please fill in all the fields"
	PASSWORD_TOO_SHORT     = "Password must be at least 8 characters."
	INVALID_EMAIL          = "Please enter a valid email"
	SELECT_IMAGES          = "Please select images."
	SELECT_DATES           = "Please select dates."
	END_BEFORE_START       = "End date must be after start date."
	INVALID_DURATION       = "Invalid duration"
	INVALID_START_TIME     = "Invalid start time"
	SELECT_AT_LEAST_ONE    = "Please select at least one seat"
	SEAT_NOT_AVAILABLE     = "Seat %s is no longer available"
	PASSWORDS_NOT_MATCH    = "New passwords do not match"
	UNSUPPORTED_IMAGE      = "Unsupported image format"
	INVALID_ID             = "Invalid id"
	ONLY_CUSTOMER          = "You are only a customer"
	LOGIN_SUCCESS          = "Log in successfully"
	LOGOUT_SUCCESS         = "Log out successfully"
	SESSION_EXPIRED        = "Your session has expired, please log in again"
	GENERIC_ERROR          = "Something went wrong, please try again."
	API_UNREACHABLE        = "Cannot reach the cinema API."
	RESERVE_SUCCESS        = "Reserve seats successfully"
	CHANGE_PASSWORD_OK     = "Change password successfully"
	EDIT_ACCOUNT_OK        = "Edit account successfully"
	HIDE_FILM_OK           = "Hide film successfully"
	SHOW_FILM_OK           = "Show film successfully"
	AUDIT_DISABLED         = "Audit trail is not configured"
	EXPORT_FAILED          = "Cannot export data"
	EXPORT_TRUNCATED       = "Export is incomplete, only the first %d pages were read"
	GEOCODER_NOT_AVAILABLE = "Geocoder is not configured"
)

const CUSTOMER_ROLE = "Customer"
