package errors

// User-friendly error messages
const (
	MsgAuthRequired       = "Authentication required. Please log in again."
	MsgPayloadTooLarge    = "Files too large. Please reduce file sizes and try again."
	MsgServiceUnavailable = "Service temporarily unavailable. Please try again later."
	MsgInvalidRequest     = "Invalid request data."
	MsgCreateFailed       = "Failed to create property."
	MsgLoadFailed         = "Failed to load property."
	MsgNetworkError       = "Network error. Please check your connection."
	MsgPropertyNotFound   = "Property not found."
	MsgRateLimited        = "Too many requests. Please wait a moment and try again."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
	MsgInvalidCredentials = "Invalid email or password."
	MsgEmailTaken         = "Email already registered."
)
