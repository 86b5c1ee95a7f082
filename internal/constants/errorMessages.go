package constants

const (
	MsgInvalidBody          = "Invalid request body"
	MsgInvalidCredentials   = "Invalid email or password"
	MsgMembershipInactive   = "Your membership is not active. Please complete your payment or contact an administrator."
	MsgDatabaseError        = "Database error. Please try again later."
	MsgInternalError        = "Internal server error"
	MsgMethodNotAllowed     = "Method not allowed"
	MsgNotFound             = "Resource not found"
	MsgEmailTaken           = "A member with this email already exists"
	MsgMemberNotFound       = "Member not found"
	MsgInvalidPaymentMethod = "Invalid payment method"
	MsgPaymentCompleted     = "Payment already completed"
	MsgHoursNotPositive     = "Hours completed must be a positive number"
	MsgHoursNotFound        = "Volunteering hours not found"
	MsgHoursAlreadyReviewed = "Volunteering hours have already been reviewed"
	MsgInvalidHoursStatus   = "Status must be either approved or rejected"
	MsgInvalidMemberStatus  = "Status must be one of pending, active or inactive"
	MsgUnauthorized         = "Unauthorized"
	MsgAdminRequired        = "Unauthorized. Admin access required"
	MsgForbiddenMember      = "Unauthorized. You can only access your own records"
	MsgTooManyRequests      = "Too many requests"
	MsgImageRequired        = "An image file is required"
	MsgImageInvalid         = "Only image uploads are allowed"
	MsgImageTooLarge        = "Image exceeds the upload size limit"
	MsgUploadFailed         = "Failed to upload image"
)
