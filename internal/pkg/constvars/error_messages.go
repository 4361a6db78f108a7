package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"datetime": "must be a valid datetime",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"

	ErrClientNotServiceProvider     = "target is not a service provider"
	ErrClientBookOwnEstablishment   = "cannot book own establishment"
	ErrClientSlotInPast             = "slot is in the past"
	ErrClientProviderAlreadyBooked  = "provider already booked at that time"
	ErrClientAppointmentNotFound    = "appointment not found"
	ErrClientNotAppointmentOwner    = "not permitted to cancel this appointment"
	ErrClientCancellationWindowOver = "cancellation window has passed (must cancel at least 2h ahead)"
	ErrClientAlreadyCanceled        = "appointment is already canceled"
	ErrClientInvalidDate            = "invalid date"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate        = "cannot parse the requested date"
	ErrDevMissingRequestID       = "request ID not found in request context"
	ErrDevMissingSessionData     = "session data not found in request context"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevImageValidationFailed  = "image validation failed"

	// Authentication messages
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevUserNotExists             = "user does not exist"

	// Booking rule messages
	ErrDevProviderFlagNotSet       = "target user is not flagged as provider"
	ErrDevSelfBooking              = "requester and provider are the same user"
	ErrDevSlotNotInFuture          = "normalized slot is not strictly after current time"
	ErrDevSlotConflict             = "active appointment exists for provider at slot"
	ErrDevAppointmentNotExists     = "appointment does not exist"
	ErrDevCancelNotOwner           = "cancel requested by a user other than the booker"
	ErrDevCancelCutoffPassed       = "cancellation requested inside the cutoff window"
	ErrDevCancelAlreadyCanceled    = "appointment already carries a canceled_at timestamp"

	// Database messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBFailedToIterateCursor  = "failed to iterate database cursor"
	ErrDevDBFailedToCountDocuments = "failed to count documents on database"
	ErrDevDBStringNotObjectID      = "given ID is not valid object ID"
	ErrDevDBDuplicateSlot          = "unique index rejected concurrent booking for the slot"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"

	// SMTP messages
	ErrDevSMTPSendEmail = "failed to send email through host %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object inside bucket %s"
)
