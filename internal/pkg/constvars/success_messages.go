package constvars

const (
	ResponseUnknown = "unknown"

	UserCreatedSuccess = "user created successfully"
	LoginSuccess       = "successfully login"
	LogoutSuccess      = "successfully logout"

	GetAppointmentSuccess    = "get appointments successfully"
	CreateAppointmentSuccess = "appointment created successfully"
	CancelAppointmentSuccess = "appointment canceled successfully"
	GetAvailabilitySuccess   = "get availability successfully"
	GetNotificationSuccess   = "get notifications successfully"
	UploadFileSuccess        = "file uploaded successfully"
)
