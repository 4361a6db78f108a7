package constvars

const (
	CancellationMailQueueName = "cancellation_mail_queue"
	CancellationMailDLQName   = "cancellation_mail_dlq"
)

const (
	EmailCancellationSubject       = "Appointment canceled"
	EmailCancellationBodyFormat    = "Hello %s,\n\nThe appointment booked by %s for the %s has been canceled.\n"
	EmailSendBasicEmailFormat      = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	NotificationNewBookingFormat   = "New appointment from %s for the %s"
	NotificationCancellationFormat = "The appointment from %s for the %s was canceled"
)
