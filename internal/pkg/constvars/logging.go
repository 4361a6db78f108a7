package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionDataKey    = "session_data"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingProviderIDKey     = "provider_id"
	LoggingRequesterIDKey    = "requester_id"
	LoggingUserIDKey         = "user_id"
	LoggingDateKey           = "date"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingQueueNameKey      = "queue_name"
	LoggingJobIDKey          = "job_id"
)
