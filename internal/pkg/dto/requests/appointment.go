package requests

type CreateAppointmentRequest struct {
	ProviderID string `json:"provider_id" validate:"required"`
	Date       string `json:"date" validate:"required"`
}
