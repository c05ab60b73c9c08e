package dto

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
	Consent bool   `json:"consent"`
}

type ContactResponse struct {
	Id string `json:"id"`
}
