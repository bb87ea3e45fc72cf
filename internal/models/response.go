package models

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Hata response'u için helper
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{
		Detail: detail,
	}
}
