package dto

import domainErrors "github.com/polkiloo/userhub/internal/domain/errors"

// FieldErrorResponse is one field complaint of a validation failure.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Message string               `json:"message"`
	Errors  []FieldErrorResponse `json:"errors,omitempty"`
}

// NewErrorResponse renders a classified error. The internal cause is never included.
func NewErrorResponse(err *domainErrors.Error) ErrorResponse {
	resp := ErrorResponse{Message: err.Message}
	for _, fe := range err.Fields {
		resp.Errors = append(resp.Errors, FieldErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	return resp
}
