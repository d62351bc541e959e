package enquiry

import (
	"time"

	"github.com/google/uuid"
)

// CreateEnquiryRequest is the public contact form payload
type CreateEnquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Subject string `json:"subject" validate:"omitempty,max=255"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// UpdateStatusRequest changes an enquiry's status (admin)
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new answered dismissed"`
}

// EnquiryResponse is the admin-facing view of an enquiry
type EnquiryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts entity to response DTO
func ToResponse(e *Enquiry) *EnquiryResponse {
	resp := &EnquiryResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Message:   e.Message,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
	if e.Phone.Valid {
		resp.Phone = e.Phone.String
	}
	if e.Subject.Valid {
		resp.Subject = e.Subject.String
	}
	return resp
}
