package enquiry

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AckSender sends the enquiry acknowledgement email
type AckSender interface {
	SendEnquiryAck(ctx context.Context, e *Enquiry) error
}

// Service handles enquiry business logic
type Service struct {
	repo   Repository
	mailer AckSender
}

// NewService creates enquiry service. mailer may be nil.
func NewService(repo Repository, mailer AckSender) *Service {
	return &Service{repo: repo, mailer: mailer}
}

// Submit creates a new enquiry (public endpoint)
func (s *Service) Submit(ctx context.Context, req *CreateEnquiryRequest, ip, userAgent string) (*Enquiry, error) {
	now := time.Now()

	e := &Enquiry{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     sql.NullString{String: req.Phone, Valid: req.Phone != ""},
		Subject:   sql.NullString{String: req.Subject, Valid: req.Subject != ""},
		Message:   req.Message,
		Status:    StatusNew,
		IPAddress: sql.NullString{String: ip, Valid: ip != ""},
		UserAgent: sql.NullString{String: userAgent, Valid: userAgent != ""},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		go func(e *Enquiry) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.mailer.SendEnquiryAck(ctx, e); err != nil {
				log.Warn().Err(err).
					Str("enquiry_id", e.ID.String()).
					Msg("Failed to send enquiry acknowledgement")
			}
		}(e)
	}

	return e, nil
}

// GetByID returns enquiry by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Enquiry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

// List returns enquiries with optional status filter
func (s *Service) List(ctx context.Context, status *Status, limit, offset int) ([]*Enquiry, int, error) {
	return s.repo.List(ctx, status, limit, offset)
}

// UpdateStatus changes an enquiry's status
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	switch status {
	case StatusNew, StatusAnswered, StatusDismissed:
	default:
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
