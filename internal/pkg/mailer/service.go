package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/rs/zerolog/log"

	"github.com/plumeria/retreat-api/internal/domain/booking"
	"github.com/plumeria/retreat-api/internal/domain/enquiry"
)

// Service renders templates and sends transactional email. It satisfies
// booking.ConfirmationSender and enquiry.AckSender.
type Service struct {
	client    *SendGridClient
	templates map[string]*template.Template
}

// NewService creates the mailer service
func NewService(config SendGridConfig) *Service {
	s := &Service{
		client:    NewSendGridClient(config),
		templates: make(map[string]*template.Template),
	}
	s.loadTemplates()
	return s
}

func (s *Service) loadTemplates() {
	templates := map[string]string{
		"booking_confirmation": BookingConfirmationTemplate,
		"enquiry_ack":          EnquiryAckTemplate,
	}

	for name, content := range templates {
		tmpl, err := template.New(name).Parse(content)
		if err != nil {
			log.Error().Err(err).Str("template", name).Msg("Failed to parse email template")
			continue
		}
		s.templates[name] = tmpl
	}
}

func (s *Service) render(name string, data interface{}) (string, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendBookingConfirmation emails the guest their booking details
func (s *Service) SendBookingConfirmation(ctx context.Context, b *booking.Booking) error {
	html, err := s.render("booking_confirmation", map[string]interface{}{
		"GuestName": b.GuestName,
		"BookingID": b.ID.String(),
		"CheckIn":   b.CheckIn.Format("Mon, 2 Jan 2006"),
		"CheckOut":  b.CheckOut.Format("Mon, 2 Jan 2006"),
		"Guests":    b.Adults + b.Children,
		"Total":     b.TotalAmount,
	})
	if err != nil {
		return err
	}

	return s.client.Send(ctx, &EmailMessage{
		To:          b.GuestEmail,
		ToName:      b.GuestName,
		Subject:     "Your Plumeria Retreat booking is confirmed",
		HTMLContent: html,
	})
}

// SendEnquiryAck acknowledges a contact form submission
func (s *Service) SendEnquiryAck(ctx context.Context, e *enquiry.Enquiry) error {
	html, err := s.render("enquiry_ack", map[string]interface{}{
		"Name":    e.Name,
		"Message": e.Message,
	})
	if err != nil {
		return err
	}

	return s.client.Send(ctx, &EmailMessage{
		To:          e.Email,
		ToName:      e.Name,
		Subject:     "We received your message",
		HTMLContent: html,
	})
}
