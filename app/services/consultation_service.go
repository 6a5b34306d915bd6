package services

import (
	"context"

	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/pkg/apperr"
)

// ConsultationRecorder persists contact-form bookings.
type ConsultationRecorder interface {
	Create(ctx context.Context, c *models.Consultation) error
}

// ConsultationNotifier confirms a booking by email, best-effort.
type ConsultationNotifier interface {
	ConsultationReceived(c models.Consultation)
}

// ConsultationService handles the booking form.
type ConsultationService struct {
	bookings ConsultationRecorder
	notifier ConsultationNotifier
}

func NewConsultationService(bookings ConsultationRecorder, notifier ConsultationNotifier) *ConsultationService {
	return &ConsultationService{bookings: bookings, notifier: notifier}
}

// Book validates, persists, then queues the confirmation email. The record
// is durable before the email is attempted, so a send failure never loses
// the booking.
func (s *ConsultationService) Book(ctx context.Context, c *models.Consultation) error {
	if c.Name == "" || c.Email == "" || c.Phone == "" || c.Message == "" {
		return apperr.New(apperr.Validation, "All fields are required")
	}

	if err := s.bookings.Create(ctx, c); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.ConsultationReceived(*c)
	}
	return nil
}
