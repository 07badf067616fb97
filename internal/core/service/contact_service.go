package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/spiconsulting/consultancy-website/internal/core/domain"
	"github.com/spiconsulting/consultancy-website/internal/core/ports"
)

// ContactService dispatches contact-form submissions over the mail transport.
// Submissions are never persisted; a failed send is terminal for the request.
type ContactService struct {
	mailer    ports.Mailer
	throttle  ports.ContactThrottle
	sender    string
	operators []string
	log       zerolog.Logger
}

func NewContactService(mailer ports.Mailer, throttle ports.ContactThrottle, sender string, operators []string, log zerolog.Logger) *ContactService {
	return &ContactService{
		mailer:    mailer,
		throttle:  throttle,
		sender:    sender,
		operators: operators,
		log:       log,
	}
}

// Submit sends the operator notification followed by the submitter
// acknowledgment. A repeat submission from the same address inside the
// throttle window is accepted without re-sending anything.
func (s *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	if s.throttle != nil {
		recent, err := s.throttle.IsRecent(ctx, msg.Email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", msg.Email).Msg("throttle check failed, sending anyway")
		} else if recent {
			s.log.Debug().Str("email", msg.Email).Msg("repeat contact submission suppressed")
			return nil
		}
	}

	operatorBody := fmt.Sprintf(
		"Name: %s\nEmail: %s\nService of Interest: %s\nMessage: %s\n",
		msg.Name, msg.Email, msg.ServiceLabel(), msg.Message,
	)
	operatorSubject := fmt.Sprintf("SPIConsulting New Contact Form Submission from %s", msg.Name)

	if err := s.mailer.Send(s.operators, operatorSubject, operatorBody); err != nil {
		s.log.Error().Err(err).Msg("operator notification failed")
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	ackSubject := "Thank you for contacting SkilledProfessionalsIndia Consulting"
	ackBody := "Thank you for your message! We will get back to you shortly."
	if err := s.mailer.Send([]string{msg.Email}, ackSubject, ackBody); err != nil {
		s.log.Error().Err(err).Msg("acknowledgment mail failed")
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	if s.throttle != nil {
		if err := s.throttle.Mark(ctx, msg.Email); err != nil {
			s.log.Warn().Err(err).Str("email", msg.Email).Msg("throttle mark failed")
		}
	}

	s.log.Info().Str("service", msg.Service).Msg("contact submission dispatched")
	return nil
}
