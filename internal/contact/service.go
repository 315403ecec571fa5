package contact

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNotConfigured means the delivery backend lacks credentials.
var ErrNotConfigured = errors.New("contact delivery not configured")

const genericFailure = "Failed to send message. Please try again or email directly."

// Sender delivers a validated submission.
type Sender interface {
	Name() string
	Deliver(ctx context.Context, s Submission) error
}

// Service validates forms before anything leaves the process.
type Service struct {
	sender Sender
}

func NewService(sender Sender) *Service {
	return &Service{sender: sender}
}

// Submit validates the form and delivers it. Validation failures are
// returned as ValidationErrors and never reach the sender.
func (s *Service) Submit(ctx context.Context, f Form) error {
	if err := f.Validate(); err != nil {
		return err
	}

	sub := f.submission()
	if err := s.sender.Deliver(ctx, sub); err != nil {
		logrus.WithFields(logrus.Fields{
			"backend": s.sender.Name(),
			"error":   err.Error(),
		}).Warn("contact delivery failed")
		return err
	}

	logrus.WithField("backend", s.sender.Name()).Info("contact message delivered")
	return nil
}

// UserMessage turns a delivery error into banner text.
func UserMessage(err error) string {
	var relayErr *RelayError
	if errors.As(err, &relayErr) && relayErr.Message != "" {
		return relayErr.Message
	}
	return genericFailure
}
