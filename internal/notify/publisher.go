package notify

import (
	"context"

	"go.uber.org/zap"
)

// Publisher hands an e-mail to the delivery backend.
type Publisher interface {
	Publish(ctx context.Context, email Email) error
	Close() error
}

// LogPublisher writes e-mails to the application log instead of sending them.
type LogPublisher struct {
	logger *zap.SugaredLogger
}

// NewLogPublisher creates a publisher that logs every e-mail.
func NewLogPublisher(logger *zap.SugaredLogger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the e-mail.
func (p *LogPublisher) Publish(_ context.Context, email Email) error {
	p.logger.Infow("email",
		"email_id", email.ID.String(),
		"to", email.To,
		"subject", email.Subject,
		"body", email.Text)
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error {
	return nil
}
