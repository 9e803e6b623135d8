package notify

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"net/url"
	"strconv"
	texttemplate "text/template"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// VerificationSubject is the subject of the welcome e-mail.
const VerificationSubject = "Welcome to Fantasy Soccer League"

//go:embed templates
var templateFS embed.FS

var (
	verificationHTML = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/verification.html"))
	verificationText = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/verification.txt"))
)

// Enqueuer accepts e-mails for asynchronous delivery.
type Enqueuer interface {
	Enqueue(email Email) error
}

// Recipient is the user a verification e-mail is addressed to.
type Recipient struct {
	UserID   int64
	Email    string
	Name     string
	TeamName string
}

// Mailer renders user-facing e-mails and queues them for delivery.
type Mailer struct {
	queue  Enqueuer
	from   string
	domain string
	clock  clockwork.Clock
	logger *zap.SugaredLogger
}

// NewMailer creates a mailer that builds links against domain.
func NewMailer(queue Enqueuer, from, domain string, clock clockwork.Clock, logger *zap.SugaredLogger) *Mailer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Mailer{
		queue:  queue,
		from:   from,
		domain: domain,
		clock:  clock,
		logger: logger,
	}
}

// VerificationLink returns the link a user follows to verify their e-mail.
func (m *Mailer) VerificationLink(userID int64, code string) string {
	u := url.URL{
		Scheme: "http",
		Host:   m.domain,
		Path:   "/users/" + strconv.FormatInt(userID, 10) + "/verify/" + code,
	}
	return u.String()
}

// BuildVerification renders the verification e-mail without queueing it.
func (m *Mailer) BuildVerification(to Recipient, code string) (Email, error) {
	data := struct {
		Name     string
		TeamName string
		Link     string
	}{
		Name:     to.Name,
		TeamName: to.TeamName,
		Link:     m.VerificationLink(to.UserID, code),
	}
	if data.Name == "" {
		data.Name = to.Email
	}

	var html, text bytes.Buffer
	if err := verificationHTML.Execute(&html, data); err != nil {
		return Email{}, fmt.Errorf("render html: %w", err)
	}
	if err := verificationText.Execute(&text, data); err != nil {
		return Email{}, fmt.Errorf("render text: %w", err)
	}

	return Email{
		ID:        uuid.New(),
		From:      m.from,
		To:        to.Email,
		Subject:   VerificationSubject,
		Text:      text.String(),
		HTML:      html.String(),
		CreatedAt: m.clock.Now().UTC(),
	}, nil
}

// SendVerification renders and queues the verification e-mail.
func (m *Mailer) SendVerification(to Recipient, code string) error {
	email, err := m.BuildVerification(to, code)
	if err != nil {
		return err
	}

	if err := m.queue.Enqueue(email); err != nil {
		return fmt.Errorf("enqueue verification email: %w", err)
	}

	m.logger.Infow("verification email queued",
		"user_id", to.UserID,
		"email_id", email.ID.String())
	return nil
}
