package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// Config holds the SMTP relay settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Sender    string        // From address (service identity)
	Recipient string        // notification recipient
	Timeout   time.Duration // dial/IO timeout per send
}

// SMTPMailer relays messages via SMTP with opportunistic STARTTLS.
type SMTPMailer struct {
	client    *mail.Client
	sender    string
	recipient string
}

var _ Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates an SMTPMailer from cfg. The connection is
// established lazily on the first Send.
func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("configure smtp client: %w", err)
	}
	return &SMTPMailer{client: client, sender: cfg.Sender, recipient: cfg.Recipient}, nil
}

// Send relays a plain-text email. The error carries the upstream SMTP
// failure so callers can surface it for diagnosis.
func (m *SMTPMailer) Send(ctx context.Context, subject, body string) error {
	msg, err := buildMessage(m.sender, m.recipient, subject, body)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("relay via smtp: %w", err)
	}
	return nil
}

// buildMessage assembles the plain-text message envelope.
func buildMessage(sender, recipient, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(sender); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", sender, err)
	}
	if err := msg.To(recipient); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", recipient, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}
