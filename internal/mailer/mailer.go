// Package mailer relays plain-text notification emails through an external
// SMTP server.
package mailer

import "context"

// Mailer sends a notification email with the given subject and body.
// Implementations must not retry: a relay failure is terminal for the
// request that triggered it.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}
