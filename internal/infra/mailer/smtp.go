// internal/infra/mailer/smtp.go
package mailer

import (
	"context"
	"fmt"

	"casework_notifier/internal/domain/mail"

	gomail "gopkg.in/gomail.v2"
)

// GomailSender implements the mail.Sender interface over SMTP using the
// gopkg.in/gomail.v2 library. No retry logic lives here: the engines
// treat a failed send as "not sent" and move on to the next row.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewGomailSender(host string, port int, username, password, from string) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one HTML message. The plain-text part is intentionally
// left empty; every reminder is an HTML body.
func (s *GomailSender) Send(_ context.Context, msg mail.Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To...)
	if len(msg.Bcc) > 0 {
		m.SetHeader("Bcc", msg.Bcc...)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp delivery failed: %w", err)
	}
	return nil
}
