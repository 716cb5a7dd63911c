// internal/app/dispatcher.go
package app

import (
	"context"
	"errors"
	"strings"

	"casework_notifier/internal/domain/mail"

	"github.com/sirupsen/logrus"
)

// ErrNoRecipients means every visible address was blank after filtering;
// a reminder is never dispatched to an empty To set.
var ErrNoRecipients = errors.New("no non-blank recipients")

// Dispatcher sits between the engines and the mail transport: it filters
// blank addresses, refuses empty recipient sets, and reports a delivery
// failure back to the caller as "not sent". It never retries.
type Dispatcher struct {
	sender mail.Sender
	logger *logrus.Entry
}

func NewDispatcher(sender mail.Sender, logger *logrus.Entry) *Dispatcher {
	return &Dispatcher{sender: sender, logger: logger}
}

func (d *Dispatcher) Dispatch(ctx context.Context, to, bcc []string, subject, htmlBody string) error {
	to = filterBlank(to)
	bcc = filterBlank(bcc)
	if len(to) == 0 {
		return ErrNoRecipients
	}

	msg := mail.Message{To: to, Bcc: bcc, Subject: subject, HTMLBody: htmlBody}
	if err := d.sender.Send(ctx, msg); err != nil {
		return err
	}
	d.logger.WithFields(logrus.Fields{
		"to":      strings.Join(to, ","),
		"bcc":     len(bcc),
		"subject": subject,
	}).Debug("Reminder dispatched")
	return nil
}

func filterBlank(addresses []string) []string {
	var out []string
	for _, addr := range addresses {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
