package mail

import "context"

// Message is one outbound reminder. Bodies are always HTML with an empty
// plain-text part.
type Message struct {
	To       []string
	Bcc      []string
	Subject  string
	HTMLBody string
}

// Sender delivers messages. Implementations do not retry; callers treat a
// failed send as "not sent" and continue with the next row.
//
// This mirrors the transport decoupling used for the rest of the infra
// layer: engines depend on this interface, never on the SMTP library.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
