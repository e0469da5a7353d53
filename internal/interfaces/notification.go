package interfaces

import "context"

// EmailMessage is a rendered email ready for dispatch.
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// EmailResult reports which channel delivered the message.
type EmailResult struct {
	Success   bool   `json:"success"`
	Method    string `json:"method"`
	Recipient string `json:"recipient"`
}

// Mailer tries its notification channels in rank order and returns the first
// success.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) (EmailResult, error)
}
