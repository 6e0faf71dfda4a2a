package integrations

import (
	"fmt"
	"net/url"
	"strings"
)

// MailtoURI builds a mailto link. Values are percent-encoded per RFC 6068,
// so spaces become %20 rather than '+' and line breaks become %0D%0A.
func MailtoURI(recipient, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", recipient, mailtoEscape(subject), mailtoEscape(body))
}

func mailtoEscape(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", "\r\n")
	// QueryEscape turns a literal '+' into %2B, so any '+' left is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Mailer hands feedback to the user's mail client. Delivery is out of our hands.
type Mailer struct {
	opener    Opener
	recipient string
	subject   string
}

func NewMailer(opener Opener, recipient, subject string) *Mailer {
	return &Mailer{opener: opener, recipient: recipient, subject: subject}
}

// URI returns the link Send would open for body.
func (m *Mailer) URI(body string) string {
	return MailtoURI(m.recipient, m.subject, body)
}

func (m *Mailer) Send(body string) error {
	if err := m.opener.Open(m.URI(body)); err != nil {
		return fmt.Errorf("mail handoff failed: %w", err)
	}
	return nil
}
