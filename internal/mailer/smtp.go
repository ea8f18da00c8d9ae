package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"jobapply-backend/internal/shared/telemetry"
)

// SMTPSender delivers mail over SMTP with STARTTLS. When sender credentials
// are absent the send is simulated: reported as successful with a preview,
// never hitting the network.
type SMTPSender struct {
	Server   string
	Port     string
	From     string
	Password string

	// sendMail is swappable for tests; defaults to smtp.SendMail.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender constructs an SMTPSender.
func NewSMTPSender(server, port, from, password string) *SMTPSender {
	return &SMTPSender{
		Server:   server,
		Port:     port,
		From:     from,
		Password: password,
		sendMail: smtp.SendMail,
	}
}

// Send delivers the message, or simulates delivery when credentials are not
// configured.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (Result, error) {
	if msg.To == "" {
		return Result{}, fmt.Errorf("recipient is required")
	}

	if s.From == "" || s.Password == "" {
		telemetry.Info("mailer.simulated", map[string]any{
			"to":      msg.To,
			"subject": msg.Subject,
		})
		return Result{
			Simulated: true,
			Detail:    fmt.Sprintf("Email simulated (no credentials set). Would send to: %s", msg.To),
		}, nil
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	auth := smtp.PlainAuth("", s.From, s.Password, s.Server)
	addr := s.Server + ":" + s.Port
	if err := s.doSend(addr, auth, msg); err != nil {
		return Result{}, fmt.Errorf("send email: %w", err)
	}

	return Result{Detail: fmt.Sprintf("Email sent successfully to %s", msg.To)}, nil
}

func (s *SMTPSender) doSend(addr string, auth smtp.Auth, msg Message) error {
	send := s.sendMail
	if send == nil {
		send = smtp.SendMail
	}
	return send(addr, auth, s.From, []string{msg.To}, encodeMIME(s.From, msg))
}

// encodeMIME renders the message as multipart/alternative with plain and HTML
// parts.
func encodeMIME(from string, msg Message) []byte {
	const boundary = "jobapply-alt-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")

	if msg.HTMLBody == "" {
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(msg.Body)
		return []byte(b.String())
	}

	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)
	fmt.Fprintf(&b, "--%s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n", boundary, msg.Body)
	fmt.Fprintf(&b, "--%s\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n", boundary, msg.HTMLBody)
	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}

var _ Sender = (*SMTPSender)(nil)
