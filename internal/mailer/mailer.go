package mailer

import (
	"context"
	"fmt"
)

// Message is an outbound email.
type Message struct {
	To       string
	Subject  string
	Body     string
	HTMLBody string
}

// Result reports the outcome of a send. Simulated is set when no credentials
// are configured and the send was only logged, which keeps demos and tests
// working without a mail account.
type Result struct {
	Simulated bool   `json:"simulated"`
	Detail    string `json:"detail"`
}

// Sender delivers email. A failed delivery returns an error; the Result
// carries transport detail either way.
type Sender interface {
	Send(ctx context.Context, msg Message) (Result, error)
}

// BuildApplication renders the standard application email for a job.
func BuildApplication(recipient, jobTitle, company, applicantName, letter string) Message {
	subject := fmt.Sprintf("Application for %s position at %s", jobTitle, company)

	body := fmt.Sprintf("Dear Hiring Manager,\n\n%s\n\nBest regards,\n%s\n", letter, applicantName)

	htmlBody := fmt.Sprintf(`<html>
    <body>
        <p>Dear Hiring Manager,</p>
        <div style="white-space: pre-wrap;">%s</div>
        <p>Best regards,<br>%s</p>
    </body>
</html>`, letter, applicantName)

	return Message{
		To:       recipient,
		Subject:  subject,
		Body:     body,
		HTMLBody: htmlBody,
	}
}
