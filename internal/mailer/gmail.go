package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const gmailSendURL = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"

// GmailScopes are the OAuth scopes required to send mail.
var GmailScopes = []string{"https://www.googleapis.com/auth/gmail.send"}

// NewOAuthConfig builds the OAuth2 config for the Gmail send flow.
func NewOAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       GmailScopes,
		Endpoint:     google.Endpoint,
	}
}

// GmailSender delivers mail through the Gmail REST API using an OAuth2 token.
type GmailSender struct {
	From   string
	config *oauth2.Config
	token  *oauth2.Token

	// sendURL is swappable for tests; defaults to the Gmail API endpoint.
	sendURL string
}

// NewGmailSender constructs a GmailSender for an authorized account.
func NewGmailSender(from string, config *oauth2.Config, token *oauth2.Token) *GmailSender {
	return &GmailSender{
		From:    from,
		config:  config,
		token:   token,
		sendURL: gmailSendURL,
	}
}

// Send delivers the message via the Gmail API. Tokens refresh automatically
// through the oauth2 transport.
func (g *GmailSender) Send(ctx context.Context, msg Message) (Result, error) {
	if msg.To == "" {
		return Result{}, fmt.Errorf("recipient is required")
	}
	if g.token == nil {
		return Result{}, fmt.Errorf("gmail account is not authorized")
	}

	raw := base64.URLEncoding.EncodeToString(encodeMIME(g.From, msg))
	payload, err := json.Marshal(map[string]string{"raw": raw})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.sendURL, bytes.NewReader(payload))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := g.config.Client(ctx, g.token)
	resp, err := client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("gmail send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Result{}, fmt.Errorf("gmail send: status %d: %s", resp.StatusCode, body)
	}

	return Result{Detail: fmt.Sprintf("Email sent successfully to %s", msg.To)}, nil
}

var _ Sender = (*GmailSender)(nil)
