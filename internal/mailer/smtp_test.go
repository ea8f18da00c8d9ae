package mailer

import (
	"context"
	"net/smtp"
	"strings"
	"testing"
)

func TestSendSimulatedWithoutCredentials(t *testing.T) {
	sender := NewSMTPSender("smtp.gmail.com", "587", "", "")

	result, err := sender.Send(context.Background(), Message{To: "hr@acme.test", Subject: "hi", Body: "hello"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !result.Simulated {
		t.Fatalf("expected simulated send")
	}
	if !strings.Contains(result.Detail, "hr@acme.test") {
		t.Fatalf("detail = %q", result.Detail)
	}
}

func TestSendRequiresRecipient(t *testing.T) {
	sender := NewSMTPSender("smtp.gmail.com", "587", "", "")
	if _, err := sender.Send(context.Background(), Message{Subject: "hi"}); err == nil {
		t.Fatalf("expected error for missing recipient")
	}
}

func TestSendUsesSMTPWhenConfigured(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	sender := NewSMTPSender("smtp.example.test", "587", "me@example.test", "secret")
	sender.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	result, err := sender.Send(context.Background(), Message{
		To:       "hr@acme.test",
		Subject:  "Application for Data Engineer position at Acme",
		Body:     "plain body",
		HTMLBody: "<p>html body</p>",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if result.Simulated {
		t.Fatalf("unexpected simulated send")
	}
	if gotAddr != "smtp.example.test:587" || gotFrom != "me@example.test" {
		t.Fatalf("addr=%q from=%q", gotAddr, gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "hr@acme.test" {
		t.Fatalf("to = %v", gotTo)
	}
	raw := string(gotMsg)
	for _, want := range []string{
		"Subject: Application for Data Engineer position at Acme",
		"multipart/alternative",
		"plain body",
		"<p>html body</p>",
	} {
		if !strings.Contains(raw, want) {
			t.Fatalf("message missing %q:\n%s", want, raw)
		}
	}
}

func TestBuildApplication(t *testing.T) {
	msg := BuildApplication("hr@acme.test", "Data Engineer", "Acme", "Jane Doe", "letter body")

	if msg.Subject != "Application for Data Engineer position at Acme" {
		t.Fatalf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "letter body") || !strings.Contains(msg.Body, "Jane Doe") {
		t.Fatalf("body = %q", msg.Body)
	}
	if !strings.Contains(msg.HTMLBody, "letter body") {
		t.Fatalf("html body = %q", msg.HTMLBody)
	}
}
