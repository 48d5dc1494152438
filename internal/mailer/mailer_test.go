package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
)

func TestSendRequiresCredentials(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587"})
	if err := s.Send(context.Background(), Message{Name: "a"}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Send() error = %v, want ErrNotConfigured", err)
	}
}

func TestSendDelivers(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587", User: "me@example.com", Pass: "secret"})
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := s.Send(context.Background(), Message{Name: "Ada", Email: "ada@example.com", Message: "Hello"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if gotAddr != "smtp.example.com:587" || gotFrom != "me@example.com" {
		t.Errorf("addr/from = %s / %s", gotAddr, gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "me@example.com" {
		t.Errorf("to = %v, want the sender's own address", gotTo)
	}
	if !strings.Contains(string(gotMsg), "Reply-To: ada@example.com\r\n") {
		t.Errorf("message missing Reply-To:\n%s", gotMsg)
	}
}

func TestSendWrapsRelayError(t *testing.T) {
	relayErr := errors.New("connection refused")
	s := NewSMTPSender(SMTPConfig{User: "u", Pass: "p", To: "to@example.com"})
	s.send = func(string, smtp.Auth, string, []string, []byte) error { return relayErr }

	if err := s.Send(context.Background(), Message{Name: "x"}); !errors.Is(err, relayErr) {
		t.Fatalf("Send() error = %v, want wrapped relay error", err)
	}
}

func TestSendHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	s := NewSMTPSender(SMTPConfig{User: "u", Pass: "p"})
	s.send = func(string, smtp.Auth, string, []string, []byte) error { called = true; return nil }

	if err := s.Send(ctx, Message{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Send() error = %v", err)
	}
	if called {
		t.Error("relay dialed after cancellation")
	}
}

func TestComposeRejectsHeaderInjection(t *testing.T) {
	_, err := Compose("me@example.com", "me@example.com", Message{Name: "Eve\r\nBcc: all@example.com"})
	if !errors.Is(err, ErrHeaderInjection) {
		t.Fatalf("Compose() error = %v, want ErrHeaderInjection", err)
	}
}

func TestComposeLayout(t *testing.T) {
	raw, err := Compose("me@example.com", "inbox@example.com", Message{Name: "Ada", Email: "ada@example.com", Message: "line one\nline two"})
	if err != nil {
		t.Fatal(err)
	}
	msg := string(raw)
	for _, want := range []string{
		"To: inbox@example.com\r\n",
		"Subject: Portfolio Contact: Ada\r\n",
		"From: me@example.com\r\n",
		"line one\nline two",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}
