package mailer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/expertrohr/web/internal/config"
)

func TestBuildMessageWithInlineLogo(t *testing.T) {
	msg := Message{
		From:    "Kontakt <info@example.com>",
		To:      "info@example.com",
		ReplyTo: "max@example.com",
		Subject: "Neue Anfrage vom Kontaktformular",
		Text:    "plain body",
		HTML:    `<img src="cid:expertlogo">`,
		Inline:  []Inline{{Filename: "logo.png", ContentID: "expertlogo", Data: []byte("png-bytes")}},
	}

	var buf bytes.Buffer
	if _, err := build(msg).WriteTo(&buf); err != nil {
		t.Fatalf("write message: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Reply-To: max@example.com",
		"Content-ID: <expertlogo>",
		"multipart/related",
		"multipart/alternative",
		"text/html",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in message:\n%s", want, out)
		}
	}
}

func TestBuildMessageWithoutReplyTo(t *testing.T) {
	var buf bytes.Buffer
	if _, err := build(Message{From: "a@example.com", To: "b@example.com", Subject: "s", Text: "t"}).WriteTo(&buf); err != nil {
		t.Fatalf("write message: %v", err)
	}
	if strings.Contains(buf.String(), "Reply-To") {
		t.Fatalf("reply-to must be omitted when empty")
	}
}

func TestSMTPMailerNotConfigured(t *testing.T) {
	m := SMTPMailer{Config: config.SMTPConfig{Port: 587}}
	err := m.Send(context.Background(), Message{To: "x@example.com"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSMTPMailerErrorOmitsRecipient(t *testing.T) {
	m := SMTPMailer{Config: config.SMTPConfig{Host: "127.0.0.1", Port: 1, User: "u", Password: "p"}}
	err := m.Send(context.Background(), Message{From: "info@example.com", To: "max@example.com", Subject: "s", Text: "t"})
	if err == nil {
		t.Fatalf("expected dial failure on a closed port")
	}
	if strings.Contains(err.Error(), "max@example.com") {
		t.Fatalf("send error leaks recipient: %v", err)
	}
}

func TestLoadInline(t *testing.T) {
	in, err := LoadInline("", "logo.png", "expertlogo", []byte("embedded"))
	if err != nil {
		t.Fatalf("load fallback: %v", err)
	}
	if string(in.Data) != "embedded" || in.ContentID != "expertlogo" {
		t.Fatalf("unexpected inline: %+v", in)
	}

	path := filepath.Join(t.TempDir(), "custom.png")
	if err := os.WriteFile(path, []byte("custom"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	in, err = LoadInline(path, "logo.png", "expertlogo", []byte("embedded"))
	if err != nil {
		t.Fatalf("load from path: %v", err)
	}
	if string(in.Data) != "custom" {
		t.Fatalf("expected file contents, got %q", in.Data)
	}

	if _, err := LoadInline(filepath.Join(t.TempDir(), "missing.png"), "logo.png", "expertlogo", nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
