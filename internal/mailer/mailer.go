package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/gomail.v2"

	"github.com/expertrohr/web/internal/config"
)

var ErrNotConfigured = errors.New("smtp transport is not configured")

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Inline is an attachment the HTML body references as cid:<ContentID>.
type Inline struct {
	Filename  string
	ContentID string
	Data      []byte
}

type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
	Inline  []Inline
}

type SMTPMailer struct {
	Config config.SMTPConfig
}

func (m SMTPMailer) Send(ctx context.Context, msg Message) error {
	if m.Config.Host == "" || m.Config.User == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	d := gomail.NewDialer(m.Config.Host, m.Config.Port, m.Config.User, m.Config.Password)
	d.SSL = m.Config.SSL
	if err := d.DialAndSend(build(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func build(msg Message) *gomail.Message {
	g := gomail.NewMessage()
	g.SetHeader("From", msg.From)
	g.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		g.SetHeader("Reply-To", msg.ReplyTo)
	}
	g.SetHeader("Subject", msg.Subject)
	g.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		g.AddAlternative("text/html", msg.HTML)
	}
	for _, in := range msg.Inline {
		data := in.Data
		g.Embed(in.Filename,
			gomail.SetHeader(map[string][]string{"Content-ID": {"<" + in.ContentID + ">"}}),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		)
	}
	return g
}

// LoadInline reads an inline attachment from disk, falling back to the
// given bytes when path is empty.
func LoadInline(path, filename, contentID string, fallback []byte) (Inline, error) {
	data := fallback
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Inline{}, fmt.Errorf("read inline %s: %w", path, err)
		}
		data = b
	}
	return Inline{Filename: filename, ContentID: contentID, Data: data}, nil
}
