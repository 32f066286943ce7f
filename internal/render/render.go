// Package render turns a submission into the documents the relay sends.
// Everything here is pure: no I/O, no shared mutable state.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/expertrohr/web/internal/config"
	"github.com/expertrohr/web/internal/models"
)

// LogoCID is the content id the HTML layout references as cid:expertlogo.
const LogoCID = "expertlogo"

const (
	operatorSubject       = "Neue Anfrage vom Kontaktformular"
	operatorSubjectUrgent = "🚨 NOTFALL – Neue Anfrage vom Kontaktformular"
	noEmail               = "keine angegeben"
	anonymousGreeting     = "sehr geehrte Kundin, sehr geehrter Kunde"
)

//go:embed templates/*.html
var templateFS embed.FS

var documents = template.Must(template.New("documents").Funcs(template.FuncMap{
	"dash":        dash,
	"emailOrNone": emailOrNone,
	"urgentLabel": urgentLabel,
	"field": func(label, value string) row {
		return row{Label: label, Value: value}
	},
}).ParseFS(templateFS, "templates/*.html"))

type row struct {
	Label string
	Value string
}

type documentData struct {
	Brand config.Brand
	Title string
	Intro string
	Sub   models.Submission
}

// Documents holds every rendering produced for one submission.
type Documents struct {
	PlainText       string
	OperatorSubject string
	OperatorHTML    string
	CustomerSubject string
	CustomerHTML    string
	Chat            string
}

func Render(brand config.Brand, s models.Submission) (Documents, error) {
	operator, err := OperatorHTML(brand, s)
	if err != nil {
		return Documents{}, err
	}
	customer, err := CustomerHTML(brand, s)
	if err != nil {
		return Documents{}, err
	}
	return Documents{
		PlainText:       PlainText(s),
		OperatorSubject: OperatorSubject(s),
		OperatorHTML:    operator,
		CustomerSubject: CustomerSubject(brand),
		CustomerHTML:    customer,
		Chat:            ChatMessage(s),
	}, nil
}

func OperatorSubject(s models.Submission) string {
	if s.Urgent {
		return operatorSubjectUrgent
	}
	return operatorSubject
}

func CustomerSubject(brand config.Brand) string {
	return "Vielen Dank für Ihre Anfrage bei " + brand.Name
}

func PlainText(s models.Submission) string {
	return fmt.Sprintf(`
Neue Anfrage vom Kontaktformular

Name:    %s
Telefon: %s
E-Mail:  %s
Adresse: %s
Notfall: %s

Problembeschreibung:
%s
`, dash(s.Name), dash(s.Phone), emailOrNone(s.Email), dash(s.Address), urgentLabel(s.Urgent), dash(s.Problem))
}

func OperatorHTML(brand config.Brand, s models.Submission) (string, error) {
	return execute("operator", documentData{
		Brand: brand,
		Title: OperatorSubject(s),
		Intro: "Es liegt eine neue Kundenanfrage vor. Alle Details finden Sie untenstehend.",
		Sub:   s,
	})
}

func CustomerHTML(brand config.Brand, s models.Submission) (string, error) {
	name := s.Name
	if name == "" {
		name = anonymousGreeting
	}
	return execute("customer", documentData{
		Brand: brand,
		Title: fmt.Sprintf("Vielen Dank für Ihre Anfrage, %s!", name),
		Intro: "dies ist die Bestätigung, dass Ihre Nachricht bei uns eingegangen ist.",
		Sub:   s,
	})
}

// ChatMessage builds the short alert. The chat transport parses it as HTML,
// so every interpolated value is escaped.
func ChatMessage(s models.Submission) string {
	urgent := "nein"
	if s.Urgent {
		urgent = "JA 🚨"
	}

	var b strings.Builder
	b.WriteString("📬 <b>Neue Website-Anfrage</b>\n")
	b.WriteString("👤 <b>Name:</b> " + html.EscapeString(dash(s.Name)) + "\n")
	b.WriteString("📞 <b>Telefon:</b> " + html.EscapeString(dash(s.Phone)) + "\n")
	b.WriteString("📍 <b>Adresse:</b> " + html.EscapeString(dash(s.Address)) + "\n")
	b.WriteString("❗ <b>Notfall:</b> " + urgent + "\n\n")
	b.WriteString("📝 <b>Problem:</b>\n" + html.EscapeString(dash(s.Problem)))
	return b.String()
}

func execute(name string, data documentData) (string, error) {
	var buf bytes.Buffer
	if err := documents.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func emailOrNone(v string) string {
	if v == "" {
		return noEmail
	}
	return v
}

func urgentLabel(urgent bool) string {
	if urgent {
		return "Ja (NOTFALL)"
	}
	return "Nein"
}

// Logo is the default header image attached inline as LogoCID.
//
//go:embed assets/logo.png
var Logo []byte
