// Package email renders and delivers transactional emails over SMTP.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Config holds SMTP connection details and the public URLs embedded in
// outbound links.
type Config struct {
	Server        string
	Port          int
	Username      string
	Password      string
	From          string
	ResetURLBase  string
	VerifyURLBase string
}

// Sender delivers password reset and account verification emails.
type Sender struct {
	cfg       Config
	templates *template.Template
	log       zerolog.Logger
}

func NewSender(cfg Config, log zerolog.Logger) (*Sender, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &Sender{cfg: cfg, templates: tmpl, log: log}, nil
}

type linkData struct {
	FullName string
	Link     string
}

// SendPasswordReset emails the reset link for the given opaque token.
func (s *Sender) SendPasswordReset(userID, to, token, fullName string) error {
	link := buildLink(s.cfg.ResetURLBase, userID, token)
	return s.send(to, "Reset Password", "password_reset.html", linkData{FullName: fullName, Link: link})
}

// SendUserVerification emails the account verification link.
func (s *Sender) SendUserVerification(userID, to, token, fullName string) error {
	link := buildLink(s.cfg.VerifyURLBase, userID, token)
	return s.send(to, "User verification", "user_verification.html", linkData{FullName: fullName, Link: link})
}

func buildLink(base, userID, token string) string {
	q := url.Values{}
	q.Set("id", userID)
	q.Set("token", token)
	return base + "?" + q.Encode()
}

func (s *Sender) send(to, subject, templateName string, data linkData) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("render %s: %w", templateName, err)
	}

	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", s.cfg.Server, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Server)
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes()); err != nil {
		s.log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("send email failed")
		return fmt.Errorf("send email: %w", err)
	}
	s.log.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}
