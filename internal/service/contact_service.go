package service

import (
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"schoolsite/config"

	"go.uber.org/zap"
)

type Mailer interface {
	Send(to, replyTo, subject, body string) error
}

// SMTPMailer sends through an authenticated STARTTLS relay such as Gmail.
type SMTPMailer struct {
	cfg config.MailConfig
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, replyTo, subject, body string) error {
	addr := m.cfg.Server + ":" + strconv.Itoa(m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Server)
	msg := buildMessage(m.cfg.Username, to, replyTo, subject, body)
	if err := smtp.SendMail(addr, auth, m.cfg.Username, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}

func buildMessage(from, to, replyTo, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	if replyTo != "" {
		b.WriteString("Reply-To: " + headerSafe(replyTo) + "\r\n")
	}
	b.WriteString("Subject: " + headerSafe(subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// ContactService forwards contact-form submissions to the school inbox.
// A nil mailer disables delivery.
type ContactService struct {
	mailer    Mailer
	recipient string
	log       *zap.Logger
}

func NewContactService(mailer Mailer, recipient string, log *zap.Logger) *ContactService {
	return &ContactService{mailer: mailer, recipient: recipient, log: log}
}

// Submit never fails from the visitor's point of view; delivery problems are logged.
func (s *ContactService) Submit(msg ContactMessage) {
	if s.mailer == nil || s.recipient == "" {
		s.log.Info("contact message received, mail disabled", zap.String("from", msg.Email))
		return
	}
	subject := "Website contact from " + msg.Name
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s\n", msg.Name, msg.Email, msg.Message)
	if err := s.mailer.Send(s.recipient, msg.Email, subject, body); err != nil {
		s.log.Warn("contact mail failed", zap.String("from", msg.Email), zap.Error(err))
	}
}
