package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewSMTPSender(host string, port int, user, password, from, templatePath string) *SMTPSender {
	return &SMTPSender{
		Host:         host,
		Port:         port,
		User:         user,
		Password:     password,
		From:         from,
		TemplatePath: templatePath,
	}
}

// Send renders the campaign template with the recipient context and
// delivers it over SMTP.
func (s *SMTPSender) Send(to, subject string, context map[string]string) error {
	t, err := template.ParseFiles(s.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read campaign template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, context); err != nil {
		return fmt.Errorf("failed to render campaign template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
