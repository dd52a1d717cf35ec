package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

type EmailData struct {
	Name            string
	Message         string
	VerificationURL string
	LogoURL         string
}

// Mailer delivers rendered template emails.
type Mailer interface {
	SendEmail(emailTo, emailSubject string, data EmailData, templatePath string) error
}

type SMTPMailer struct {
	From     string
	Password string
	Host     string
	Address  string
}

func RenderEmail(templatePath string, data EmailData) (string, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return body.String(), nil
}

func (m SMTPMailer) SendEmail(emailTo, emailSubject string, data EmailData, templatePath string) error {
	if m.Address == "" {
		return fmt.Errorf("smtp address is not configured")
	}
	body, err := RenderEmail(templatePath, data)
	if err != nil {
		return err
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.From,
		emailTo,
		emailSubject,
		body,
	)

	auth := smtp.PlainAuth("", m.From, m.Password, m.Host)
	if err := smtp.SendMail(m.Address, auth, m.From, []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
