package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"os"
	"strconv"
	"time"
)

// EmailService interface for sending emails
type EmailService interface {
	SendNotificationEmail(ctx context.Context, notification *EmailNotification) error
}

// SMTPConfig holds SMTP configuration
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	Timeout   time.Duration
}

// NewSMTPConfigFromEnv creates SMTP config from environment variables
func NewSMTPConfigFromEnv() *SMTPConfig {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}

	timeout, _ := time.ParseDuration(os.Getenv("SMTP_TIMEOUT"))
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &SMTPConfig{
		Host:      os.Getenv("SMTP_HOST"),
		Port:      port,
		Username:  os.Getenv("SMTP_USERNAME"),
		Password:  os.Getenv("SMTP_PASSWORD"),
		FromEmail: os.Getenv("FROM_EMAIL"),
		FromName:  "Wayfare",
		Timeout:   timeout,
	}
}

// IsConfigured reports whether enough SMTP settings are present to send real
// mail. Without them the log-only sender is used instead.
func (c *SMTPConfig) IsConfigured() bool {
	return c.Host != "" && c.Username != "" && c.FromEmail != ""
}

// SMTPEmailService sends notification emails over SMTP.
type SMTPEmailService struct {
	config    *SMTPConfig
	templates map[NotificationType]*template.Template
}

func NewSMTPEmailService(config *SMTPConfig) (*SMTPEmailService, error) {
	if config == nil || !config.IsConfigured() {
		return nil, fmt.Errorf("SMTP configuration is incomplete")
	}

	service := &SMTPEmailService{
		config:    config,
		templates: make(map[NotificationType]*template.Template),
	}
	service.loadDefaultTemplates()

	return service, nil
}

func (s *SMTPEmailService) SendNotificationEmail(ctx context.Context, notification *EmailNotification) error {
	body, err := s.renderBody(notification)
	if err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	msg := buildMessage(s.config.FromName, s.config.FromEmail,
		notification.RecipientEmail, notification.Subject, body)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{notification.RecipientEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent - Type: %s, Recipient: %s", notification.Type, notification.RecipientEmail)
	return nil
}

func (s *SMTPEmailService) renderBody(notification *EmailNotification) (string, error) {
	tmpl, ok := s.templates[notification.Type]
	if !ok {
		tmpl = s.templates[NotificationTypeWelcome]
	}

	data := map[string]interface{}{
		"RecipientName": notification.RecipientName,
		"Data":          notification.TemplateData,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *SMTPEmailService) loadDefaultTemplates() {
	s.templates[NotificationTypeBookingConfirmed] = template.Must(template.New("booking_confirmed").Parse(`
<html><body>
<p>Hi {{.RecipientName}},</p>
<p>Your booking <strong>{{.Data.booking_reference}}</strong> is confirmed.</p>
<p>{{.Data.source}} to {{.Data.destination}}, departing {{.Data.departure_time}}.</p>
<p>Seats: {{.Data.number_of_seats}} &middot; Total: {{.Data.total_price}}</p>
</body></html>`))

	s.templates[NotificationTypeBookingCancelled] = template.Must(template.New("booking_cancelled").Parse(`
<html><body>
<p>Hi {{.RecipientName}},</p>
<p>Your booking <strong>{{.Data.booking_reference}}</strong> has been cancelled.</p>
<p>Refund amount: {{.Data.refund_amount}}</p>
</body></html>`))

	s.templates[NotificationTypeWelcome] = template.Must(template.New("welcome").Parse(`
<html><body>
<p>Hi {{.RecipientName}},</p>
<p>Welcome to Wayfare.</p>
</body></html>`))
}

func buildMessage(fromName, fromEmail, to, subject, htmlBody string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s <%s>\r\n", fromName, fromEmail)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(htmlBody)
	return buf.Bytes()
}

// LogEmailService is the fallback sender for environments without SMTP
// credentials; it writes the would-be email to the log.
type LogEmailService struct{}

func NewLogEmailService() *LogEmailService {
	return &LogEmailService{}
}

func (s *LogEmailService) SendNotificationEmail(ctx context.Context, notification *EmailNotification) error {
	log.Printf("Email (log only) - Type: %s, Recipient: %s <%s>, Subject: %q",
		notification.Type, notification.RecipientName, notification.RecipientEmail, notification.Subject)
	return nil
}
