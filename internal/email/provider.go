package email

import (
	"fmt"
	"strings"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
)

// Provider sends outbound email.
type Provider interface {
	Send(email *Email) error
	SendWithTemplate(templateName string, data TemplateData, email *Email) error
	Validate() error
	Close() error
}

// TemplateRenderer renders named templates into HTML bodies.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
	LoadTemplates(dirPath string) error
}

// NewProvider builds the provider from config. Without an SMTP host
// configured, email is disabled and sends become logged no-ops.
func NewProvider(cfg *config.Config) (Provider, error) {
	if cfg.Email.SMTPHost == "" {
		return &NoopProvider{}, nil
	}

	renderer := NewTemplateManager()
	if err := registerBuiltinTemplates(renderer); err != nil {
		return nil, err
	}
	if cfg.Email.TemplatesDir != "" {
		if err := renderer.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
	}

	return NewSMTPProvider(&SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
	}, renderer), nil
}

// StatusUpdateEmail builds the notification sent to an applicant when an
// employer moves their application through the funnel.
func StatusUpdateEmail(to, applicantName, jobTitle, company string, status models.ApplicationStatus) (string, TemplateData, *Email) {
	return "application_status", TemplateData{
			"Name":     applicantName,
			"JobTitle": jobTitle,
			"Company":  company,
			"Status":   statusLabel(status),
		}, &Email{
			To:      []string{to},
			Subject: fmt.Sprintf("Update on your application for %s at %s", jobTitle, company),
		}
}

func statusLabel(status models.ApplicationStatus) string {
	return strings.ReplaceAll(string(status), "-", " ")
}
