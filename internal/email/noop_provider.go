package email

import "jobboard_backend/internal/logger"

// NoopProvider is used when no SMTP host is configured. Sends are logged
// and dropped so the rest of the app behaves the same with email off.
type NoopProvider struct{}

func (p *NoopProvider) Send(email *Email) error {
	logger.Debug("email disabled, dropping message", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *NoopProvider) SendWithTemplate(templateName string, data TemplateData, email *Email) error {
	logger.Debug("email disabled, dropping message",
		"to", email.To, "subject", email.Subject, "template", templateName)
	return nil
}

func (p *NoopProvider) Validate() error { return nil }

func (p *NoopProvider) Close() error { return nil }
