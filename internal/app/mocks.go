package app

import (
	"novanest_backend/internal/email"
	"novanest_backend/internal/logger"
)

// MockEmailProvider logs instead of sending. Used when SMTP is not
// configured.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(e *email.Email) error {
	logger.Info("[mock email] send", "to", e.To, "subject", e.Subject)
	return nil
}

func (m *MockEmailProvider) SendWithTemplate(templateName string, data email.TemplateData, e *email.Email) error {
	logger.Info("[mock email] send with template", "template", templateName, "to", e.To)
	return nil
}

func (m *MockEmailProvider) SendWelcome(to, name, role string) error {
	logger.Info("[mock email] welcome", "to", to, "name", name, "role", role)
	return nil
}
