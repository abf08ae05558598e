package email

// Email is a single outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData feeds the html templates.
type TemplateData map[string]interface{}

// Provider sends platform emails. All sends are best-effort: callers log
// failures and carry on.
type Provider interface {
	Send(email *Email) error
	SendWithTemplate(templateName string, data TemplateData, email *Email) error
	SendWelcome(to, name, role string) error
}
