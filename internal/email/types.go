package email

// Email is a single outbound message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData carries the values rendered into an email template.
type TemplateData map[string]interface{}
