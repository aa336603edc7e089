package queue

// NotificationMessage is published to the notification.send queue when
// a workflow wants an email and/or WhatsApp message delivered without
// blocking the request. Subject and Body are substitution templates;
// the consumer renders {{key}} placeholders from Vars before sending.
type NotificationMessage struct {
	MessageRef string            `json:"message_ref"`
	Template   string            `json:"template"`
	Email      string            `json:"email,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	Subject    string            `json:"subject"`
	Body       string            `json:"body"`
	Vars       map[string]string `json:"vars,omitempty"`
	RequestedAt string           `json:"requested_at"`
}
