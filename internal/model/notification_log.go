package model

import "time"

// NotificationLog records the outcome of one email or WhatsApp send.
// Rows are written by the queue consumer and by the synchronous
// invitation flow; nothing in the system reads them on the request
// path.
type NotificationLog struct {
	ID         uint64    // notification_logs.id
	MessageRef string    // notification_logs.message_ref (UUID)
	Channel    string    // notification_logs.channel (EMAIL, WHATSAPP)
	Recipient  string    // notification_logs.recipient
	Template   string    // notification_logs.template
	Status     string    // notification_logs.status (SENT, FAILED)
	Error      string    // notification_logs.error
	CreatedAt  time.Time // notification_logs.created_at
}

// Notification channels and outcomes.
const (
	ChannelEmail    = "EMAIL"
	ChannelWhatsApp = "WHATSAPP"
	SendSent        = "SENT"
	SendFailed      = "FAILED"
)
