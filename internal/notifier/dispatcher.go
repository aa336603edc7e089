package notifier

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
	"github.com/Prabhugems/AMASI-management-sub016/internal/queue"
	"github.com/Prabhugems/AMASI-management-sub016/internal/repository"
)

// Dispatcher renders and delivers one notification message, writing
// an outcome row per channel. It is used from the queue consumer for
// fire-and-forget sends and directly by the invitation flow where the
// caller needs the email result.
type Dispatcher struct {
	Mail Mailer
	WA   *WhatsAppClient
	Logs *repository.NotificationLogRepo
	Log  zerolog.Logger
}

// Deliver renders the message templates and sends on each requested
// channel. The returned error reflects only the email outcome:
// WhatsApp failures are logged and swallowed so they can never block
// or roll back the email result.
func (d *Dispatcher) Deliver(ctx context.Context, msg queue.NotificationMessage) error {
	subject := Render(msg.Subject, msg.Vars)
	body := Render(msg.Body, msg.Vars)

	var emailErr error
	if msg.Email != "" {
		if d.Mail == nil {
			emailErr = errNoMailer
		} else {
			emailErr = d.Mail.Send(ctx, msg.Email, subject, body)
		}
		d.appendLog(ctx, msg, model.ChannelEmail, msg.Email, emailErr)
		if emailErr != nil {
			d.Log.Error().Err(emailErr).Str("recipient", msg.Email).
				Str("template", msg.Template).Msg("email send failed")
		}
	}

	if msg.Phone != "" && d.WA != nil {
		if waErr := d.WA.SendTemplate(ctx, msg.Phone, msg.Template, msg.Vars); waErr != nil {
			d.appendLog(ctx, msg, model.ChannelWhatsApp, msg.Phone, waErr)
			d.Log.Warn().Err(waErr).Str("recipient", msg.Phone).
				Str("template", msg.Template).Msg("whatsapp send failed; continuing")
		} else {
			d.appendLog(ctx, msg, model.ChannelWhatsApp, msg.Phone, nil)
		}
	}

	return emailErr
}

func (d *Dispatcher) appendLog(ctx context.Context, msg queue.NotificationMessage, channel, recipient string, sendErr error) {
	if d.Logs == nil {
		return
	}
	entry := model.NotificationLog{
		MessageRef: msg.MessageRef,
		Channel:    channel,
		Recipient:  recipient,
		Template:   msg.Template,
		Status:     model.SendSent,
	}
	if sendErr != nil {
		entry.Status = model.SendFailed
		entry.Error = sendErr.Error()
	}
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := d.Logs.Append(logCtx, &entry); err != nil {
		d.Log.Warn().Err(err).Msg("failed to append notification log")
	}
}

type noMailerError struct{}

func (noMailerError) Error() string { return "no email provider configured" }

var errNoMailer = noMailerError{}
