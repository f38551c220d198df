package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/file"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// Deliverer sends rendered email messages through an EmailSender.
type Deliverer struct {
	sender EmailSender
	loader file.Loader
	logger *slog.Logger
}

// DelivererOption configures a Deliverer.
type DelivererOption func(*Deliverer)

// WithAttachmentLoader sets the loader resolving EmailAttachment.URL.
func WithAttachmentLoader(l file.Loader) DelivererOption {
	return func(d *Deliverer) {
		d.loader = l
	}
}

// WithLogger sets the logger for the Deliverer.
func WithLogger(l *slog.Logger) DelivererOption {
	return func(d *Deliverer) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDeliverer creates a deliverer on top of sender.
func NewDeliverer(sender EmailSender, opts ...DelivererOption) *Deliverer {
	d := &Deliverer{sender: sender, logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Deliver sends msg, which must be an *notification.EmailMessage.
func (d *Deliverer) Deliver(ctx context.Context, msg notification.Message) error {
	m, ok := msg.(*notification.EmailMessage)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedMessage, msg)
	}

	params, err := d.params(ctx, m)
	if err != nil {
		return err
	}
	if err := d.sender.SendEmail(ctx, params); err != nil {
		return err
	}

	d.logger.LogAttrs(ctx, slog.LevelDebug, "email sent",
		logger.MessageID(m.ID),
		logger.NotificationType(m.NotificationType),
		slog.Int("attachments", len(params.Attachments)),
	)
	return nil
}

// params converts m into SendEmailParams, loading attachment contents.
func (d *Deliverer) params(ctx context.Context, m *notification.EmailMessage) (SendEmailParams, error) {
	p := SendEmailParams{
		From:     m.From,
		SendTo:   m.To,
		ReplyTo:  m.ReplyTo,
		CC:       m.CC,
		BCC:      m.BCC,
		Subject:  m.Subject,
		BodyHTML: m.Body,
		Tag:      m.NotificationType,
	}
	if len(m.Attachments) == 0 {
		return p, nil
	}
	if d.loader == nil {
		return SendEmailParams{}, ErrAttachmentLoader
	}

	for _, a := range m.Attachments {
		c, err := d.loader.Load(ctx, a.URL)
		if err != nil {
			return SendEmailParams{}, fmt.Errorf("%w: %s: %w", ErrLoadAttachment, a.FileName, err)
		}
		name := a.FileName
		if name == "" {
			name = c.Name
		}
		contentType := a.MimeType
		if contentType == "" {
			contentType = c.MIMEType
		}
		p.Attachments = append(p.Attachments, Attachment{
			Name:        file.SanitizeFilename(name),
			ContentType: contentType,
			Content:     c.Data,
		})
	}
	return p, nil
}
