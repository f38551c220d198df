package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"

	mail "github.com/go-mail/mail/v2"
)

// SMTPConfig describes an SMTP relay.
type SMTPConfig struct {
	Host          string `env:"SMTP_HOST"`
	Port          int    `env:"SMTP_PORT" envDefault:"587"`
	Username      string `env:"SMTP_USER"`
	Password      string `env:"SMTP_PASS"`
	SkipTLSVerify bool   `env:"SMTP_SKIP_TLS_VERIFY" envDefault:"false"`
}

type smtpDialer interface {
	DialAndSend(m ...*mail.Message) error
}

type smtpSender struct {
	dialer smtpDialer
	config Config
}

// NewSMTPSender creates an EmailSender delivering through an SMTP relay with
// mandatory STARTTLS.
func NewSMTPSender(cfg Config, smtp SMTPConfig) (EmailSender, error) {
	if smtp.Host == "" {
		return nil, fmt.Errorf("%w: SMTP host is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}

	d := mail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         smtp.Host,
		InsecureSkipVerify: smtp.SkipTLSVerify, // development relays only
	}
	return &smtpSender{dialer: d, config: cfg}, nil
}

func (s *smtpSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if err := s.dialer.DialAndSend(s.message(params)); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}

func (s *smtpSender) message(params SendEmailParams) *mail.Message {
	from := params.From
	if from == "" {
		from = s.config.SenderEmail
	}
	replyTo := params.ReplyTo
	if replyTo == "" {
		replyTo = s.config.SupportEmail
	}

	m := mail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", params.SendTo)
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}
	if len(params.CC) > 0 {
		m.SetHeader("Cc", params.CC...)
	}
	if len(params.BCC) > 0 {
		m.SetHeader("Bcc", params.BCC...)
	}
	if params.Tag != "" {
		m.SetHeader("X-Notification-Type", params.Tag)
	}
	m.SetHeader("Subject", params.Subject)
	m.SetBody("text/html", params.BodyHTML)

	for _, a := range params.Attachments {
		content := a.Content
		settings := []mail.FileSetting{
			mail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, mail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}))
		}
		m.Attach(a.Name, settings...)
	}
	return m
}
