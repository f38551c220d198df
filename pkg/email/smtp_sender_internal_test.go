package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	mail "github.com/go-mail/mail/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDialer struct {
	sent []*mail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*mail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestNewSMTPSender(t *testing.T) {
	t.Parallel()
	cfg := Config{SenderEmail: "noreply@example.com"}

	_, err := NewSMTPSender(cfg, SMTPConfig{})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSMTPSender(Config{SenderEmail: "nope"}, SMTPConfig{Host: "smtp.example.com"})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	s, err := NewSMTPSender(cfg, SMTPConfig{Host: "smtp.example.com", Port: 587})
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestSMTPSender_SendEmail(t *testing.T) {
	t.Parallel()
	cfg := Config{SenderEmail: "noreply@example.com", SupportEmail: "support@example.com"}
	params := SendEmailParams{
		SendTo:   "user@example.com",
		CC:       []string{"cc@example.com"},
		Subject:  "Invoice",
		BodyHTML: "<p>attached</p>",
		Tag:      "OrderShipped",
		Attachments: []Attachment{
			{Name: "invoice.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4")},
		},
	}

	t.Run("builds message", func(t *testing.T) {
		t.Parallel()
		d := &fakeDialer{}
		s := &smtpSender{dialer: d, config: cfg}
		require.NoError(t, s.SendEmail(context.Background(), params))

		require.Len(t, d.sent, 1)
		m := d.sent[0]
		assert.Equal(t, []string{"noreply@example.com"}, m.GetHeader("From"))
		assert.Equal(t, []string{"support@example.com"}, m.GetHeader("Reply-To"))
		assert.Equal(t, []string{"user@example.com"}, m.GetHeader("To"))
		assert.Equal(t, []string{"cc@example.com"}, m.GetHeader("Cc"))
		assert.Equal(t, []string{"OrderShipped"}, m.GetHeader("X-Notification-Type"))

		var buf bytes.Buffer
		_, err := m.WriteTo(&buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `filename="invoice.pdf"`)
		assert.Contains(t, buf.String(), "application/pdf")
	})

	t.Run("invalid params never dial", func(t *testing.T) {
		t.Parallel()
		d := &fakeDialer{}
		s := &smtpSender{dialer: d, config: cfg}
		p := params
		p.SendTo = ""
		assert.ErrorIs(t, s.SendEmail(context.Background(), p), ErrInvalidParams)
		assert.Empty(t, d.sent)
	})

	t.Run("dial failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection refused")
		s := &smtpSender{dialer: &fakeDialer{err: boom}, config: cfg}
		err := s.SendEmail(context.Background(), params)
		assert.ErrorIs(t, err, ErrFailedToSendEmail)
		assert.ErrorIs(t, err, boom)
	})
}
