package email

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostmark struct {
	sent []postmark.Email
	resp postmark.EmailResponse
	err  error
}

func (f *fakePostmark) SendEmail(_ context.Context, e postmark.Email) (postmark.EmailResponse, error) {
	f.sent = append(f.sent, e)
	return f.resp, f.err
}

func TestPostmarkClient_Mapping(t *testing.T) {
	t.Parallel()

	cfg := Config{SenderEmail: "noreply@example.com", SupportEmail: "support@example.com"}
	params := SendEmailParams{
		SendTo:   "user@example.com",
		CC:       []string{"a@example.com", "b@example.com"},
		BCC:      []string{"audit@example.com"},
		Subject:  "Invoice",
		BodyHTML: "<p>hi</p>",
		Tag:      "OrderShipped",
		Attachments: []Attachment{
			{Name: "invoice.pdf", ContentType: "application/pdf", Content: []byte("%PDF")},
		},
	}

	t.Run("defaults and attachments", func(t *testing.T) {
		t.Parallel()
		api := &fakePostmark{}
		c := &postmarkClient{client: api, config: cfg}
		require.NoError(t, c.SendEmail(context.Background(), params))

		require.Len(t, api.sent, 1)
		got := api.sent[0]
		assert.Equal(t, "noreply@example.com", got.From)
		assert.Equal(t, "support@example.com", got.ReplyTo)
		assert.Equal(t, "user@example.com", got.To)
		assert.Equal(t, "a@example.com,b@example.com", got.Cc)
		assert.Equal(t, "audit@example.com", got.Bcc)
		assert.Equal(t, "OrderShipped", got.Tag)
		assert.True(t, got.TrackOpens)
		require.Len(t, got.Attachments, 1)
		assert.Equal(t, "invoice.pdf", got.Attachments[0].Name)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF")), got.Attachments[0].Content)
	})

	t.Run("message overrides", func(t *testing.T) {
		t.Parallel()
		api := &fakePostmark{}
		c := &postmarkClient{client: api, config: cfg}
		p := params
		p.From = "shop@example.com"
		p.ReplyTo = "orders@example.com"
		require.NoError(t, c.SendEmail(context.Background(), p))
		assert.Equal(t, "shop@example.com", api.sent[0].From)
		assert.Equal(t, "orders@example.com", api.sent[0].ReplyTo)
	})

	t.Run("api error code", func(t *testing.T) {
		t.Parallel()
		api := &fakePostmark{resp: postmark.EmailResponse{ErrorCode: 406, Message: "inactive recipient"}}
		c := &postmarkClient{client: api, config: cfg}
		err := c.SendEmail(context.Background(), params)
		assert.ErrorIs(t, err, ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "406")
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("dial tcp: timeout")
		c := &postmarkClient{client: &fakePostmark{err: boom}, config: cfg}
		err := c.SendEmail(context.Background(), params)
		assert.ErrorIs(t, err, ErrFailedToSendEmail)
		assert.ErrorIs(t, err, boom)
	})
}
