package notification_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// placeholderRenderer substitutes {{Name}} with the parameter value.
var placeholderRenderer = notification.RendererFunc(func(_ context.Context, rc notification.RenderContext) (string, error) {
	out := rc.Template
	for name, v := range rc.Parameters {
		out = strings.ReplaceAll(out, "{{"+name+"}}", fmt.Sprint(v))
	}
	return out, nil
})

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, rc notification.RenderContext) (string, error) {
	args := m.Called(ctx, rc)
	return args.String(0), args.Error(1)
}

func sampleEmail() *notification.EmailNotification {
	n := notification.NewEmail("OrderShipped")
	n.ID = "n-1"
	n.From = "a@x.com"
	n.To = "b@x.com"
	n.ReplyTo = "support@x.com"
	n.CC = []string{"cc@x.com"}
	n.BCC = []string{"bcc@x.com"}
	n.Attachments = []notification.EmailAttachment{
		{FileName: "invoice.pdf", URL: "invoices/1.pdf", MimeType: "application/pdf", Size: 42},
	}
	n.Templates = notification.Templates{
		{LanguageCode: "en", Subject: "Hi {{Recipient}}", Body: "Body", NotificationLayoutID: "main"},
		{LanguageCode: "de", Subject: "Hallo {{Recipient}}", Body: "Inhalt"},
	}
	n.SetParameter("OrderNumber", "Order number", "A-1")
	return n
}
