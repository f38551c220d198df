package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/notification"
)

func TestNewEngine(t *testing.T) {
	t.Parallel()
	_, err := notification.NewEngine(nil)
	assert.ErrorIs(t, err, notification.ErrNilRenderer)

	e, err := notification.NewEngine(placeholderRenderer, notification.WithDefaultLanguage("en"))
	require.NoError(t, err)
	assert.Equal(t, "en", e.Resolver().DefaultLanguage)
}

func TestEngine_ToMessage_Email(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("renders subject and copies channel fields", func(t *testing.T) {
		t.Parallel()
		e, err := notification.NewEngine(placeholderRenderer, notification.WithClock(func() time.Time { return now }))
		require.NoError(t, err)

		n := notification.NewEmail("Welcome")
		n.ID = "n-1"
		n.From = "a@x.com"
		n.To = "b@x.com"
		n.Templates = notification.Templates{{LanguageCode: "en", Subject: "Hi {{Recipient}}", Body: "Body"}}

		msg, err := e.ToMessage(ctx, n, "en")
		require.NoError(t, err)
		em, ok := msg.(*notification.EmailMessage)
		require.True(t, ok)

		assert.Equal(t, "Hi b@x.com", em.Subject)
		assert.Equal(t, "Body", em.Body)
		assert.Equal(t, "a@x.com", em.From)
		assert.Equal(t, "b@x.com", em.To)
		assert.Equal(t, notification.KindEmail, em.Kind())
		assert.Equal(t, "n-1", em.NotificationID)
		assert.Equal(t, "Welcome", em.NotificationType)
		assert.Equal(t, "en", em.LanguageCode)
		assert.Equal(t, now, em.CreatedAt)
		assert.NotEmpty(t, em.ID)
	})

	t.Run("message is a snapshot", func(t *testing.T) {
		t.Parallel()
		e, err := notification.NewEngine(placeholderRenderer)
		require.NoError(t, err)
		n := sampleEmail()

		msg, err := e.ToMessage(ctx, n, "de")
		require.NoError(t, err)
		em := msg.(*notification.EmailMessage)
		assert.Equal(t, "Hallo b@x.com", em.Subject)
		assert.Equal(t, []string{"cc@x.com"}, em.CC)
		assert.Equal(t, []string{"bcc@x.com"}, em.BCC)
		assert.Equal(t, "support@x.com", em.ReplyTo)
		require.Len(t, em.Attachments, 1)

		n.CC[0] = "changed"
		n.Attachments[0].FileName = "changed"
		assert.Equal(t, "cc@x.com", em.CC[0])
		assert.Equal(t, "invoice.pdf", em.Attachments[0].FileName)
	})

	t.Run("falls back to default language", func(t *testing.T) {
		t.Parallel()
		e, err := notification.NewEngine(placeholderRenderer, notification.WithDefaultLanguage("en"))
		require.NoError(t, err)

		msg, err := e.ToMessage(ctx, sampleEmail(), "fr")
		require.NoError(t, err)
		em := msg.(*notification.EmailMessage)
		assert.Equal(t, "Hi b@x.com", em.Subject)
		assert.Equal(t, "fr", em.LanguageCode)
	})

	t.Run("missing template leaves content empty", func(t *testing.T) {
		t.Parallel()
		e, err := notification.NewEngine(placeholderRenderer)
		require.NoError(t, err)

		msg, err := e.ToMessage(ctx, sampleEmail(), "fr")
		require.NoError(t, err)
		em := msg.(*notification.EmailMessage)
		assert.Empty(t, em.Subject)
		assert.Empty(t, em.Body)
		assert.Equal(t, "b@x.com", em.To)
	})

	t.Run("empty language uses notification language", func(t *testing.T) {
		t.Parallel()
		e, err := notification.NewEngine(placeholderRenderer)
		require.NoError(t, err)
		n := sampleEmail()
		n.LanguageCode = "de"

		msg, err := e.ToMessage(ctx, n, "")
		require.NoError(t, err)
		assert.Equal(t, "Inhalt", msg.(*notification.EmailMessage).Body)
		assert.Equal(t, "de", msg.Common().LanguageCode)
	})

	t.Run("concurrent render", func(t *testing.T) {
		t.Parallel()
		e, err := notification.NewEngine(placeholderRenderer, notification.WithConcurrentRender())
		require.NoError(t, err)

		msg, err := e.ToMessage(ctx, sampleEmail(), "en")
		require.NoError(t, err)
		em := msg.(*notification.EmailMessage)
		assert.Equal(t, "Hi b@x.com", em.Subject)
		assert.Equal(t, "Body", em.Body)
	})
}

func TestEngine_ToMessage_RenderContexts(t *testing.T) {
	t.Parallel()
	r := &MockRenderer{}
	r.On("Render", mock.Anything, mock.MatchedBy(func(rc notification.RenderContext) bool {
		return rc.Template == "Hi {{Recipient}}" && !rc.UseLayouts && rc.LayoutID == ""
	})).Return("subject", nil).Once()
	r.On("Render", mock.Anything, mock.MatchedBy(func(rc notification.RenderContext) bool {
		return rc.Template == "Body" && rc.UseLayouts && rc.LayoutID == "main" &&
			rc.LanguageCode == "en" && rc.Parameters["OrderNumber"] == "A-1" && rc.Model != nil
	})).Return("body", nil).Once()

	e, err := notification.NewEngine(r)
	require.NoError(t, err)

	msg, err := e.ToMessage(context.Background(), sampleEmail(), "en")
	require.NoError(t, err)
	assert.Equal(t, "subject", msg.(*notification.EmailMessage).Subject)
	assert.Equal(t, "body", msg.(*notification.EmailMessage).Body)
	r.AssertExpectations(t)
}

func TestEngine_ToMessage_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	renderErr := errors.New("template engine down")
	failing := notification.RendererFunc(func(context.Context, notification.RenderContext) (string, error) {
		return "", renderErr
	})

	t.Run("render failure propagates unmodified", func(t *testing.T) {
		t.Parallel()
		for _, opts := range [][]notification.EngineOption{nil, {notification.WithConcurrentRender()}} {
			e, err := notification.NewEngine(failing, opts...)
			require.NoError(t, err)
			msg, err := e.ToMessage(ctx, sampleEmail(), "en")
			assert.Nil(t, msg)
			assert.Equal(t, renderErr, err)
		}
	})

	t.Run("no render call without template", func(t *testing.T) {
		t.Parallel()
		e, err := notification.NewEngine(failing)
		require.NoError(t, err)
		_, err = e.ToMessage(ctx, sampleEmail(), "ja")
		assert.NoError(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		e, err := notification.NewEngine(placeholderRenderer)
		require.NoError(t, err)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		msg, err := e.ToMessage(cctx, sampleEmail(), "en")
		assert.Nil(t, msg)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("timeout abandons projection", func(t *testing.T) {
		t.Parallel()
		slow := notification.RendererFunc(func(ctx context.Context, _ notification.RenderContext) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})
		e, err := notification.NewEngine(slow, notification.WithRenderTimeout(10*time.Millisecond))
		require.NoError(t, err)
		msg, err := e.ToMessage(ctx, sampleEmail(), "en")
		assert.Nil(t, msg)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("nil notification", func(t *testing.T) {
		t.Parallel()
		e, err := notification.NewEngine(placeholderRenderer)
		require.NoError(t, err)
		_, err = e.ToMessage(ctx, nil, "en")
		assert.ErrorIs(t, err, notification.ErrNilNotification)
	})

	t.Run("message kind mismatch", func(t *testing.T) {
		t.Parallel()
		e, err := notification.NewEngine(placeholderRenderer)
		require.NoError(t, err)
		err = sampleEmail().ToMessage(ctx, &notification.SmsMessage{}, e)
		assert.ErrorIs(t, err, notification.ErrMessageKindMismatch)
		err = notification.NewSms("Otp").ToMessage(ctx, &notification.EmailMessage{}, e)
		assert.ErrorIs(t, err, notification.ErrMessageKindMismatch)
	})
}

func TestEngine_ToMessage_Sms(t *testing.T) {
	t.Parallel()
	r := &MockRenderer{}
	r.On("Render", mock.Anything, mock.MatchedBy(func(rc notification.RenderContext) bool {
		return rc.Template == "Code {{Code}}" && rc.UseLayouts
	})).Return("Code 1234", nil).Once()

	e, err := notification.NewEngine(r)
	require.NoError(t, err)

	n := notification.NewSms("Otp")
	n.SetFromTo("Shop", "+100")
	n.SetParameter("Code", "Code", "1234")
	n.Templates = notification.Templates{{LanguageCode: "en", Subject: "ignored", Body: "Code {{Code}}"}}

	msg, err := e.ToMessage(context.Background(), n, "en")
	require.NoError(t, err)
	sms, ok := msg.(*notification.SmsMessage)
	require.True(t, ok)
	assert.Equal(t, "Code 1234", sms.Body)
	assert.Equal(t, "+100", sms.Number)
	assert.Equal(t, "Shop", sms.From)
	r.AssertExpectations(t)
}
