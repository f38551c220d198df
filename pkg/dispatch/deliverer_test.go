package dispatch_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/dispatch"
	"github.com/dmitrymomot/notifykit/pkg/notification"
)

func TestMultiDeliverer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	msg := &notification.EmailMessage{To: "user@example.com"}
	msg.ID = "m-1"

	failing := &MockDeliverer{}
	failing.On("Deliver", ctx, msg).Return(errors.New("channel down"))
	ok := &MockDeliverer{}
	ok.On("Deliver", ctx, msg).Return(nil)

	var buf bytes.Buffer
	md := dispatch.NewMultiDeliverer(
		[]dispatch.Deliverer{failing, ok},
		dispatch.WithMultiDelivererLogger(slog.New(slog.NewJSONHandler(&buf, nil))),
	)

	assert.NoError(t, md.Deliver(ctx, msg))
	failing.AssertExpectations(t)
	ok.AssertExpectations(t)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "m-1", entry["message_id"])
	assert.Equal(t, float64(0), entry["deliverer_index"])
	assert.Equal(t, "channel down", entry["error"])
}

func TestLogDeliverer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("email", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := dispatch.NewLogDeliverer(slog.New(slog.NewJSONHandler(&buf, nil)), slog.LevelInfo)

		msg := &notification.EmailMessage{To: "user@example.com", Subject: "Hi"}
		msg.ID = "m-1"
		msg.NotificationType = "Welcome"
		msg.LanguageCode = "en"
		require.NoError(t, d.Deliver(ctx, msg))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "EmailNotification", entry["kind"])
		assert.Equal(t, "Welcome", entry["notification_type"])
		assert.Equal(t, "user@example.com", entry["to"])
		assert.Equal(t, "Hi", entry["subject"])
		assert.Equal(t, "en", entry["language"])
	})

	t.Run("sms", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		d := dispatch.NewLogDeliverer(slog.New(slog.NewJSONHandler(&buf, nil)), slog.LevelInfo)

		require.NoError(t, d.Deliver(ctx, &notification.SmsMessage{Number: "+100", Body: "1234"}))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "SmsNotification", entry["kind"])
		assert.Equal(t, "+100", entry["number"])
		assert.Equal(t, float64(4), entry["body_length"])
	})

	t.Run("below handler level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		require.NoError(t, dispatch.NewLogDeliverer(l, slog.LevelDebug).Deliver(ctx, &notification.SmsMessage{}))
		assert.Empty(t, buf.String())
	})
}

func TestDelivererFunc(t *testing.T) {
	t.Parallel()
	called := false
	d := dispatch.DelivererFunc(func(context.Context, notification.Message) error {
		called = true
		return nil
	})
	require.NoError(t, d.Deliver(context.Background(), &notification.SmsMessage{}))
	assert.True(t, called)
	assert.NoError(t, dispatch.NoOpDeliverer{}.Deliver(context.Background(), &notification.SmsMessage{}))
}
