// Package dispatch ties rendering and delivery together.
//
// A Manager takes a notification, fills in templates from a
// notification.TemplateStore when the notification carries none, projects it
// through a notification.Engine and hands the message to the Deliverer
// registered for its kind.
//
//	engine, _ := notification.NewEngine(render.New(), notification.WithDefaultLanguage("en"))
//	m, err := dispatch.NewManager(engine,
//	    dispatch.WithTemplateStore(store),
//	    dispatch.WithDeliverer(notification.KindEmail, email.NewDeliverer(sender)),
//	    dispatch.WithDeliverer(notification.KindSms, dispatch.NewLogDeliverer(nil, slog.LevelInfo)),
//	)
//	if err != nil {
//	    return err
//	}
//	msg, err := m.SendPreferred(ctx, n, r.Header.Get("Accept-Language"))
//
// Preview renders without delivering and trims the message to a response
// group, e.g. "WithAttachments".
//
// MultiDeliverer fans out to several deliverers on a best-effort basis,
// LogDeliverer writes messages to a logger and NoOpDeliverer drops them.
package dispatch
