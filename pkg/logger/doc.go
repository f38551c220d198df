// Package logger builds *slog.Logger instances with functional options and
// provides attribute constructors for notification pipelines.
//
//	log := logger.New(
//	    logger.WithEnvironment(config.Production, "notifier"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "message delivered",
//	    logger.NotificationType("OrderShipped"),
//	    logger.MessageID(msg.Common().ID),
//	)
//
// Handlers are wrapped by LogHandlerDecorator, which evaluates registered
// ContextExtractor callbacks on every record.
package logger
