// Package notification implements the notification object model and its
// rendering pipeline.
//
// A Notification is one of a closed set of channel variants (EmailNotification,
// SmsNotification) selected by Kind. Every variant carries a set of localized
// templates and template parameters, and knows how to project itself into the
// matching delivery Message.
//
// # Rendering
//
// The Engine resolves a template for the requested language, hands the subject
// and body to a Renderer and copies the channel fields into the message:
//
//	engine, err := notification.NewEngine(renderer, notification.WithDefaultLanguage("en"))
//	if err != nil {
//	    return err
//	}
//
//	n := notification.NewEmail("OrderShipped")
//	n.From = "shop@example.com"
//	n.To = "customer@example.com"
//	n.Templates = notification.Templates{
//	    {LanguageCode: "en", Subject: "Hi {{Recipient}}", Body: "Your order has shipped."},
//	}
//
//	msg, err := engine.ToMessage(ctx, n, "en")
//	email := msg.(*notification.EmailMessage)
//
// When no template matches the language and no default applies, the subject
// and body stay empty. Renderer errors are returned unchanged and no message
// is produced.
//
// # Parameters
//
// Each variant declares its parameters once in a ParameterTable. Email
// notifications expose From as "Sender" and To as "Recipient". Callers add
// more with Base.SetParameter.
//
// # Response groups
//
// ReduceDetails trims a notification or message for outbound responses.
// The response group is a comma separated flag list (Full, WithTemplates,
// WithParameters, WithAttachments, None). Unrecognized text means Full.
//
// # Updates
//
// PopulateFromOther applies an incoming notification onto an existing one.
// Channel fields are copied only between notifications of the same kind;
// common fields are copied always. Clone returns a deep copy.
package notification
