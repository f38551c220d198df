// Package email sends rendered email notifications.
//
// EmailSender is the transport abstraction. Two implementations ship with the
// package:
//   - the Postmark client (NewPostmarkClient) for production delivery
//   - DevSender, which saves emails as HTML and JSON files for local development
//
// NewSender picks one from Config: Postmark when a server token is set, the
// dev sender otherwise.
//
// Deliverer bridges notification.EmailMessage to an EmailSender. It copies
// routing fields, tags the email with the notification type and loads
// attachment bytes through a file.Loader:
//
//	sender, err := email.NewSender(cfg)
//	if err != nil {
//	    return err
//	}
//	d := email.NewDeliverer(sender, email.WithAttachmentLoader(loader))
//	err = d.Deliver(ctx, msg)
//
// # Error Handling
//
// Parameter validation failures wrap ErrInvalidParams, transport failures wrap
// ErrFailedToSendEmail and attachment problems wrap ErrLoadAttachment. Use
// errors.Is to inspect them.
package email
