package email

import "errors"

var (
	ErrFailedToSendEmail  = errors.New("mailer.errors.failed_to_send_email")
	ErrInvalidConfig      = errors.New("mailer.errors.invalid_config")
	ErrInvalidParams      = errors.New("mailer.errors.invalid_params")
	ErrUnsupportedMessage = errors.New("mailer.errors.unsupported_message")
	ErrAttachmentLoader   = errors.New("mailer.errors.attachment_loader_missing")
	ErrLoadAttachment     = errors.New("mailer.errors.failed_to_load_attachment")
)
