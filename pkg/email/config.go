package email

// Config holds email service configuration.
// PostmarkServerToken and PostmarkAccountToken are optional to support
// development environments where email sending is disabled.
// SenderEmail and SupportEmail are the defaults for messages that carry
// no From or Reply-To address.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL,required"`
	DevOutputDir         string `env:"EMAIL_DEV_OUTPUT_DIR" envDefault:"./tmp/emails"`
	SMTP                 SMTPConfig
}

// NewSender picks the transport from cfg: Postmark when a server token is
// set, SMTP when a relay host is set, and a DevSender writing to DevOutputDir
// otherwise.
func NewSender(cfg Config) (EmailSender, error) {
	switch {
	case cfg.PostmarkServerToken != "":
		return NewPostmarkClient(cfg)
	case cfg.SMTP.Host != "":
		return NewSMTPSender(cfg, cfg.SMTP)
	default:
		return NewDevSender(cfg.DevOutputDir), nil
	}
}
