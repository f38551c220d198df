package dispatch

// Config holds dispatch settings loaded from the environment.
type Config struct {
	// Concurrency bounds SendBatch. Zero or less means unbounded.
	Concurrency int `env:"NOTIFY_DISPATCH_CONCURRENCY" envDefault:"4"`
	// SupportedLanguages restricts Accept-Language negotiation.
	// Empty means the languages of the notification templates.
	SupportedLanguages []string `env:"NOTIFY_SUPPORTED_LANGUAGES" envSeparator:","`
}

// Options converts the config into manager options.
func (c Config) Options() []ManagerOption {
	return []ManagerOption{
		WithConcurrency(c.Concurrency),
		WithSupportedLanguages(c.SupportedLanguages...),
	}
}
