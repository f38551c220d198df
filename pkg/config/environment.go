package config

// Environment names the deployment environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// IsProduction accepts "production" and "prod".
func (e Environment) IsProduction() bool { return e == Production || e == "prod" }

// IsStaging accepts "staging" and "stage".
func (e Environment) IsStaging() bool { return e == Staging || e == "stage" }

// IsDevelopment accepts "development" and "dev".
func (e Environment) IsDevelopment() bool { return e == Development || e == "dev" }

// App holds process level settings.
type App struct {
	Environment Environment `env:"APP_ENV" envDefault:"development"`
	ServiceName string      `env:"APP_SERVICE_NAME" envDefault:"notifykit"`
}
