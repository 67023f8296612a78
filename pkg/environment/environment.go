package environment

import "strings"

// Environment names the deployment stage the service runs in.
type Environment string

const (
	// Development for local development.
	Development Environment = "development"
	// Staging for pre-production deployments.
	Staging Environment = "staging"
	// Production for production deployments.
	Production Environment = "production"
)

// Parse maps an APP_ENV style value, including the short aliases "dev",
// "stage" and "prod", to an Environment. Anything unrecognised is treated
// as Development so a missing variable never enables production behaviour.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string { return string(e) }

func (e Environment) IsProduction() bool { return e == Production }

func (e Environment) IsStaging() bool { return e == Staging }

func (e Environment) IsDevelopment() bool { return e == Development }
