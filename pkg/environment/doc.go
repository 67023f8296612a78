// Package environment names the deployment stage a service runs in.
//
// Parse turns an APP_ENV style value into one of Development, Staging or
// Production, accepting the short aliases "dev", "stage" and "prod". The
// logger package uses the result to pick output format and level presets.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // ...
//	}
package environment
