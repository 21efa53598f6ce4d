// Package settings loads the CLI's environment-derived defaults.
//
// A .env file in the working directory is applied first (existing variables
// win), then LAMBDA_APIGATEWAY_* environment variables fill the settings.
// Flags still override everything; these are only the flag defaults.
package settings

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings carries the defaults for the connection and output flags shared by
// every subcommand.
type Settings struct {
	// Profile is the default --profile value; empty means the ambient
	// credential chain.
	Profile string
	// Region is the default --region value; empty defers to the profile's
	// or environment's region.
	Region string
	// Output is the default --output format, "text" unless overridden.
	Output string
	// LogLevel sets the logrus level for the run, "info" unless overridden.
	LogLevel string
}

// Load reads .env (when present) and the environment.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LAMBDA_APIGATEWAY_OUTPUT", "text")
	v.SetDefault("LAMBDA_APIGATEWAY_LOG_LEVEL", "info")

	return &Settings{
		Profile:  v.GetString("LAMBDA_APIGATEWAY_PROFILE"),
		Region:   v.GetString("LAMBDA_APIGATEWAY_REGION"),
		Output:   v.GetString("LAMBDA_APIGATEWAY_OUTPUT"),
		LogLevel: v.GetString("LAMBDA_APIGATEWAY_LOG_LEVEL"),
	}, nil
}
