package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lex00/lambda-apigateway-go/internal/gateway"
	"github.com/lex00/lambda-apigateway-go/internal/profiles"
	"github.com/lex00/lambda-apigateway-go/internal/session"
	"github.com/lex00/lambda-apigateway-go/internal/settings"
)

// latestProfile is the --profile sentinel that selects the ambient credential
// chain instead of a named profile.
const latestProfile = "latest"

func credentialFor(profile string) session.Credential {
	if profile == "" || profile == latestProfile {
		return session.AmbientCredential()
	}
	return session.NamedCredential(profile)
}

// newRunLogger builds the logger shared by one command run. It writes to
// stderr so stdout stays parseable, and tags every line with a run id.
func newRunLogger(level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	return logger.WithField("run_id", uuid.New().String())
}

// newIntegration resolves credentials and builds the gateway component all
// AWS-touching subcommands share.
func newIntegration(ctx context.Context, defaults *settings.Settings, profile, region string) (*gateway.Integration, error) {
	logger := newRunLogger(defaults.LogLevel)

	resolver := session.NewResolver(session.Options{Logger: logger})
	sess, err := resolver.Resolve(ctx, credentialFor(profile), region)
	if err != nil {
		return nil, err
	}

	return gateway.FromSession(sess, logger), nil
}

func newProfileManager(defaults *settings.Settings) *profiles.Manager {
	return profiles.NewManager(profiles.Options{Logger: newRunLogger(defaults.LogLevel)})
}
