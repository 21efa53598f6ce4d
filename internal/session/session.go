// Package session resolves AWS client configuration from a credential choice
// and an optional region override.
//
// Resolution reads the shared config files only; no network call is made.
// Credentials themselves are fetched lazily by the SDK on the first signed
// request, which is what lets the "latest" credential mode pick up rotated
// credentials without naming a profile.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/sirupsen/logrus"

	lambdaapi "github.com/lex00/lambda-apigateway-go"
)

// Credential selects which stored credential a Session binds to. Use
// NamedCredential for a shared-config profile and AmbientCredential for
// whatever the environment's default chain currently provides.
type Credential struct {
	name string
}

// NamedCredential binds to the named shared-config profile.
func NamedCredential(name string) Credential {
	return Credential{name: name}
}

// AmbientCredential binds to the ambient default credential chain, skipping
// any stored profile. This supports short-lived or rotated credentials where
// the caller does not know the current profile name.
func AmbientCredential() Credential {
	return Credential{}
}

// Ambient reports whether the credential is the ambient default chain.
func (c Credential) Ambient() bool {
	return c.name == ""
}

// Name returns the profile name, or "" for the ambient credential.
func (c Credential) Name() string {
	return c.name
}

func (c Credential) String() string {
	if c.Ambient() {
		return "ambient"
	}
	return c.name
}

// Session is an AWS client configuration bound to a credential choice and a
// region. It is created per invocation and never persisted or shared across
// processes.
type Session struct {
	// Config is the resolved SDK configuration; service clients are built
	// from it.
	Config aws.Config
	// Profile is the bound profile name, empty for the ambient credential.
	Profile string
	// Region is the region the session resolved to.
	Region string
}

// Options configures a Resolver.
type Options struct {
	// Logger receives resolution milestones. A discarding logger is used
	// when nil.
	Logger *logrus.Entry

	// ConfigFiles and CredentialsFiles override the shared config file
	// locations. Used by tests to resolve against fixture files.
	ConfigFiles      []string
	CredentialsFiles []string
}

// Resolver builds Sessions from the shared AWS config.
type Resolver struct {
	opts   Options
	logger *logrus.Entry
}

// NewResolver creates a Resolver with the given options.
func NewResolver(opts Options) *Resolver {
	return &Resolver{opts: opts, logger: ensureLogger(opts.Logger)}
}

// Resolve binds a Session to the given credential choice. A non-empty region
// overrides the profile's or environment's default region. An unknown named
// profile fails with *lambda_apigateway.ProfileNotFoundError before any
// network call.
func (r *Resolver) Resolve(ctx context.Context, cred Credential, region string) (*Session, error) {
	var loadOpts []func(*config.LoadOptions) error

	if cred.Ambient() {
		r.logger.Info("Using latest AWS credentials")
	} else {
		r.logger.WithField("profile", cred.Name()).Info("Using AWS profile")
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cred.Name()))
	}
	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}
	if r.opts.ConfigFiles != nil {
		loadOpts = append(loadOpts, config.WithSharedConfigFiles(r.opts.ConfigFiles))
	}
	if r.opts.CredentialsFiles != nil {
		loadOpts = append(loadOpts, config.WithSharedCredentialsFiles(r.opts.CredentialsFiles))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		var notExist config.SharedConfigProfileNotExistError
		if errors.As(err, &notExist) {
			r.logger.WithField("profile", cred.Name()).Error("AWS profile not found")
			return nil, &lambdaapi.ProfileNotFoundError{Profile: cred.Name()}
		}
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return &Session{
		Config:  cfg,
		Profile: cred.Name(),
		Region:  cfg.Region,
	}, nil
}

func ensureLogger(logger *logrus.Entry) *logrus.Entry {
	if logger != nil {
		return logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
