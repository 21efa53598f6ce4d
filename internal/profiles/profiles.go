// Package profiles inspects locally configured AWS profiles.
//
// Listing reads the shared config and credentials files directly and never
// touches the network. Identity lookups resolve the profile's credentials and
// ask STS who they belong to.
package profiles

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	lambdaapi "github.com/lex00/lambda-apigateway-go"
	"github.com/lex00/lambda-apigateway-go/internal/session"
)

// IdentityAPI is the subset of STS used by Manager. The real *sts.Client
// satisfies it.
type IdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Options configures a Manager. Zero values fall back to the standard shared
// file locations, a resolver built from the same logger, and an STS client
// built per lookup from the resolved credentials.
type Options struct {
	Logger          *logrus.Entry
	ConfigFile      string
	CredentialsFile string
	Resolver        *session.Resolver
	Identity        IdentityAPI
}

// Manager lists profiles and reports the identity behind them.
type Manager struct {
	logger          *logrus.Entry
	configFile      string
	credentialsFile string
	resolver        *session.Resolver
	identity        IdentityAPI
}

// NewManager creates a Manager.
func NewManager(opts Options) *Manager {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = session.NewResolver(session.Options{Logger: opts.Logger})
	}
	return &Manager{
		logger:          ensureLogger(opts.Logger),
		configFile:      opts.ConfigFile,
		credentialsFile: opts.CredentialsFile,
		resolver:        resolver,
		identity:        opts.Identity,
	}
}

// List returns the names of all profiles found in the shared config and
// credentials files, merged, deduplicated and sorted. Missing files are
// treated as empty, so a machine with no AWS setup lists zero profiles
// rather than failing.
func (m *Manager) List() ([]string, error) {
	names := map[string]struct{}{}

	cfg, err := ini.LooseLoad(m.configPath())
	if err != nil {
		return nil, fmt.Errorf("parsing aws config file: %w", err)
	}
	for _, section := range cfg.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		// Config sections are written as "profile <name>", except the
		// default profile which is plain "default".
		names[strings.TrimPrefix(name, "profile ")] = struct{}{}
	}

	creds, err := ini.LooseLoad(m.credentialsPath())
	if err != nil {
		return nil, fmt.Errorf("parsing aws credentials file: %w", err)
	}
	for _, section := range creds.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		names[name] = struct{}{}
	}

	list := make([]string, 0, len(names))
	for name := range names {
		list = append(list, name)
	}
	sort.Strings(list)

	m.logger.WithField("count", len(list)).Info("Found AWS profiles")
	return list, nil
}

// Info resolves the credential and reports the caller identity behind it.
// The ambient credential is reported under the label "default".
func (m *Manager) Info(ctx context.Context, cred session.Credential) (*lambdaapi.ProfileInfo, error) {
	label := cred.Name()
	if label == "" {
		label = "default"
	}
	m.logger.WithField("profile", label).Info("Getting profile information")

	sess, err := m.resolver.Resolve(ctx, cred, "")
	if err != nil {
		return nil, err
	}

	identity := m.identity
	if identity == nil {
		identity = sts.NewFromConfig(sess.Config)
	}

	out, err := identity.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("getting caller identity: %w", err)
	}

	return &lambdaapi.ProfileInfo{
		Profile:   label,
		AccountID: aws.ToString(out.Account),
		UserID:    aws.ToString(out.UserId),
		ARN:       aws.ToString(out.Arn),
		Region:    sess.Region,
	}, nil
}

func (m *Manager) configPath() string {
	if m.configFile != "" {
		return m.configFile
	}
	if env := os.Getenv("AWS_CONFIG_FILE"); env != "" {
		return env
	}
	return config.DefaultSharedConfigFilename()
}

func (m *Manager) credentialsPath() string {
	if m.credentialsFile != "" {
		return m.credentialsFile
	}
	if env := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); env != "" {
		return env
	}
	return config.DefaultSharedCredentialsFilename()
}

func ensureLogger(logger *logrus.Entry) *logrus.Entry {
	if logger != nil {
		return logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
