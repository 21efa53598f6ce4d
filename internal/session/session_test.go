package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lambdaapi "github.com/lex00/lambda-apigateway-go"
)

func TestCredential(t *testing.T) {
	tests := []struct {
		name     string
		cred     Credential
		ambient  bool
		credName string
		display  string
	}{
		{
			name:     "ambient",
			cred:     AmbientCredential(),
			ambient:  true,
			credName: "",
			display:  "ambient",
		},
		{
			name:     "named",
			cred:     NamedCredential("dev"),
			ambient:  false,
			credName: "dev",
			display:  "dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ambient, tt.cred.Ambient())
			assert.Equal(t, tt.credName, tt.cred.Name())
			assert.Equal(t, tt.display, tt.cred.String())
		})
	}
}

// scrubAWSEnv clears the AWS environment variables that would otherwise leak
// into shared-config resolution.
func scrubAWSEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"AWS_REGION", "AWS_DEFAULT_REGION", "AWS_PROFILE"} {
		t.Setenv(key, "")
	}
}

func writeConfigFiles(t *testing.T, configBody, credentialsBody string) Options {
	t.Helper()
	dir := t.TempDir()

	configFile := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(configFile, []byte(configBody), 0o600))

	credentialsFile := filepath.Join(dir, "credentials")
	require.NoError(t, os.WriteFile(credentialsFile, []byte(credentialsBody), 0o600))

	return Options{
		ConfigFiles:      []string{configFile},
		CredentialsFiles: []string{credentialsFile},
	}
}

func TestResolver_Resolve_NamedProfile(t *testing.T) {
	scrubAWSEnv(t)

	opts := writeConfigFiles(t, `[profile test-profile]
region = us-west-2
`, `[test-profile]
aws_access_key_id = AKIAEXAMPLE
aws_secret_access_key = secretexample
`)

	sess, err := NewResolver(opts).Resolve(context.Background(), NamedCredential("test-profile"), "")
	require.NoError(t, err)

	assert.Equal(t, "test-profile", sess.Profile)
	assert.Equal(t, "us-west-2", sess.Region)
	assert.Equal(t, "us-west-2", sess.Config.Region)
}

func TestResolver_Resolve_RegionOverride(t *testing.T) {
	scrubAWSEnv(t)

	opts := writeConfigFiles(t, `[profile test-profile]
region = us-west-2
`, `[test-profile]
aws_access_key_id = AKIAEXAMPLE
aws_secret_access_key = secretexample
`)

	sess, err := NewResolver(opts).Resolve(context.Background(), NamedCredential("test-profile"), "eu-central-1")
	require.NoError(t, err)

	assert.Equal(t, "eu-central-1", sess.Region)
}

func TestResolver_Resolve_UnknownProfile(t *testing.T) {
	scrubAWSEnv(t)

	opts := writeConfigFiles(t, `[profile test-profile]
region = us-west-2
`, "")

	_, err := NewResolver(opts).Resolve(context.Background(), NamedCredential("non-existent"), "")
	require.Error(t, err)

	var notFound *lambdaapi.ProfileNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "non-existent", notFound.Profile)
}

func TestResolver_Resolve_AmbientIgnoresProfiles(t *testing.T) {
	scrubAWSEnv(t)

	// The ambient credential must bind the default chain, not any stored
	// profile, so the default section's region wins.
	opts := writeConfigFiles(t, `[default]
region = us-east-1

[profile other]
region = eu-west-1
`, `[default]
aws_access_key_id = AKIAEXAMPLE
aws_secret_access_key = secretexample
`)

	sess, err := NewResolver(opts).Resolve(context.Background(), AmbientCredential(), "")
	require.NoError(t, err)

	assert.Equal(t, "", sess.Profile)
	assert.Equal(t, "us-east-1", sess.Region)
}

func TestResolver_Resolve_AmbientRegionOverride(t *testing.T) {
	scrubAWSEnv(t)

	opts := writeConfigFiles(t, `[default]
region = us-east-1
`, "")

	sess, err := NewResolver(opts).Resolve(context.Background(), AmbientCredential(), "ap-southeast-2")
	require.NoError(t, err)

	assert.Equal(t, "ap-southeast-2", sess.Region)
}
