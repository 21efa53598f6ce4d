package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lambdaapi "github.com/lex00/lambda-apigateway-go"
	"github.com/lex00/lambda-apigateway-go/internal/settings"
)

func testSettings() *settings.Settings {
	return &settings.Settings{Output: "text", LogLevel: "info"}
}

func TestNewCreateAPICmd(t *testing.T) {
	cmd := newCreateAPICmd(testSettings())

	assert.Equal(t, "create-api", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	for _, name := range []string{"api-name", "lambda-name", "description", "profile", "region", "output"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing --%s flag", name)
	}

	outputFlag := cmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "text", outputFlag.DefValue)
}

func TestNewCreateAPICmd_SettingsDefaults(t *testing.T) {
	cmd := newCreateAPICmd(&settings.Settings{Profile: "staging", Region: "eu-west-1", Output: "json"})

	assert.Equal(t, "staging", cmd.Flags().Lookup("profile").DefValue)
	assert.Equal(t, "eu-west-1", cmd.Flags().Lookup("region").DefValue)
	assert.Equal(t, "json", cmd.Flags().Lookup("output").DefValue)
}

func TestCreateAPICmd_RequiredFlags(t *testing.T) {
	cmd := newCreateAPICmd(testSettings())
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s)")
	assert.Contains(t, err.Error(), "api-name")
	assert.Contains(t, err.Error(), "lambda-name")
}

func TestOutputCreateResult_UnknownFormat(t *testing.T) {
	err := outputCreateResult(&lambdaapi.CreateResult{}, "xml")
	assert.EqualError(t, err, "unknown format: xml")
}
