package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	lambdaapi "github.com/lex00/lambda-apigateway-go"
)

func TestNewListAPIsCmd(t *testing.T) {
	cmd := newListAPIsCmd(testSettings())

	assert.Equal(t, "list-apis", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	for _, name := range []string{"profile", "region", "output"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing --%s flag", name)
	}
}

func TestOutputListResult_UnknownFormat(t *testing.T) {
	err := outputListResult([]lambdaapi.APISummary{}, "yaml")
	assert.EqualError(t, err, "unknown format: yaml")
}
