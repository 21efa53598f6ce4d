package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAPICmd(t *testing.T) {
	cmd := newGetAPICmd(testSettings())

	assert.Equal(t, "get-api", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("api-id"))
}

func TestGetAPICmd_RequiredFlags(t *testing.T) {
	cmd := newGetAPICmd(testSettings())
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api-id")
}

func TestOrNA(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "N/A"},
		{"REGIONAL", "REGIONAL"},
		{"N/A", "N/A"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, orNA(tt.in))
	}
}
