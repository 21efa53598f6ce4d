package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileInfoCmd(t *testing.T) {
	cmd := newProfileInfoCmd(testSettings())

	assert.Equal(t, "get-profile-info", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	profileFlag := cmd.Flags().Lookup("profile")
	require.NotNil(t, profileFlag)
	assert.Equal(t, "AWS profile to get info for", profileFlag.Usage)

	// No region flag: the profile's own region is reported.
	assert.Nil(t, cmd.Flags().Lookup("region"))
}

func TestNewListProfilesCmd(t *testing.T) {
	cmd := newListProfilesCmd(testSettings())

	assert.Equal(t, "list-profiles", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("output"))
	assert.Nil(t, cmd.Flags().Lookup("profile"))
}
