package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	lambdaapi "github.com/lex00/lambda-apigateway-go"
	"github.com/lex00/lambda-apigateway-go/internal/settings"
)

func newProfileInfoCmd(defaults *settings.Settings) *cobra.Command {
	var (
		profile string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "get-profile-info",
		Short: "Get information about an AWS profile",
		Long: `Resolve a profile's credentials and report the identity behind them.
Omit --profile to inspect the default credential chain.

Examples:
    lambda-apigateway get-profile-info
    lambda-apigateway get-profile-info --profile staging`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileInfo(cmd.Context(), defaults, profile, output)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", defaults.Profile, "AWS profile to get info for")
	cmd.Flags().StringVar(&output, "output", defaults.Output, "Output format: text or json")

	return cmd
}

func runProfileInfo(ctx context.Context, defaults *settings.Settings, profile, format string) error {
	info, err := newProfileManager(defaults).Info(ctx, credentialFor(profile))
	if err != nil {
		return err
	}

	return outputProfileInfoResult(info, format)
}

func outputProfileInfoResult(info *lambdaapi.ProfileInfo, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		fmt.Println("Profile Information:")
		fmt.Printf("  Profile: %s\n", info.Profile)
		fmt.Printf("  Account ID: %s\n", info.AccountID)
		fmt.Printf("  User ID: %s\n", info.UserID)
		fmt.Printf("  ARN: %s\n", info.ARN)
		fmt.Printf("  Region: %s\n", info.Region)

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
