package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lex00/lambda-apigateway-go/internal/settings"
)

func newListProfilesCmd(defaults *settings.Settings) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list-profiles",
		Short: "List all available AWS profiles",
		Long: `List the profiles configured in the shared AWS config and credentials files.
No network calls are made.

Examples:
    lambda-apigateway list-profiles
    lambda-apigateway list-profiles --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListProfiles(defaults, output)
		},
	}

	cmd.Flags().StringVar(&output, "output", defaults.Output, "Output format: text or json")

	return cmd
}

func runListProfiles(defaults *settings.Settings, format string) error {
	profiles, err := newProfileManager(defaults).List()
	if err != nil {
		return err
	}

	return outputProfilesResult(profiles, format)
}

func outputProfilesResult(profiles []string, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(profiles, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if len(profiles) == 0 {
			fmt.Println("No AWS profiles found.")
			return nil
		}

		fmt.Println("AWS Profiles:")
		for _, profile := range profiles {
			fmt.Printf("  %s\n", profile)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
