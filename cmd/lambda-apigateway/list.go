package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	lambdaapi "github.com/lex00/lambda-apigateway-go"
	"github.com/lex00/lambda-apigateway-go/internal/settings"
)

func newListAPIsCmd(defaults *settings.Settings) *cobra.Command {
	var (
		profile string
		region  string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "list-apis",
		Short: "List all API Gateways",
		Long: `List every REST API in the region.

Examples:
    lambda-apigateway list-apis
    lambda-apigateway list-apis --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListAPIs(cmd.Context(), defaults, profile, region, output)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", defaults.Profile, `AWS profile to use. Use "latest" for latest credentials`)
	cmd.Flags().StringVar(&region, "region", defaults.Region, "AWS region to use")
	cmd.Flags().StringVar(&output, "output", defaults.Output, "Output format: text or json")

	return cmd
}

func runListAPIs(ctx context.Context, defaults *settings.Settings, profile, region, format string) error {
	integration, err := newIntegration(ctx, defaults, profile, region)
	if err != nil {
		return err
	}

	apis, err := integration.List(ctx)
	if err != nil {
		return err
	}

	return outputListResult(apis, format)
}

func outputListResult(apis []lambdaapi.APISummary, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(apis, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if len(apis) == 0 {
			fmt.Println("No API Gateways found.")
			return nil
		}

		fmt.Println("API Gateways:")
		for _, api := range apis {
			fmt.Printf("  ID: %s\n", api.ID)
			fmt.Printf("  Name: %s\n", api.Name)
			fmt.Printf("  Created: %s\n", api.CreatedDate.Format(time.RFC3339))
			fmt.Println()
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
