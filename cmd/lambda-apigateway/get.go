package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	lambdaapi "github.com/lex00/lambda-apigateway-go"
	"github.com/lex00/lambda-apigateway-go/internal/settings"
)

func newGetAPICmd(defaults *settings.Settings) *cobra.Command {
	var (
		apiID   string
		profile string
		region  string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "get-api",
		Short: "Get details of an API Gateway",
		Long: `Get the details of a single REST API by id.

Examples:
    lambda-apigateway get-api --api-id abc123
    lambda-apigateway get-api --api-id abc123 --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGetAPI(cmd.Context(), defaults, apiID, profile, region, output)
		},
	}

	cmd.Flags().StringVar(&apiID, "api-id", "", "ID of the API Gateway")
	cmd.Flags().StringVar(&profile, "profile", defaults.Profile, `AWS profile to use. Use "latest" for latest credentials`)
	cmd.Flags().StringVar(&region, "region", defaults.Region, "AWS region to use")
	cmd.Flags().StringVar(&output, "output", defaults.Output, "Output format: text or json")
	_ = cmd.MarkFlagRequired("api-id")

	return cmd
}

func runGetAPI(ctx context.Context, defaults *settings.Settings, apiID, profile, region, format string) error {
	integration, err := newIntegration(ctx, defaults, profile, region)
	if err != nil {
		return err
	}

	api, err := integration.Get(ctx, apiID)
	if err != nil {
		return err
	}

	return outputGetResult(api, format)
}

func outputGetResult(api *lambdaapi.APIDetail, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(api, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		fmt.Println("API Gateway Details:")
		fmt.Printf("  ID: %s\n", api.ID)
		fmt.Printf("  Name: %s\n", api.Name)
		fmt.Printf("  Description: %s\n", orNA(api.Description))
		fmt.Printf("  Created: %s\n", api.CreatedDate.Format(time.RFC3339))
		fmt.Printf("  API Key Source: %s\n", orNA(api.APIKeySource))
		fmt.Printf("  Endpoint Configuration: %s\n", orNA(strings.Join(api.EndpointTypes, ", ")))

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
