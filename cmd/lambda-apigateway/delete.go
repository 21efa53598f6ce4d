package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	lambdaapi "github.com/lex00/lambda-apigateway-go"
	"github.com/lex00/lambda-apigateway-go/internal/settings"
)

func newDeleteAPICmd(defaults *settings.Settings) *cobra.Command {
	var (
		apiID   string
		profile string
		region  string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "delete-api",
		Short: "Delete an API Gateway",
		Long: `Delete a REST API by id. Deletion is immediate and permanent; the invoke
permission granted at create time stays on the Lambda function.

Examples:
    lambda-apigateway delete-api --api-id abc123`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteAPI(cmd.Context(), defaults, apiID, profile, region, output)
		},
	}

	cmd.Flags().StringVar(&apiID, "api-id", "", "ID of the API Gateway to delete")
	cmd.Flags().StringVar(&profile, "profile", defaults.Profile, `AWS profile to use. Use "latest" for latest credentials`)
	cmd.Flags().StringVar(&region, "region", defaults.Region, "AWS region to use")
	cmd.Flags().StringVar(&output, "output", defaults.Output, "Output format: text or json")
	_ = cmd.MarkFlagRequired("api-id")

	return cmd
}

func runDeleteAPI(ctx context.Context, defaults *settings.Settings, apiID, profile, region, format string) error {
	integration, err := newIntegration(ctx, defaults, profile, region)
	if err != nil {
		return err
	}

	result, err := integration.Delete(ctx, apiID)
	if err != nil {
		return err
	}

	return outputDeleteResult(result, format)
}

func outputDeleteResult(result *lambdaapi.DeleteResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		fmt.Printf("API Gateway %s deleted successfully!\n", result.APIID)

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
