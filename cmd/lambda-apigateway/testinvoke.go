package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	lambdaapi "github.com/lex00/lambda-apigateway-go"
	"github.com/lex00/lambda-apigateway-go/internal/settings"
)

func newTestInvokeCmd(defaults *settings.Settings) *cobra.Command {
	var (
		apiID        string
		resourcePath string
		httpMethod   string
		body         string
		profile      string
		region       string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "test-invoke",
		Short: "Test invoke an API Gateway endpoint",
		Long: `Invoke an endpoint through the control plane's test facility, without going
through the public invoke URL. The resource path must match exactly.

Examples:
    lambda-apigateway test-invoke --api-id abc123 --resource-path /my-fn
    lambda-apigateway test-invoke --api-id abc123 --resource-path /my-fn --body '{"name":"test"}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTestInvoke(cmd.Context(), defaults, apiID, resourcePath, httpMethod, body, profile, region, output)
		},
	}

	cmd.Flags().StringVar(&apiID, "api-id", "", "ID of the API Gateway")
	cmd.Flags().StringVar(&resourcePath, "resource-path", "", "Path of the resource to invoke")
	cmd.Flags().StringVar(&httpMethod, "http-method", "POST", "HTTP method to use")
	cmd.Flags().StringVar(&body, "body", "{}", "Request body as JSON string")
	cmd.Flags().StringVar(&profile, "profile", defaults.Profile, `AWS profile to use. Use "latest" for latest credentials`)
	cmd.Flags().StringVar(&region, "region", defaults.Region, "AWS region to use")
	cmd.Flags().StringVar(&output, "output", defaults.Output, "Output format: text or json")
	_ = cmd.MarkFlagRequired("api-id")
	_ = cmd.MarkFlagRequired("resource-path")

	return cmd
}

func runTestInvoke(ctx context.Context, defaults *settings.Settings, apiID, resourcePath, httpMethod, body, profile, region, format string) error {
	integration, err := newIntegration(ctx, defaults, profile, region)
	if err != nil {
		return err
	}

	result, err := integration.TestInvoke(ctx, apiID, resourcePath, httpMethod, body)
	if err != nil {
		return err
	}

	return outputTestInvokeResult(result, format)
}

func outputTestInvokeResult(result *lambdaapi.TestInvokeResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		fmt.Println("Test Invoke Result:")
		fmt.Printf("  Status: %d\n", result.Status)
		fmt.Printf("  Response Body: %s\n", orNA(result.Body))

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
