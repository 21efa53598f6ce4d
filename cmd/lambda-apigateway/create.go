package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	lambdaapi "github.com/lex00/lambda-apigateway-go"
	"github.com/lex00/lambda-apigateway-go/internal/settings"
)

func newCreateAPICmd(defaults *settings.Settings) *cobra.Command {
	var (
		apiName     string
		lambdaName  string
		description string
		profile     string
		region      string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "create-api",
		Short: "Create an API Gateway endpoint that triggers a Lambda function",
		Long: `Create a REST API with a resource named after the Lambda function, wire a POST
method to the function, grant the invoke permission, and deploy the prod stage.

Examples:
    lambda-apigateway create-api --api-name my-api --lambda-name my-fn
    lambda-apigateway create-api --api-name my-api --lambda-name my-fn --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateAPI(cmd.Context(), defaults, apiName, lambdaName, description, profile, region, output)
		},
	}

	cmd.Flags().StringVar(&apiName, "api-name", "", "Name of the API Gateway to create")
	cmd.Flags().StringVar(&lambdaName, "lambda-name", "", "Name of the Lambda function to integrate with")
	cmd.Flags().StringVar(&description, "description", "", "Description of the API Gateway")
	cmd.Flags().StringVar(&profile, "profile", defaults.Profile, `AWS profile to use. Use "latest" for latest credentials`)
	cmd.Flags().StringVar(&region, "region", defaults.Region, "AWS region to use")
	cmd.Flags().StringVar(&output, "output", defaults.Output, "Output format: text or json")
	_ = cmd.MarkFlagRequired("api-name")
	_ = cmd.MarkFlagRequired("lambda-name")

	return cmd
}

func runCreateAPI(ctx context.Context, defaults *settings.Settings, apiName, lambdaName, description, profile, region, format string) error {
	integration, err := newIntegration(ctx, defaults, profile, region)
	if err != nil {
		return err
	}

	result, err := integration.Create(ctx, apiName, lambdaName, description)
	if err != nil {
		return err
	}

	return outputCreateResult(result, format)
}

func outputCreateResult(result *lambdaapi.CreateResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		fmt.Println("API Gateway created successfully!")
		fmt.Printf("API ID: %s\n", result.APIID)
		fmt.Printf("API Name: %s\n", result.APIName)
		fmt.Printf("Lambda Function: %s\n", result.LambdaName)
		fmt.Printf("Lambda ARN: %s\n", result.LambdaARN)
		fmt.Printf("Invoke URL: %s\n", result.InvokeURL)
		fmt.Printf("Stage: %s\n", result.Stage)

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
