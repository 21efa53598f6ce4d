// Command lambda-apigateway wires API Gateway REST endpoints to Lambda functions.
//
// Usage:
//
//	lambda-apigateway create-api --api-name my-api --lambda-name my-fn   Create and deploy an endpoint
//	lambda-apigateway list-apis                                          List REST APIs
//	lambda-apigateway test-invoke --api-id abc123 --resource-path /my-fn Test an endpoint
//	lambda-apigateway version                                            Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lex00/lambda-apigateway-go/internal/settings"
)

func main() {
	defaults, err := settings.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "lambda-apigateway",
		Short: "Create and manage API Gateway endpoints that trigger Lambda functions",
		Long: `lambda-apigateway creates API Gateway REST endpoints that trigger Lambda functions.

Create an API with a resource named after the function, a POST method
integrated with it, and a deployment to the prod stage:

    lambda-apigateway create-api --api-name my-api --lambda-name my-fn

Then exercise the endpoint without leaving the control plane:

    lambda-apigateway test-invoke --api-id abc123 --resource-path /my-fn`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		newCreateAPICmd(defaults),
		newDeleteAPICmd(defaults),
		newListAPIsCmd(defaults),
		newGetAPICmd(defaults),
		newTestInvokeCmd(defaults),
		newListProfilesCmd(defaults),
		newProfileInfoCmd(defaults),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lambda-apigateway %s\n", getVersion())
		},
	}
}
