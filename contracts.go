// Package lambda_apigateway provides Go types for wiring Amazon API Gateway
// REST endpoints to Lambda functions.
//
// The lambda-apigateway CLI drives an ordered sequence of control-plane calls
// (create REST API, attach resource/method/integration, grant invoke
// permission, deploy) and maps the responses into the flat result types
// defined here:
//
//	integration := gateway.New(gateway.Options{...})
//	result, err := integration.Create(ctx, "orders-api", "orders-fn", "Orders API")
//	fmt.Println(result.InvokeURL)
//
// Results marshal to the JSON shapes emitted by the CLI's --output json mode.
package lambda_apigateway

import "time"

// CreateResult is the JSON output from `lambda-apigateway create-api`.
// It describes the REST API, deployment, and invoke URL produced by a
// successful provisioning run.
type CreateResult struct {
	// APIID is the durable identity of the created REST API.
	APIID string `json:"api_id"`
	// APIName is the display name; it is not required to be unique.
	APIName string `json:"api_name"`
	// LambdaName is the integrated function's name.
	LambdaName string `json:"lambda_name"`
	// LambdaARN is the function ARN embedded in the integration.
	LambdaARN string `json:"lambda_arn"`
	// InvokeURL is the public URL of the deployed endpoint.
	InvokeURL string `json:"invoke_url"`
	// DeploymentID identifies the deployment bound to the stage.
	DeploymentID string `json:"deployment_id"`
	// Stage is the deployed stage name (always "prod").
	Stage string `json:"stage"`
}

// DeleteResult is the JSON output from `lambda-apigateway delete-api`.
type DeleteResult struct {
	Status string `json:"status"`
	APIID  string `json:"api_id"`
}

// APISummary is a single REST API in the `lambda-apigateway list-apis` output.
type APISummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedDate time.Time `json:"created_date"`
}

// APIDetail is the JSON output from `lambda-apigateway get-api`.
type APIDetail struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	CreatedDate   time.Time `json:"created_date"`
	APIKeySource  string    `json:"api_key_source,omitempty"`
	EndpointTypes []string  `json:"endpoint_types,omitempty"`
}

// TestInvokeResult is the JSON output from `lambda-apigateway test-invoke`.
// Fields carry the control plane's dry-run response unmodified.
type TestInvokeResult struct {
	Status  int32             `json:"status"`
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
	Log     string            `json:"log,omitempty"`
	Latency int64             `json:"latency_ms"`
}

// FunctionDescriptor identifies a Lambda function resolved from the function
// registry. It is fetched fresh on every provisioning call and never cached;
// the endpoint keeps no link to it after creation.
type FunctionDescriptor struct {
	Name string `json:"name"`
	ARN  string `json:"arn"`
	// Region the descriptor was resolved in.
	Region string `json:"region"`
	// AccountID is parsed from the ARN (field 4).
	AccountID string `json:"account_id"`
}

// ProfileInfo is the JSON output from `lambda-apigateway get-profile-info`.
type ProfileInfo struct {
	Profile   string `json:"profile"`
	AccountID string `json:"account_id"`
	UserID    string `json:"user_id"`
	ARN       string `json:"arn"`
	Region    string `json:"region"`
}
