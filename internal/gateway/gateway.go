// Package gateway provisions API Gateway REST endpoints that trigger Lambda
// functions.
//
// Every operation is a one-shot request/response against the control plane;
// no state is tracked locally between calls. Create drives the ordered
// provisioning sequence and aborts at the first failure without undoing prior
// steps, so a partially created endpoint can be left behind for the caller to
// clean up with Delete.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	apitypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"

	lambdaapi "github.com/lex00/lambda-apigateway-go"
	"github.com/lex00/lambda-apigateway-go/internal/session"
)

// StageName is the fixed stage every created endpoint deploys to.
const StageName = "prod"

const (
	httpMethod        = "POST"
	authorizationNone = "NONE"
	invokeAction      = "lambda:InvokeFunction"
	invokePrincipal   = "apigateway.amazonaws.com"
)

// GatewayAPI is the subset of the API Gateway control plane used by
// Integration. The real *apigateway.Client satisfies it.
type GatewayAPI interface {
	CreateRestApi(ctx context.Context, params *apigateway.CreateRestApiInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateRestApiOutput, error)
	GetResources(ctx context.Context, params *apigateway.GetResourcesInput, optFns ...func(*apigateway.Options)) (*apigateway.GetResourcesOutput, error)
	CreateResource(ctx context.Context, params *apigateway.CreateResourceInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateResourceOutput, error)
	PutMethod(ctx context.Context, params *apigateway.PutMethodInput, optFns ...func(*apigateway.Options)) (*apigateway.PutMethodOutput, error)
	PutIntegration(ctx context.Context, params *apigateway.PutIntegrationInput, optFns ...func(*apigateway.Options)) (*apigateway.PutIntegrationOutput, error)
	PutMethodResponse(ctx context.Context, params *apigateway.PutMethodResponseInput, optFns ...func(*apigateway.Options)) (*apigateway.PutMethodResponseOutput, error)
	PutIntegrationResponse(ctx context.Context, params *apigateway.PutIntegrationResponseInput, optFns ...func(*apigateway.Options)) (*apigateway.PutIntegrationResponseOutput, error)
	CreateDeployment(ctx context.Context, params *apigateway.CreateDeploymentInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateDeploymentOutput, error)
	DeleteRestApi(ctx context.Context, params *apigateway.DeleteRestApiInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteRestApiOutput, error)
	GetRestApis(ctx context.Context, params *apigateway.GetRestApisInput, optFns ...func(*apigateway.Options)) (*apigateway.GetRestApisOutput, error)
	GetRestApi(ctx context.Context, params *apigateway.GetRestApiInput, optFns ...func(*apigateway.Options)) (*apigateway.GetRestApiOutput, error)
	TestInvokeMethod(ctx context.Context, params *apigateway.TestInvokeMethodInput, optFns ...func(*apigateway.Options)) (*apigateway.TestInvokeMethodOutput, error)
}

// FunctionsAPI is the subset of the Lambda control plane used by Integration.
// The real *lambda.Client satisfies it.
type FunctionsAPI interface {
	GetFunction(ctx context.Context, params *lambda.GetFunctionInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error)
	AddPermission(ctx context.Context, params *lambda.AddPermissionInput, optFns ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error)
}

// Options configures an Integration.
type Options struct {
	// Gateway and Functions are the control-plane clients.
	Gateway   GatewayAPI
	Functions FunctionsAPI
	// Region scopes created endpoints and the URIs derived from them.
	Region string
	// Logger receives operation milestones. A discarding logger is used
	// when nil.
	Logger *logrus.Entry
}

// Integration creates and manages API Gateway endpoints bound to Lambda
// functions. All operations are synchronous, one control-plane call at a
// time, with no retries.
type Integration struct {
	gateway   GatewayAPI
	functions FunctionsAPI
	region    string
	logger    *logrus.Entry
	now       func() time.Time
}

// New creates an Integration from explicit clients.
func New(opts Options) *Integration {
	return &Integration{
		gateway:   opts.Gateway,
		functions: opts.Functions,
		region:    opts.Region,
		logger:    ensureLogger(opts.Logger),
		now:       time.Now,
	}
}

// FromSession creates an Integration whose clients are built from a resolved
// session.
func FromSession(sess *session.Session, logger *logrus.Entry) *Integration {
	return New(Options{
		Gateway:   apigateway.NewFromConfig(sess.Config),
		Functions: lambda.NewFromConfig(sess.Config),
		Region:    sess.Region,
		Logger:    logger,
	})
}

// Create provisions a REST API that triggers the named Lambda function and
// deploys it to the "prod" stage. Steps run in order and the first failure
// aborts the run; already-created resources are not rolled back.
//
// The function is resolved before any gateway resource is created, so an
// unknown function name fails with *lambda_apigateway.FunctionNotFoundError
// and leaves nothing behind.
func (i *Integration) Create(ctx context.Context, apiName, lambdaName, description string) (*lambdaapi.CreateResult, error) {
	fn, err := i.lookupFunction(ctx, lambdaName)
	if err != nil {
		return nil, err
	}

	i.logger.WithFields(logrus.Fields{
		"api_name":    apiName,
		"lambda_name": lambdaName,
	}).Info("Creating API Gateway")

	api, err := i.gateway.CreateRestApi(ctx, &apigateway.CreateRestApiInput{
		Name:        aws.String(apiName),
		Description: aws.String(description),
		EndpointConfiguration: &apitypes.EndpointConfiguration{
			Types: []apitypes.EndpointType{apitypes.EndpointTypeRegional},
		},
	})
	if err != nil {
		return nil, i.fail("creating rest api", err)
	}
	apiID := aws.ToString(api.Id)

	rootID, err := i.rootResourceID(ctx, apiID)
	if err != nil {
		return nil, err
	}

	resource, err := i.gateway.CreateResource(ctx, &apigateway.CreateResourceInput{
		RestApiId: aws.String(apiID),
		ParentId:  aws.String(rootID),
		PathPart:  aws.String(lambdaName),
	})
	if err != nil {
		return nil, i.fail("creating resource", err)
	}
	resourceID := aws.ToString(resource.Id)

	_, err = i.gateway.PutMethod(ctx, &apigateway.PutMethodInput{
		RestApiId:         aws.String(apiID),
		ResourceId:        aws.String(resourceID),
		HttpMethod:        aws.String(httpMethod),
		AuthorizationType: aws.String(authorizationNone),
	})
	if err != nil {
		return nil, i.fail("putting method", err)
	}

	_, err = i.gateway.PutIntegration(ctx, &apigateway.PutIntegrationInput{
		RestApiId:             aws.String(apiID),
		ResourceId:            aws.String(resourceID),
		HttpMethod:            aws.String(httpMethod),
		Type:                  apitypes.IntegrationTypeAws,
		IntegrationHttpMethod: aws.String(httpMethod),
		Uri:                   aws.String(integrationURI(i.region, fn.ARN)),
	})
	if err != nil {
		return nil, i.fail("putting integration", err)
	}

	_, err = i.gateway.PutMethodResponse(ctx, &apigateway.PutMethodResponseInput{
		RestApiId:      aws.String(apiID),
		ResourceId:     aws.String(resourceID),
		HttpMethod:     aws.String(httpMethod),
		StatusCode:     aws.String("200"),
		ResponseModels: map[string]string{"application/json": "Empty"},
	})
	if err != nil {
		return nil, i.fail("putting method response", err)
	}

	_, err = i.gateway.PutIntegrationResponse(ctx, &apigateway.PutIntegrationResponseInput{
		RestApiId:         aws.String(apiID),
		ResourceId:        aws.String(resourceID),
		HttpMethod:        aws.String(httpMethod),
		StatusCode:        aws.String("200"),
		ResponseTemplates: map[string]string{"application/json": ""},
	})
	if err != nil {
		return nil, i.fail("putting integration response", err)
	}

	if err := i.addInvokePermission(ctx, lambdaName, sourceARN(i.region, fn.AccountID, apiID, lambdaName)); err != nil {
		return nil, err
	}

	deployment, err := i.gateway.CreateDeployment(ctx, &apigateway.CreateDeploymentInput{
		RestApiId: aws.String(apiID),
		StageName: aws.String(StageName),
	})
	if err != nil {
		return nil, i.fail("creating deployment", err)
	}

	return &lambdaapi.CreateResult{
		APIID:        apiID,
		APIName:      apiName,
		LambdaName:   lambdaName,
		LambdaARN:    fn.ARN,
		InvokeURL:    fmt.Sprintf("https://%s.execute-api.%s.amazonaws.com/%s/%s", apiID, i.region, StageName, lambdaName),
		DeploymentID: aws.ToString(deployment.Id),
		Stage:        StageName,
	}, nil
}

// Delete removes a REST API. Deletion is immediate and permanent, and the
// invoke permission granted at create time is not revoked.
func (i *Integration) Delete(ctx context.Context, apiID string) (*lambdaapi.DeleteResult, error) {
	i.logger.WithField("api_id", apiID).Info("Deleting API Gateway")

	_, err := i.gateway.DeleteRestApi(ctx, &apigateway.DeleteRestApiInput{
		RestApiId: aws.String(apiID),
	})
	if err != nil {
		return nil, i.fail("deleting rest api", err)
	}

	return &lambdaapi.DeleteResult{Status: "deleted", APIID: apiID}, nil
}

// List returns summaries of all REST APIs in a single unpaginated call.
func (i *Integration) List(ctx context.Context) ([]lambdaapi.APISummary, error) {
	i.logger.Info("Listing API Gateways")

	out, err := i.gateway.GetRestApis(ctx, &apigateway.GetRestApisInput{})
	if err != nil {
		return nil, i.fail("listing rest apis", err)
	}

	summaries := make([]lambdaapi.APISummary, 0, len(out.Items))
	for _, item := range out.Items {
		summaries = append(summaries, lambdaapi.APISummary{
			ID:          aws.ToString(item.Id),
			Name:        aws.ToString(item.Name),
			Description: aws.ToString(item.Description),
			CreatedDate: aws.ToTime(item.CreatedDate),
		})
	}
	return summaries, nil
}

// Get returns the details of a single REST API.
func (i *Integration) Get(ctx context.Context, apiID string) (*lambdaapi.APIDetail, error) {
	i.logger.WithField("api_id", apiID).Info("Getting API Gateway")

	out, err := i.gateway.GetRestApi(ctx, &apigateway.GetRestApiInput{
		RestApiId: aws.String(apiID),
	})
	if err != nil {
		return nil, i.fail("getting rest api", err)
	}

	detail := &lambdaapi.APIDetail{
		ID:           aws.ToString(out.Id),
		Name:         aws.ToString(out.Name),
		Description:  aws.ToString(out.Description),
		CreatedDate:  aws.ToTime(out.CreatedDate),
		APIKeySource: string(out.ApiKeySource),
	}
	if out.EndpointConfiguration != nil {
		for _, endpointType := range out.EndpointConfiguration.Types {
			detail.EndpointTypes = append(detail.EndpointTypes, string(endpointType))
		}
	}
	return detail, nil
}

// TestInvoke issues a dry-run invocation of an endpoint through the control
// plane's test facility. The resource path must exactly match one of the
// API's resources; method and body default to POST and "{}".
func (i *Integration) TestInvoke(ctx context.Context, apiID, resourcePath, method, body string) (*lambdaapi.TestInvokeResult, error) {
	if method == "" {
		method = httpMethod
	}
	if body == "" {
		body = "{}"
	}

	resourceID, err := i.resourceID(ctx, apiID, resourcePath)
	if err != nil {
		return nil, err
	}

	i.logger.WithFields(logrus.Fields{
		"api_id":        apiID,
		"resource_path": resourcePath,
	}).Info("Test invoking API Gateway")

	out, err := i.gateway.TestInvokeMethod(ctx, &apigateway.TestInvokeMethodInput{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
		HttpMethod: aws.String(method),
		Body:       aws.String(body),
	})
	if err != nil {
		return nil, i.fail("test invoking method", err)
	}

	return &lambdaapi.TestInvokeResult{
		Status:  out.Status,
		Body:    aws.ToString(out.Body),
		Headers: out.Headers,
		Log:     aws.ToString(out.Log),
		Latency: out.Latency,
	}, nil
}

// lookupFunction resolves the target function to a descriptor. This is the
// only locally classified error in the create sequence: a missing function
// maps to *lambda_apigateway.FunctionNotFoundError.
func (i *Integration) lookupFunction(ctx context.Context, name string) (*lambdaapi.FunctionDescriptor, error) {
	i.logger.WithField("lambda_name", name).Info("Getting Lambda function")

	out, err := i.functions.GetFunction(ctx, &lambda.GetFunctionInput{
		FunctionName: aws.String(name),
	})
	if err != nil {
		var notFound *lambdatypes.ResourceNotFoundException
		if errors.As(err, &notFound) {
			i.logger.WithField("lambda_name", name).Warn("Lambda function not found")
			return nil, &lambdaapi.FunctionNotFoundError{FunctionName: name}
		}
		return nil, i.fail("getting lambda function", err)
	}

	arn := aws.ToString(out.Configuration.FunctionArn)
	return &lambdaapi.FunctionDescriptor{
		Name:      name,
		ARN:       arn,
		Region:    i.region,
		AccountID: accountFromARN(arn),
	}, nil
}

// addInvokePermission grants the gateway's service principal invoke rights on
// the function, scoped to srcARN. The statement id embeds the current unix
// time.
func (i *Integration) addInvokePermission(ctx context.Context, lambdaName, srcARN string) error {
	i.logger.WithField("lambda_name", lambdaName).Info("Adding Lambda permission")

	_, err := i.functions.AddPermission(ctx, &lambda.AddPermissionInput{
		FunctionName: aws.String(lambdaName),
		StatementId:  aws.String(fmt.Sprintf("apigateway-%d", i.now().Unix())),
		Action:       aws.String(invokeAction),
		Principal:    aws.String(invokePrincipal),
		SourceArn:    aws.String(srcARN),
	})
	if err != nil {
		return i.fail("adding lambda permission", err)
	}
	return nil
}

// rootResourceID finds the implicit root path node of a freshly created API.
func (i *Integration) rootResourceID(ctx context.Context, apiID string) (string, error) {
	out, err := i.gateway.GetResources(ctx, &apigateway.GetResourcesInput{
		RestApiId: aws.String(apiID),
	})
	if err != nil {
		return "", i.fail("getting resources", err)
	}
	for _, item := range out.Items {
		if aws.ToString(item.Path) == "/" {
			return aws.ToString(item.Id), nil
		}
	}
	return "", fmt.Errorf("root resource not found for api %s", apiID)
}

// resourceID finds the resource whose path exactly equals resourcePath,
// re-listing the API's resources on every call.
func (i *Integration) resourceID(ctx context.Context, apiID, resourcePath string) (string, error) {
	out, err := i.gateway.GetResources(ctx, &apigateway.GetResourcesInput{
		RestApiId: aws.String(apiID),
	})
	if err != nil {
		return "", i.fail("getting resources", err)
	}
	for _, item := range out.Items {
		if aws.ToString(item.Path) == resourcePath {
			return aws.ToString(item.Id), nil
		}
	}
	return "", &lambdaapi.ResourceNotFoundError{APIID: apiID, Path: resourcePath}
}

// integrationURI builds the service URI that routes gateway requests into a
// Lambda invocation.
func integrationURI(region, functionARN string) string {
	return fmt.Sprintf("arn:aws:apigateway:%s:lambda:path/2015-03-31/functions/%s/invocations", region, functionARN)
}

// sourceARN scopes an invoke permission to the created API. Stage and method
// are wildcards.
func sourceARN(region, accountID, apiID, lambdaName string) string {
	return fmt.Sprintf("arn:aws:execute-api:%s:%s:%s/*/*/%s", region, accountID, apiID, lambdaName)
}

// accountFromARN extracts the account id (field 4) from an ARN like
// arn:aws:lambda:us-east-1:123456789012:function:name.
func accountFromARN(arn string) string {
	parts := strings.Split(arn, ":")
	if len(parts) < 5 {
		return ""
	}
	return parts[4]
}

// fail logs a control-plane failure, surfacing the service's own error code
// and message when the failure is a modeled API error, and wraps it with the
// originating operation's terminology.
func (i *Integration) fail(op string, err error) error {
	fields := logrus.Fields{}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields["error_code"] = apiErr.ErrorCode()
		fields["error_message"] = apiErr.ErrorMessage()
	}
	i.logger.WithFields(fields).WithError(err).Errorf("Error %s", op)
	return fmt.Errorf("%s: %w", op, err)
}

func ensureLogger(logger *logrus.Entry) *logrus.Entry {
	if logger != nil {
		return logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
