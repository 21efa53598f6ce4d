package lambda_apigateway

import "fmt"

// FunctionNotFoundError reports that the Lambda function targeted by a
// create-api run does not exist. It is returned before any gateway resource
// is created, so a bad function name never leaves orphaned resources behind.
type FunctionNotFoundError struct {
	// FunctionName is the name that failed to resolve.
	FunctionName string
}

func (e *FunctionNotFoundError) Error() string {
	return fmt.Sprintf("lambda function %q not found", e.FunctionName)
}

// ResourceNotFoundError reports that no resource under a REST API has a path
// exactly matching the requested one.
type ResourceNotFoundError struct {
	APIID string
	Path  string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Path)
}

// ProfileNotFoundError reports that a named AWS profile is not registered in
// the shared config files. Resolution fails before any network call is made.
type ProfileNotFoundError struct {
	Profile string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("aws profile not found: %s", e.Profile)
}
