package lambda_apigateway

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateResult_JSON(t *testing.T) {
	result := CreateResult{
		APIID:        "api123",
		APIName:      "demo-api",
		LambdaName:   "demo-fn",
		LambdaARN:    "arn:aws:lambda:us-east-1:123456789012:function:demo-fn",
		InvokeURL:    "https://api123.execute-api.us-east-1.amazonaws.com/prod/demo-fn",
		DeploymentID: "dep123",
		Stage:        "prod",
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "api123", parsed["api_id"])
	assert.Equal(t, "demo-api", parsed["api_name"])
	assert.Equal(t, "demo-fn", parsed["lambda_name"])
	assert.Equal(t, "arn:aws:lambda:us-east-1:123456789012:function:demo-fn", parsed["lambda_arn"])
	assert.Equal(t, "https://api123.execute-api.us-east-1.amazonaws.com/prod/demo-fn", parsed["invoke_url"])
	assert.Equal(t, "dep123", parsed["deployment_id"])
	assert.Equal(t, "prod", parsed["stage"])
}

func TestDeleteResult_JSON(t *testing.T) {
	result := DeleteResult{Status: "deleted", APIID: "api123"}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"deleted","api_id":"api123"}`, string(data))
}

func TestAPISummary_JSON(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	summary := APISummary{
		ID:          "api123",
		Name:        "demo-api",
		Description: "Demo API",
		CreatedDate: created,
	}

	data, err := json.Marshal(summary)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "api123", parsed["id"])
	assert.Equal(t, "demo-api", parsed["name"])
	assert.Equal(t, "Demo API", parsed["description"])
	assert.Equal(t, "2023-01-01T00:00:00Z", parsed["created_date"])
}

func TestAPIDetail_OmitsEmptyFields(t *testing.T) {
	detail := APIDetail{
		ID:          "api123",
		Name:        "demo-api",
		CreatedDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(detail)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.NotContains(t, parsed, "description")
	assert.NotContains(t, parsed, "api_key_source")
	assert.NotContains(t, parsed, "endpoint_types")
}

func TestTestInvokeResult_JSON(t *testing.T) {
	result := TestInvokeResult{
		Status:  200,
		Body:    `{"result":"success"}`,
		Headers: map[string]string{"Content-Type": "application/json"},
		Log:     "Execution log",
		Latency: 42,
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, float64(200), parsed["status"])
	assert.Equal(t, `{"result":"success"}`, parsed["body"])
	assert.Equal(t, float64(42), parsed["latency_ms"])
	assert.Equal(t, "Execution log", parsed["log"])

	headers := parsed["headers"].(map[string]any)
	assert.Equal(t, "application/json", headers["Content-Type"])
}

func TestFunctionDescriptor_Fields(t *testing.T) {
	fn := FunctionDescriptor{
		Name:      "demo-fn",
		ARN:       "arn:aws:lambda:us-east-1:123456789012:function:demo-fn",
		Region:    "us-east-1",
		AccountID: "123456789012",
	}

	assert.Equal(t, "demo-fn", fn.Name)
	assert.Equal(t, "arn:aws:lambda:us-east-1:123456789012:function:demo-fn", fn.ARN)
	assert.Equal(t, "us-east-1", fn.Region)
	assert.Equal(t, "123456789012", fn.AccountID)
}

func TestProfileInfo_JSON(t *testing.T) {
	info := ProfileInfo{
		Profile:   "dev",
		AccountID: "123456789012",
		UserID:    "AIDAEXAMPLE",
		ARN:       "arn:aws:iam::123456789012:user/test-user",
		Region:    "us-east-1",
	}

	data, err := json.Marshal(info)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "dev", parsed["profile"])
	assert.Equal(t, "123456789012", parsed["account_id"])
	assert.Equal(t, "AIDAEXAMPLE", parsed["user_id"])
	assert.Equal(t, "arn:aws:iam::123456789012:user/test-user", parsed["arn"])
	assert.Equal(t, "us-east-1", parsed["region"])
}
