package awscreds

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"s3-request-signer/internal/config"
	"s3-request-signer/internal/logger"
)

func testService(t *testing.T) *Service {
	t.Helper()
	logs, err := logger.NewLogger()
	require.NoError(t, err)
	return NewService(&http.Client{Timeout: time.Second}, logs)
}

func TestResolveStatic(t *testing.T) {
	profile := &config.Profile{
		Region:           "eu-west-1",
		Service:          "s3",
		CredentialSource: config.SourceStatic,
		AccessKey:        "AKIDEXAMPLE",
		SecretKey:        "secret",
		SessionToken:     "token",
	}

	creds, err := Resolve(context.Background(), testService(t), profile)
	require.NoError(t, err)
	assert.Equal(t, "AKIDEXAMPLE", creds.AccessKey)
	assert.Equal(t, "secret", creds.SecretKey)
	assert.Equal(t, "token", creds.SessionToken)
	assert.Equal(t, "s3", creds.ServiceName)
	assert.Equal(t, "eu-west-1", creds.RegionName)
}

func TestResolveErrors(t *testing.T) {
	_, err := Resolve(context.Background(), testService(t), nil)
	assert.Error(t, err, "nil profile")

	_, err = Resolve(context.Background(), testService(t), &config.Profile{
		Region:           "us-east-1",
		CredentialSource: "vault",
	})
	assert.Error(t, err, "unknown source")
}

func TestCredentialErrorUnwrap(t *testing.T) {
	inner := assert.AnError
	err := &CredentialError{Operation: "get secret value", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "get secret value")
}
