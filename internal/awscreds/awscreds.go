package awscreds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"s3-request-signer/internal/config"
	"s3-request-signer/internal/logger"
	"s3-request-signer/v4"
)

// Service bundles the HTTP client and logger the resolution flows share.
type Service struct {
	Client *http.Client
	Logger *logger.Logger
}

func NewService(client *http.Client, logs *logger.Logger) *Service {
	return &Service{
		Client: client,
		Logger: logs,
	}
}

// CredentialError reports which resolution step failed.
type CredentialError struct {
	Operation string
	Err       error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// secretPayload is the JSON document expected in a Secrets Manager secret:
// {"access-key": "...", "secret-key": "...", "session-token": "..."}.
type secretPayload struct {
	AccessKey    string `json:"access-key"`
	SecretKey    string `json:"secret-key"`
	SessionToken string `json:"session-token"`
}

// Resolve turns a signing profile into signer credentials using the source
// the profile names: static keys, a Secrets Manager secret, or the SDK's
// default credential chain.
func Resolve(ctx context.Context, s *Service, profile *config.Profile) (v4.Credentials, error) {
	if profile == nil {
		return v4.Credentials{}, fmt.Errorf("signing profile is required")
	}

	switch profile.CredentialSource {
	case config.SourceStatic:
		return fromStatic(ctx, s, profile)
	case config.SourceSecretsManager:
		return fromSecretsManager(ctx, s, profile)
	case config.SourceDefault, "":
		return fromDefaultChain(ctx, s, profile)
	}
	return v4.Credentials{}, fmt.Errorf("unknown credential source %q", profile.CredentialSource)
}

func fromStatic(ctx context.Context, s *Service, profile *config.Profile) (v4.Credentials, error) {
	s.Logger.Debug("resolving static credentials from profile")
	provider := credentials.NewStaticCredentialsProvider(profile.AccessKey, profile.SecretKey, profile.SessionToken)
	creds, err := provider.Retrieve(ctx)
	if err != nil {
		return v4.Credentials{}, &CredentialError{"static credential retrieval", err}
	}
	return convert(creds, profile), nil
}

func fromSecretsManager(ctx context.Context, s *Service, profile *config.Profile) (v4.Credentials, error) {
	s.Logger.Info("fetching signing keys from secret " + profile.SecretName)

	cfg, err := loadConfig(ctx, s, profile)
	if err != nil {
		return v4.Credentials{}, &CredentialError{"load AWS config", err}
	}

	svc := secretsmanager.NewFromConfig(cfg)
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(profile.SecretName),
	}
	result, err := svc.GetSecretValue(ctx, input)
	if err != nil {
		s.Logger.Error(fmt.Sprintf("error getting the secret %s from secret manager: %s", profile.SecretName, err))
		return v4.Credentials{}, &CredentialError{"get secret value", err}
	}
	if result.SecretString == nil {
		return v4.Credentials{}, &CredentialError{"get secret value", fmt.Errorf("secret %s has no string value", profile.SecretName)}
	}

	var payload secretPayload
	if err := json.Unmarshal([]byte(*result.SecretString), &payload); err != nil {
		s.Logger.Error("secret value has the wrong format, expected {\"access-key\":\"...\",\"secret-key\":\"...\"}")
		return v4.Credentials{}, &CredentialError{"parse secret value", err}
	}
	if payload.AccessKey == "" || payload.SecretKey == "" {
		return v4.Credentials{}, &CredentialError{"parse secret value", fmt.Errorf("secret %s is missing access-key or secret-key", profile.SecretName)}
	}

	return convert(aws.Credentials{
		AccessKeyID:     payload.AccessKey,
		SecretAccessKey: payload.SecretKey,
		SessionToken:    payload.SessionToken,
	}, profile), nil
}

func fromDefaultChain(ctx context.Context, s *Service, profile *config.Profile) (v4.Credentials, error) {
	s.Logger.Debug("resolving credentials from the default chain")

	cfg, err := loadConfig(ctx, s, profile)
	if err != nil {
		return v4.Credentials{}, &CredentialError{"load AWS config", err}
	}
	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return v4.Credentials{}, &CredentialError{"default chain retrieval", err}
	}
	return convert(creds, profile), nil
}

func loadConfig(ctx context.Context, s *Service, profile *config.Profile) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithHTTPClient(s.Client),
	}
	if profile.Region != "" {
		opts = append(opts, awsconfig.WithRegion(profile.Region))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

func convert(creds aws.Credentials, profile *config.Profile) v4.Credentials {
	return v4.Credentials{
		AccessKey:    creds.AccessKeyID,
		SecretKey:    creds.SecretAccessKey,
		SessionToken: creds.SessionToken,
		ServiceName:  profile.Service,
		RegionName:   profile.Region,
	}
}
