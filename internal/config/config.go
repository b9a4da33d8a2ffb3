package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Credential sources a profile may name.
const (
	SourceStatic         = "static"
	SourceSecretsManager = "secrets-manager"
	SourceDefault        = "default"
)

// Profile is a signing profile read from a JSON or YAML file: where requests
// go, how long presigned URLs live, and where the signing keys come from.
type Profile struct {
	Region           string `json:"region" yaml:"region"`
	Service          string `json:"service,omitempty" yaml:"service,omitempty"`
	Endpoint         string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	ExpirySeconds    int    `json:"expirySeconds,omitempty" yaml:"expirySeconds,omitempty"`
	CredentialSource string `json:"credentialSource" yaml:"credentialSource"`

	// Static source fields.
	AccessKey    string `json:"accessKey,omitempty" yaml:"accessKey,omitempty"`
	SecretKey    string `json:"secretKey,omitempty" yaml:"secretKey,omitempty"`
	SessionToken string `json:"sessionToken,omitempty" yaml:"sessionToken,omitempty"`

	// Secrets Manager source field.
	SecretName string `json:"secretName,omitempty" yaml:"secretName,omitempty"`
}

// Load reads and validates a profile file in JSON or YAML format.
func Load(filePath string, isYaml bool) (*Profile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	var profile Profile
	if isYaml {
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", filePath, err)
		}
	} else {
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse JSON file %s: %w", filePath, err)
		}
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed for file %s: %w", filePath, err)
	}
	return &profile, nil
}

// Validate checks the fields the signing flow cannot default.
func (p *Profile) Validate() error {
	if p.Region == "" {
		return fmt.Errorf("missing required field in profile: region")
	}
	if p.ExpirySeconds < 0 {
		return fmt.Errorf("expirySeconds must not be negative, got %d", p.ExpirySeconds)
	}
	switch p.CredentialSource {
	case SourceStatic:
		if p.AccessKey == "" || p.SecretKey == "" {
			return fmt.Errorf("credentialSource static requires accessKey and secretKey")
		}
	case SourceSecretsManager:
		if p.SecretName == "" {
			return fmt.Errorf("credentialSource secrets-manager requires secretName")
		}
	case SourceDefault:
	default:
		return fmt.Errorf("credentialSource can only be set as static, secrets-manager or default however the current value is: %s", p.CredentialSource)
	}
	return nil
}
