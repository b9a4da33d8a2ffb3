package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJSONProfile(t *testing.T) {
	path := writeProfile(t, "profile.json", `{
  "region": "eu-west-1",
  "service": "s3",
  "expirySeconds": 3600,
  "credentialSource": "static",
  "accessKey": "AKIDEXAMPLE",
  "secretKey": "secret"
}`)

	profile, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", profile.Region)
	assert.Equal(t, "s3", profile.Service)
	assert.Equal(t, 3600, profile.ExpirySeconds)
	assert.Equal(t, SourceStatic, profile.CredentialSource)
	assert.Equal(t, "AKIDEXAMPLE", profile.AccessKey)
}

func TestLoadYAMLProfile(t *testing.T) {
	path := writeProfile(t, "profile.yaml", `region: us-west-2
credentialSource: secrets-manager
secretName: signing-keys
`)

	profile, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", profile.Region)
	assert.Equal(t, SourceSecretsManager, profile.CredentialSource)
	assert.Equal(t, "signing-keys", profile.SecretName)
}

func TestLoadRejectsInvalidProfiles(t *testing.T) {
	cases := map[string]string{
		"missing region":       `{"credentialSource": "default"}`,
		"unknown source":       `{"region": "us-east-1", "credentialSource": "vault"}`,
		"static without keys":  `{"region": "us-east-1", "credentialSource": "static"}`,
		"secrets without name": `{"region": "us-east-1", "credentialSource": "secrets-manager"}`,
		"negative expiry":      `{"region": "us-east-1", "credentialSource": "default", "expirySeconds": -1}`,
		"malformed json":       `{"region": `,
	}
	for name, content := range cases {
		path := writeProfile(t, "bad.json", content)
		_, err := Load(path, false)
		assert.Error(t, err, name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"), false)
	assert.Error(t, err)
}
