// Copyright (c) JFrog Ltd. (2025)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package v4

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"time"
)

// SigningKey is a derived, scope-bound HMAC key. Scope is the
// date/region/service/aws4_request string; Credential is the same scope
// qualified with the access key ID, as it appears in X-Amz-Credential.
// The key is derived per call and never cached here.
type SigningKey struct {
	Key        []byte
	Scope      string
	Credential string
}

// FormatTimestamp renders an instant in the compact SigV4 timestamp format.
// A zero instant means "now".
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(TimeFormat)
}

// DeriveSigning runs the SigV4 key-derivation chain
// (date -> region -> service -> aws4_request) for the given timestamp and
// credentials and returns the key together with its credential scope.
func DeriveSigning(timestamp string, creds Credentials) (SigningKey, error) {
	if !creds.HasKeys() {
		return SigningKey{}, fmt.Errorf("access key and secret key are required for signing")
	}
	if creds.ServiceName == "" {
		return SigningKey{}, fmt.Errorf("service name is required for signing")
	}
	if len(timestamp) < len(ShortTimeFormat) {
		return SigningKey{}, fmt.Errorf("invalid signing timestamp %q", timestamp)
	}
	shortDate := timestamp[:len(ShortTimeFormat)]
	if _, err := time.Parse(ShortTimeFormat, shortDate); err != nil {
		return SigningKey{}, fmt.Errorf("invalid signing timestamp %q: %w", timestamp, err)
	}

	region := creds.Region()
	key := SignString([]byte("AWS4"+creds.SecretKey), []byte(shortDate))
	key = SignString(key, []byte(region))
	key = SignString(key, []byte(creds.ServiceName))
	key = SignString(key, []byte(awsV4Request))

	scope := shortDate + "/" + region + "/" + creds.ServiceName + "/" + awsV4Request
	return SigningKey{
		Key:        key,
		Scope:      scope,
		Credential: creds.AccessKey + "/" + scope,
	}, nil
}

// SignString is the raw HMAC-SHA256 primitive shared by request signing,
// policy signing and chunk signing.
func SignString(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

func hashSHA256(data []byte) []byte {
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}
