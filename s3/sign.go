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

package s3

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"s3-request-signer/v4"
)

const (
	// ServiceName is the credential-scope service identifier.
	ServiceName = "s3"

	// ExpiresMax is the value injected as X-Amz-Expires when a presigned
	// request carries none: one week, the longest expiration the service
	// accepts. It is a default, not a ceiling; a caller-supplied value is
	// passed through untouched whatever its size.
	ExpiresMax = 604800

	// UnsignedPayload marks a payload as intentionally excluded from the
	// signature.
	UnsignedPayload = v4.UnsignedPayload

	// StreamingPayload marks the seed request of a chunked upload.
	StreamingPayload = v4.StreamingPayload
)

// Target, Request and Credentials are the v4 signer's shapes; aliased here so
// callers of this package need only one import.
type (
	Target      = v4.Target
	Request     = v4.Request
	Credentials = v4.Credentials
)

// TargetFromURL parses a raw URL string into a signable target.
func TargetFromURL(raw string) (*Target, error) {
	return v4.TargetFromURL(raw)
}

// TargetFromParts builds a signable target from pre-split components.
func TargetFromParts(host, path string, query url.Values) *Target {
	return v4.TargetFromParts(host, path, query)
}

// PayloadMode selects how the request payload enters the signature.
type PayloadMode int

const (
	// PayloadDefault signs the payload in header mode and leaves it
	// unsigned in query mode.
	PayloadDefault PayloadMode = iota

	// PayloadSigned always hashes and signs the payload.
	PayloadSigned

	// PayloadUnsigned always substitutes the unsigned-payload sentinel.
	PayloadUnsigned
)

// SignOptions configures one SignRequest or SignPolicy call.
type SignOptions struct {
	// Query switches to query-based (presigned URL) signing.
	Query bool

	// SetRequest writes the signing result back into the caller's request.
	// When false the caller's request, headers and query are never mutated.
	SetRequest bool

	// Payload overrides the per-mode payload signing default.
	Payload PayloadMode

	// Timestamp, when non-empty, is used verbatim as the signing timestamp.
	Timestamp string

	// Time is the signing instant when Timestamp is empty. Zero means now.
	Time time.Time
}

// S3SignerOptions is the canonicalization bundle the storage service
// requires: the request path enters the canonical request as sent (no dot
// segment normalization, no second escaping pass) and header-mode requests
// always carry X-Amz-Content-Sha256.
func S3SignerOptions() v4.SignerOptions {
	return v4.SignerOptions{
		DisablePathNormalization: true,
		DisableDoubleEscape:      true,
		AddContentSHAHeader:      true,
	}
}

// SignRequest signs an outgoing storage request and returns the authorization
// artifacts: header names to values in header mode, query parameter names to
// values in query mode, including any parameter this layer injected.
//
// In query mode a missing X-Amz-Expires is defaulted to ExpiresMax and the
// payload defaults to unsigned; in header mode the payload defaults to
// signed. An explicit opts.Payload wins over either default. Canonicalization
// follows S3SignerOptions, with extra options layered on top (caller wins).
//
// With opts.SetRequest the authorization lands in the caller's request
// (headers, or the full signed query string on the target, and a resolved
// host on a hostless target); without it the caller's request is untouched.
func SignRequest(creds Credentials, req *Request, opts SignOptions, extra ...v4.SignerOption) (map[string]string, error) {
	if req == nil || req.Target == nil {
		return nil, fmt.Errorf("request target is required for signing")
	}

	working := *req
	if !opts.SetRequest {
		working.Target = req.Target.Clone()
	}

	var injected url.Values
	if opts.Query {
		if working.Target.Query.Get(v4.AmzExpiresKey) == "" {
			injected = url.Values{v4.AmzExpiresKey: []string{strconv.Itoa(ExpiresMax)}}
		}
		working.Target = patchTarget(req.Target, injected, working.Target, opts.SetRequest)
	}

	unsigned := opts.Query
	switch opts.Payload {
	case PayloadSigned:
		unsigned = false
	case PayloadUnsigned:
		unsigned = true
	}
	if unsigned {
		working.PayloadHash = v4.UnsignedPayload
		working.Body = nil
	}

	if opts.SetRequest && !opts.Query {
		if req.Header == nil {
			req.Header = http.Header{}
		}
		working.Header = req.Header
	}

	if working.Target.Host == "" && creds.ServiceName == "" {
		creds.ServiceName = ServiceName
	}

	so := v4.ResolveOptions(S3SignerOptions(), extra...)
	so.Query = opts.Query
	so.SetRequest = opts.SetRequest
	so.Timestamp = opts.Timestamp
	so.Time = opts.Time

	result, err := v4.SignRequest(creds, &working, so)
	if err != nil {
		return nil, err
	}
	if injected != nil {
		result[v4.AmzExpiresKey] = injected.Get(v4.AmzExpiresKey)
	}
	return result, nil
}

// patchTarget merges extra query parameters into t, overwriting on key
// collision. The mutate flag is the sole observable control: when set, t is
// patched in place; when unset the returned target never aliases origin.
// A t that is already a private copy of origin is patched directly.
func patchTarget(origin *Target, extra url.Values, t *Target, mutate bool) *Target {
	if !mutate && t == origin {
		t = origin.Clone()
	}
	if len(extra) == 0 {
		return t
	}
	if t.Query == nil {
		t.Query = url.Values{}
	}
	for k, vs := range extra {
		t.Query[k] = append([]string(nil), vs...)
	}
	return t
}

// SignChunk signs one chunk of a streaming upload; see v4.SignChunk.
func SignChunk(key v4.SigningKey, timestamp, prevSignature string, chunk []byte) string {
	return v4.SignChunk(key, timestamp, prevSignature, chunk)
}
