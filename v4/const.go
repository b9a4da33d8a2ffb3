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

const (
	// SigningAlgorithm is the SigV4 signing algorithm identifier.
	SigningAlgorithm = "AWS4-HMAC-SHA256"

	// TimeFormat is the time format used in the X-Amz-Date header or query
	// parameter, YYYYMMDD'T'HHMMSS'Z'.
	TimeFormat = "20060102T150405Z"

	// ShortTimeFormat is the date-only format used in the credential scope.
	ShortTimeFormat = "20060102"

	// EmptyStringSHA256 is the hex encoded SHA256 hash of an empty string.
	EmptyStringSHA256 = `e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855`

	// UnsignedPayload is the sentinel that stands in for the payload hash in
	// the canonical request when the body is intentionally not signed.
	UnsignedPayload = "UNSIGNED-PAYLOAD"

	// StreamingPayload marks a request whose body is signed chunk by chunk
	// with SignChunk rather than hashed up front.
	StreamingPayload = "STREAMING-AWS4-HMAC-SHA256-PAYLOAD"

	// DefaultRegion is used when credentials carry no region of their own.
	DefaultRegion = "us-east-1"

	// AuthorizationHeader carries the signature in header-based signing.
	AuthorizationHeader = "Authorization"

	// AmzAlgorithmKey indicates the signing algorithm.
	AmzAlgorithmKey = "X-Amz-Algorithm"

	// AmzDateKey is the UTC timestamp for the request.
	AmzDateKey = "X-Amz-Date"

	// AmzExpiresKey is how long a presigned URL stays valid, in seconds
	// counted from X-Amz-Date.
	AmzExpiresKey = "X-Amz-Expires"

	// AmzCredentialKey is the access key ID and credential scope.
	AmzCredentialKey = "X-Amz-Credential"

	// AmzSignedHeadersKey is the set of headers covered by the signature.
	AmzSignedHeadersKey = "X-Amz-SignedHeaders"

	// AmzSignatureKey is the query parameter carrying the SigV4 signature.
	AmzSignatureKey = "X-Amz-Signature"

	// AmzSecurityTokenKey carries the session token when signing with
	// temporary credentials.
	AmzSecurityTokenKey = "X-Amz-Security-Token"

	// AmzContentSHAKey is the SHA256 of the request body.
	AmzContentSHAKey = "X-Amz-Content-Sha256"

	awsV4Request = "aws4_request"
)
