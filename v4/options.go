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
	"time"

	"github.com/aws/smithy-go/logging"
)

// SignerOptions configures one SignRequest call. The zero value is the
// built-in default: header-based signing, no request mutation, normalized
// and double-escaped canonical path, no content-hash header.
type SignerOptions struct {
	// Query switches to query-based (presigned URL) signing.
	Query bool

	// SetRequest writes the signing result back into the caller's request:
	// authorization headers in header mode, the full signed query string in
	// query mode. When false the caller's request is never mutated.
	SetRequest bool

	// Timestamp, when non-empty, is used verbatim as the signing timestamp.
	Timestamp string

	// Time is the signing instant when Timestamp is empty. Zero means now.
	Time time.Time

	// DisablePathNormalization keeps dot segments and duplicate slashes in
	// the canonical URI. S3 requires this.
	DisablePathNormalization bool

	// DisableDoubleEscape uses the request path exactly once-encoded in the
	// canonical URI instead of escaping it a second time. S3 requires this.
	DisableDoubleEscape bool

	// AddContentSHAHeader sets the X-Amz-Content-Sha256 header (and signs
	// it) in header mode. S3 requires this.
	AddContentSHAHeader bool

	// Logger receives the canonical request and string to sign when
	// LogSigning is set. Nil disables logging.
	Logger     logging.Logger
	LogSigning bool
}

// SignerOption mutates SignerOptions during ResolveOptions.
type SignerOption func(*SignerOptions)

// ResolveOptions layers opts over base, later options winning. This is the
// single place options precedence is decided: built-in zero value < base
// (per-service defaults) < caller-supplied options.
func ResolveOptions(base SignerOptions, opts ...SignerOption) SignerOptions {
	resolved := base
	for _, opt := range opts {
		if opt != nil {
			opt(&resolved)
		}
	}
	return resolved
}

// WithPathNormalization toggles canonical-path dot-segment normalization.
func WithPathNormalization(enabled bool) SignerOption {
	return func(o *SignerOptions) { o.DisablePathNormalization = !enabled }
}

// WithDoubleEscape toggles the second canonical-URI escaping pass.
func WithDoubleEscape(enabled bool) SignerOption {
	return func(o *SignerOptions) { o.DisableDoubleEscape = !enabled }
}

// WithContentSHAHeader toggles setting X-Amz-Content-Sha256 in header mode.
func WithContentSHAHeader(enabled bool) SignerOption {
	return func(o *SignerOptions) { o.AddContentSHAHeader = enabled }
}

// WithLogger routes signing debug output through l.
func WithLogger(l logging.Logger) SignerOption {
	return func(o *SignerOptions) { o.Logger = l }
}

// WithSigningLog enables logging of the canonical request and string to sign.
func WithSigningLog(enabled bool) SignerOption {
	return func(o *SignerOptions) { o.LogSigning = enabled }
}
