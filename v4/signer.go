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
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/aws/smithy-go/encoding/httpbinding"
	"github.com/aws/smithy-go/logging"
)

const logSignInfoMsg = `request signature:
---[ CANONICAL REQUEST ]-----------------------------
%s
---[ STRING TO SIGN ]--------------------------------
%s
-----------------------------------------------------`

// SignRequest signs req with the SigV4 scheme and returns the produced
// authorization values: header names to values in header mode, query
// parameter names to values in query (presigned URL) mode, never both.
//
// The caller's request is only written to when opts.SetRequest is set; in
// that case the authorization headers land in req.Header, or the complete
// signed query string (including X-Amz-Signature) lands in req.Target.Query.
// With SetRequest unset the request and its containers are left untouched.
func SignRequest(creds Credentials, req *Request, opts SignerOptions) (map[string]string, error) {
	if req == nil || req.Target == nil {
		return nil, fmt.Errorf("request target is required for signing")
	}

	timestamp := opts.Timestamp
	if timestamp == "" {
		timestamp = FormatTimestamp(opts.Time)
	}
	signing, err := DeriveSigning(timestamp, creds)
	if err != nil {
		return nil, err
	}

	host := req.Target.Host
	if host == "" {
		host = creds.ServiceName + "." + creds.Region() + ".amazonaws.com"
		if opts.SetRequest {
			req.Target.Host = host
		}
	}

	payloadHash := req.PayloadHash
	if payloadHash == "" {
		if len(req.Body) == 0 {
			payloadHash = EmptyStringSHA256
		} else {
			payloadHash = hex.EncodeToString(hashSHA256(req.Body))
		}
	}

	if opts.Query {
		return signQuery(creds, req, opts, signing, timestamp, host, payloadHash)
	}
	return signHeaders(creds, req, opts, signing, timestamp, host, payloadHash)
}

func signQuery(creds Credentials, req *Request, opts SignerOptions, signing SigningKey, timestamp, host, payloadHash string) (map[string]string, error) {
	query := cloneValues(req.Target.Query)
	query.Set(AmzAlgorithmKey, SigningAlgorithm)
	query.Set(AmzCredentialKey, signing.Credential)
	query.Set(AmzDateKey, timestamp)
	if creds.SessionToken != "" {
		query.Set(AmzSecurityTokenKey, creds.SessionToken)
	} else {
		query.Del(AmzSecurityTokenKey)
	}

	result := map[string]string{
		AmzAlgorithmKey:  SigningAlgorithm,
		AmzCredentialKey: signing.Credential,
		AmzDateKey:       timestamp,
	}
	if creds.SessionToken != "" {
		result[AmzSecurityTokenKey] = creds.SessionToken
	}

	// Hoist eligible headers into the query string; everything else that is
	// not excluded from signing stays on the request and gets signed.
	signedHdr := http.Header{}
	for k, vs := range req.Header {
		name := http.CanonicalHeaderKey(k)
		if AllowedQueryHoisting.IsValid(name) {
			query[name] = append([]string(nil), vs...)
			result[name] = strings.Join(vs, ",")
			continue
		}
		if IgnoredHeaders.IsValid(name) {
			signedHdr[name] = vs
		}
	}

	signedNames, canonicalHeaders := buildCanonicalHeaders(host, signedHdr)
	query.Set(AmzSignedHeadersKey, signedNames)
	result[AmzSignedHeadersKey] = signedNames

	canonical := buildCanonicalRequest(req.Method, canonicalURI(req.Target.Path, opts), canonicalQueryString(query), canonicalHeaders, signedNames, payloadHash)
	stringToSign := buildStringToSign(timestamp, signing.Scope, canonical)
	signature := hex.EncodeToString(SignString(signing.Key, []byte(stringToSign)))
	result[AmzSignatureKey] = signature

	logSigning(opts, canonical, stringToSign)

	if opts.SetRequest {
		query.Set(AmzSignatureKey, signature)
		req.Target.Query = query
	}
	return result, nil
}

func signHeaders(creds Credentials, req *Request, opts SignerOptions, signing SigningKey, timestamp, host, payloadHash string) (map[string]string, error) {
	hdr := req.Header
	if opts.SetRequest {
		if req.Header == nil {
			req.Header = http.Header{}
		}
		hdr = req.Header
	} else {
		hdr = cloneHeader(req.Header)
	}

	hdr.Set(AmzDateKey, timestamp)
	result := map[string]string{AmzDateKey: timestamp}
	if creds.SessionToken != "" {
		hdr.Set(AmzSecurityTokenKey, creds.SessionToken)
		result[AmzSecurityTokenKey] = creds.SessionToken
	}
	if opts.AddContentSHAHeader {
		hdr.Set(AmzContentSHAKey, payloadHash)
		result[AmzContentSHAKey] = payloadHash
	}

	signedHdr := http.Header{}
	for k, vs := range hdr {
		name := http.CanonicalHeaderKey(k)
		if IgnoredHeaders.IsValid(name) {
			signedHdr[name] = vs
		}
	}

	signedNames, canonicalHeaders := buildCanonicalHeaders(host, signedHdr)
	canonical := buildCanonicalRequest(req.Method, canonicalURI(req.Target.Path, opts), canonicalQueryString(req.Target.Query), canonicalHeaders, signedNames, payloadHash)
	stringToSign := buildStringToSign(timestamp, signing.Scope, canonical)
	signature := hex.EncodeToString(SignString(signing.Key, []byte(stringToSign)))

	authorization := SigningAlgorithm + " Credential=" + signing.Credential +
		", SignedHeaders=" + signedNames + ", Signature=" + signature
	hdr.Set(AuthorizationHeader, authorization)
	result[AuthorizationHeader] = authorization

	logSigning(opts, canonical, stringToSign)

	return result, nil
}

func buildCanonicalRequest(method, uri, query, canonicalHeaders, signedNames, payloadHash string) string {
	return strings.Join([]string{
		method,
		uri,
		query,
		canonicalHeaders,
		signedNames,
		payloadHash,
	}, "\n")
}

func buildStringToSign(timestamp, scope, canonical string) string {
	return strings.Join([]string{
		SigningAlgorithm,
		timestamp,
		scope,
		hex.EncodeToString(hashSHA256([]byte(canonical))),
	}, "\n")
}

// buildCanonicalHeaders returns the sorted semicolon-joined signed header
// names and the canonical header block (one lower-cased `name:value` line
// per header, trailing newline included).
func buildCanonicalHeaders(host string, header http.Header) (signedNames, canonicalHeaders string) {
	names := []string{"host"}
	values := map[string][]string{"host": {host}}
	for k, vs := range header {
		name := strings.ToLower(k)
		if name == "host" {
			continue
		}
		if _, ok := values[name]; ok {
			values[name] = append(values[name], vs...)
			continue
		}
		names = append(names, name)
		values[name] = vs
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte(':')
		for i, v := range values[name] {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(StripExcessSpaces(v))
		}
		b.WriteByte('\n')
	}
	return strings.Join(names, ";"), b.String()
}

// canonicalQueryString renders the query multimap in canonical form: keys
// sorted, values sorted within a key, spaces as %20.
func canonicalQueryString(q url.Values) string {
	cp := cloneValues(q)
	for k := range cp {
		sort.Strings(cp[k])
	}
	return strings.ReplaceAll(cp.Encode(), "+", "%20")
}

func canonicalURI(p string, opts SignerOptions) string {
	uri := p
	if uri == "" {
		uri = "/"
	}
	if !opts.DisablePathNormalization {
		uri = normalizePath(uri)
	}
	if !opts.DisableDoubleEscape {
		uri = httpbinding.EscapePath(uri, false)
	}
	return uri
}

func normalizePath(p string) string {
	np := path.Clean(p)
	if strings.HasSuffix(p, "/") && !strings.HasSuffix(np, "/") {
		np += "/"
	}
	return np
}

func logSigning(opts SignerOptions, canonical, stringToSign string) {
	if !opts.LogSigning || opts.Logger == nil {
		return
	}
	opts.Logger.Logf(logging.Debug, logSignInfoMsg, canonical, stringToSign)
}
