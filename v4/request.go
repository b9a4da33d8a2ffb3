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
	"net/http"
	"net/url"
	"strings"
)

// Target is the URL a request is signed against. Path holds the escaped
// form as it will be sent on the wire; Query is the parameter multimap.
// A Target is built once, at the API boundary, through TargetFromURL or
// TargetFromParts.
type Target struct {
	Scheme string
	Host   string
	Path   string
	Query  url.Values

	fromString bool
}

// TargetFromURL parses a raw URL string into a Target. The query string is
// decoded into the parameter multimap; a malformed URL or query propagates
// as a parse error.
func TargetFromURL(raw string) (*Target, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, err
	}
	return &Target{
		Scheme:     u.Scheme,
		Host:       u.Host,
		Path:       u.EscapedPath(),
		Query:      q,
		fromString: true,
	}, nil
}

// TargetFromParts builds a Target from pre-split components. The host may be
// empty, in which case the signer infers one from the credential scope.
// The query may be nil.
func TargetFromParts(host, path string, query url.Values) *Target {
	return &Target{
		Scheme: "https",
		Host:   host,
		Path:   path,
		Query:  query,
	}
}

// FromString reports whether the target was built from a raw URL string.
func (t *Target) FromString() bool {
	return t.fromString
}

// Clone returns a deep copy of the target with a fresh query container.
func (t *Target) Clone() *Target {
	cp := *t
	cp.Query = cloneValues(t.Query)
	return &cp
}

// String renders the target back into URL form.
func (t *Target) String() string {
	var b strings.Builder
	scheme := t.Scheme
	if scheme == "" {
		scheme = "https"
	}
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(t.Host)
	if t.Path == "" {
		b.WriteString("/")
	} else {
		if !strings.HasPrefix(t.Path, "/") {
			b.WriteString("/")
		}
		b.WriteString(t.Path)
	}
	if len(t.Query) > 0 {
		b.WriteString("?")
		b.WriteString(canonicalQueryString(t.Query))
	}
	return b.String()
}

// Request is the signable request shape. PayloadHash, when non-empty, is
// used verbatim as the canonical payload hash; this is how the
// UNSIGNED-PAYLOAD and streaming sentinels travel. Otherwise the hash is
// computed from Body (nil Body hashes as the empty string).
type Request struct {
	Method      string
	Target      *Target
	Header      http.Header
	Body        []byte
	PayloadHash string
}

func cloneValues(q url.Values) url.Values {
	cp := make(url.Values, len(q))
	for k, vs := range q {
		cp[k] = append([]string(nil), vs...)
	}
	return cp
}

func cloneHeader(h http.Header) http.Header {
	cp := make(http.Header, len(h))
	for k, vs := range h {
		cp[k] = append([]string(nil), vs...)
	}
	return cp
}
