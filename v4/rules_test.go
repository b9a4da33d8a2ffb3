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

import "testing"

func TestIgnoredHeaders(t *testing.T) {
	cases := map[string]bool{
		"Authorization":   false,
		"User-Agent":      false,
		"X-Amzn-Trace-Id": false,
		"Content-Type":    true,
		"X-Amz-Date":      true,
		"Range":           true,
	}
	for header, signed := range cases {
		if e, a := signed, IgnoredHeaders.IsValid(header); e != a {
			t.Errorf("%s: expect %v, got %v", header, e, a)
		}
	}
}

func TestAllowedQueryHoisting(t *testing.T) {
	cases := map[string]bool{
		"X-Amz-Expected-Bucket-Owner": true,
		"X-Amz-Security-Token":        true,
		"X-Amz-Acl":                   false, // pinned to the signed headers
		"X-Amz-Meta-Owner":            false, // metadata prefix is pinned
		"X-Amz-Object-Lock-Mode":      false,
		"Content-Type":                false, // not an X-Amz header
		"Range":                       false,
	}
	for header, hoistable := range cases {
		if e, a := hoistable, AllowedQueryHoisting.IsValid(header); e != a {
			t.Errorf("%s: expect %v, got %v", header, e, a)
		}
	}
}

func TestPatternsCaseFold(t *testing.T) {
	p := Patterns{"X-Amz-Meta-"}
	if !p.IsValid("x-amz-meta-owner") {
		t.Error("expect case-insensitive prefix match")
	}
	if p.IsValid("X-Amz-Met") {
		t.Error("expect no match on truncated prefix")
	}
}
