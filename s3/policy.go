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
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"s3-request-signer/v4"
)

// Form-field keys returned by SignPolicy.
const (
	PolicyDateField       = "x-amz-date"
	PolicyAlgorithmField  = "x-amz-algorithm"
	PolicyCredentialField = "x-amz-credential"
	PolicyField           = "policy"
	PolicySignatureField  = "x-amz-signature"
)

type conditionKind int

const (
	conditionExact conditionKind = iota + 1
	conditionRule
	conditionRange
)

const contentLengthRangeOp = "content-length-range"

// Condition is one entry of an upload policy's condition list: an exact
// field match, a three-element match rule, or a content-length range.
// Build values through ExactMatch, MatchRule or ContentLengthRange; the zero
// value does not serialize.
type Condition struct {
	kind  conditionKind
	field string
	value string
	op    string
	min   int64
	max   int64
}

// ExactMatch builds a `{"field": "value"}` condition.
func ExactMatch(field, value string) (Condition, error) {
	if field == "" {
		return Condition{}, fmt.Errorf("policy condition field is required")
	}
	return Condition{kind: conditionExact, field: field, value: value}, nil
}

// MatchRule builds a `["op", "$field", "value"]` condition. Supported
// operators are "eq" and "starts-with".
func MatchRule(op, field, value string) (Condition, error) {
	switch op {
	case "eq", "starts-with":
	default:
		return Condition{}, fmt.Errorf("unsupported policy condition operator %q", op)
	}
	if field == "" {
		return Condition{}, fmt.Errorf("policy condition field is required")
	}
	return Condition{kind: conditionRule, op: op, field: field, value: value}, nil
}

// ContentLengthRange builds a `["content-length-range", min, max]` condition.
func ContentLengthRange(min, max int64) (Condition, error) {
	if min < 0 || max < min {
		return Condition{}, fmt.Errorf("invalid content length range [%d, %d]", min, max)
	}
	return Condition{kind: conditionRange, min: min, max: max}, nil
}

// MarshalJSON renders the condition in its wire shape.
func (c Condition) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case conditionExact:
		return json.Marshal(map[string]string{c.field: c.value})
	case conditionRule:
		return json.Marshal([3]string{c.op, "$" + c.field, c.value})
	case conditionRange:
		return json.Marshal([3]interface{}{contentLengthRangeOp, c.min, c.max})
	}
	return nil, fmt.Errorf("policy condition is not initialized")
}

// UnmarshalJSON parses either condition wire shape.
func (c *Condition) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty policy condition")
	}

	if trimmed[0] == '{' {
		var m map[string]string
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return err
		}
		if len(m) != 1 {
			return fmt.Errorf("exact-match condition must have exactly one field, got %d", len(m))
		}
		for field, value := range m {
			cond, err := ExactMatch(field, value)
			if err != nil {
				return err
			}
			*c = cond
		}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("match-rule condition must have 3 elements, got %d", len(raw))
	}
	var op string
	if err := json.Unmarshal(raw[0], &op); err != nil {
		return err
	}

	if op == contentLengthRangeOp {
		var min, max int64
		if err := json.Unmarshal(raw[1], &min); err != nil {
			return err
		}
		if err := json.Unmarshal(raw[2], &max); err != nil {
			return err
		}
		cond, err := ContentLengthRange(min, max)
		if err != nil {
			return err
		}
		*c = cond
		return nil
	}

	var field, value string
	if err := json.Unmarshal(raw[1], &field); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[2], &value); err != nil {
		return err
	}
	cond, err := MatchRule(op, strings.TrimPrefix(field, "$"), value)
	if err != nil {
		return err
	}
	*c = cond
	return nil
}

// Policy is a browser upload policy document. Caller-supplied conditions are
// never removed or reordered; SignPolicy appends its required fields after
// them.
type Policy struct {
	Expiration string      `json:"expiration,omitempty"`
	Conditions []Condition `json:"conditions"`
}

// SignPolicy signs an upload policy for a direct browser-to-storage POST.
// The service name defaults to "s3" and the region to the signer's default
// region; caller-supplied credential values win. The returned map holds
// exactly the five form fields the upload form needs: the signing date,
// algorithm and credential scope, the base64-encoded policy document with
// those three fields appended as conditions, and the hex signature.
func SignPolicy(creds Credentials, policy *Policy, opts SignOptions) (map[string]string, error) {
	if creds.ServiceName == "" {
		creds.ServiceName = ServiceName
	}
	if creds.RegionName == "" {
		creds.RegionName = v4.DefaultRegion
	}

	timestamp := opts.Timestamp
	if timestamp == "" {
		timestamp = v4.FormatTimestamp(opts.Time)
	}
	signing, err := v4.DeriveSigning(timestamp, creds)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		PolicyDateField:       timestamp,
		PolicyAlgorithmField:  v4.SigningAlgorithm,
		PolicyCredentialField: signing.Credential,
	}

	doc := Policy{Conditions: make([]Condition, 0, 3)}
	if policy != nil {
		doc.Expiration = policy.Expiration
		doc.Conditions = append(doc.Conditions, policy.Conditions...)
	}
	for _, field := range []string{PolicyDateField, PolicyAlgorithmField, PolicyCredentialField} {
		cond, err := ExactMatch(field, fields[field])
		if err != nil {
			return nil, err
		}
		doc.Conditions = append(doc.Conditions, cond)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	encoded := base64.StdEncoding.EncodeToString(raw)

	fields[PolicyField] = encoded
	fields[PolicySignatureField] = hex.EncodeToString(v4.SignString(signing.Key, []byte(encoded)))
	return fields, nil
}
