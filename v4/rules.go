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

import "strings"

// Rule decides whether a header participates in signing.
type Rule interface {
	IsValid(value string) bool
}

// Rules is an ordered rule list; the first rule that matches wins.
type Rules []Rule

// IsValid returns the verdict of the first matching rule, false otherwise.
func (r Rules) IsValid(value string) bool {
	for _, rule := range r {
		if rule.IsValid(value) {
			return true
		}
	}
	return false
}

// MapRule matches header names exactly.
type MapRule map[string]struct{}

// IsValid reports whether the value is present in the map.
func (m MapRule) IsValid(value string) bool {
	_, ok := m[value]
	return ok
}

// AllowList accepts a value when the embedded rule matches it.
type AllowList struct {
	Rule
}

// IsValid reports whether the embedded rule matches.
func (a AllowList) IsValid(value string) bool {
	return a.Rule.IsValid(value)
}

// DenyList accepts a value when the embedded rule does NOT match it.
type DenyList struct {
	Rule
}

// IsValid reports whether the embedded rule rejects the value.
func (d DenyList) IsValid(value string) bool {
	return !d.Rule.IsValid(value)
}

// Patterns matches header-name prefixes, case-insensitively.
type Patterns []string

// IsValid reports whether the value starts with any of the patterns.
func (p Patterns) IsValid(value string) bool {
	for _, pattern := range p {
		if hasPrefixFold(value, pattern) {
			return true
		}
	}
	return false
}

// InclusiveRules accepts a value only when every rule matches.
type InclusiveRules []Rule

// IsValid reports whether all rules match.
func (r InclusiveRules) IsValid(value string) bool {
	for _, rule := range r {
		if !rule.IsValid(value) {
			return false
		}
	}
	return true
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
