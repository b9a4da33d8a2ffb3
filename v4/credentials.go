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

// Credentials carries the signing identity plus the scope the derived key is
// bound to. SessionToken is optional and only set for temporary credentials.
// ServiceName and RegionName select the credential-scope components; an empty
// RegionName falls back to DefaultRegion.
type Credentials struct {
	AccessKey    string
	SecretKey    string
	SessionToken string
	ServiceName  string
	RegionName   string
}

// HasKeys reports whether both key halves are present.
func (c Credentials) HasKeys() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

// Region returns the scope region, falling back to DefaultRegion.
func (c Credentials) Region() string {
	if c.RegionName == "" {
		return DefaultRegion
	}
	return c.RegionName
}
