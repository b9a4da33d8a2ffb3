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

// Package s3 is the object-storage authorization layer on top of the generic
// SigV4 signer in package v4. It applies the storage-service canonicalization
// rules (raw path, single escaping pass, mandatory content-hash header),
// defaults presigned requests to an unsigned payload and a one-week
// expiration, and signs browser upload policies for direct POST uploads.
//
// The package holds no state: credentials, requests and policies are consumed
// per call, and the caller's request is only written to when asked.
package s3
