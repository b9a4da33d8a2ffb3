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
	"strings"
)

const chunkSigningAlgorithm = "AWS4-HMAC-SHA256-PAYLOAD"

// SignChunk signs one chunk of a streaming upload. The seed request must
// have been signed with the StreamingPayload sentinel as its payload hash;
// prevSignature is that seed signature for the first chunk and the previous
// chunk's signature after that, so each chunk is chained to the one before.
func SignChunk(key SigningKey, timestamp, prevSignature string, chunk []byte) string {
	stringToSign := strings.Join([]string{
		chunkSigningAlgorithm,
		timestamp,
		key.Scope,
		prevSignature,
		EmptyStringSHA256,
		hex.EncodeToString(hashSHA256(chunk)),
	}, "\n")
	return hex.EncodeToString(SignString(key.Key, []byte(stringToSign)))
}
