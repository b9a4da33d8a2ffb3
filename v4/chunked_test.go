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
	"bytes"
	"testing"
)

// Chained chunk signatures from the published streaming upload example:
// 65536 bytes of "a", then 1024 bytes, then the terminating empty chunk.
func TestSignChunk(t *testing.T) {
	signing, err := DeriveSigning("20130524T000000Z", exampleCredentials())
	if err != nil {
		t.Fatalf("derive signing key: %v", err)
	}

	const timestamp = "20130524T000000Z"
	seed := "4f232c4386841ef735655705268965c44a0e4690baa4adea153f7db9fa80a0a9"

	sig1 := SignChunk(signing, timestamp, seed, bytes.Repeat([]byte("a"), 65536))
	if e, a := "ad80c730a21e5b8d04586a2213dd63b9a0e99e0e2307b0ade35a65485a288648", sig1; e != a {
		t.Errorf("chunk 1: expect %v, got %v", e, a)
	}

	sig2 := SignChunk(signing, timestamp, sig1, bytes.Repeat([]byte("a"), 1024))
	if e, a := "0055627c9e194cb4542bae2aa5492e3c1575bbb81b612b7d234b86a503ef5497", sig2; e != a {
		t.Errorf("chunk 2: expect %v, got %v", e, a)
	}

	final := SignChunk(signing, timestamp, sig2, nil)
	if e, a := "b6c6ea8a5354eaf15b3cb7646744f4275b71ea724fed81ceb9323e279d449df9", final; e != a {
		t.Errorf("final chunk: expect %v, got %v", e, a)
	}
}
