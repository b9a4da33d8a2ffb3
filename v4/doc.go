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

/*
Package v4 implements the AWS Signature Version 4 (SigV4) primitives used by
the s3 package. See https://docs.aws.amazon.com/IAM/latest/UserGuide/signing-elements.html
for the authoritative description of the algorithm.

The signing chain, briefly:

 1. Build a canonical request string
    `<METHOD>\n<URI>\n<QUERY>\n<HEADERS>\n<SIGNED_HEADERS>\n<PAYLOAD_HASH>`.
    Header names are lower-cased and sorted, query parameters are sorted by
    key then value, and the payload hash is `hex(sha256(BODY))` — or a fixed
    sentinel such as UNSIGNED-PAYLOAD when the body is not signed.

 2. Build the string to sign
    `AWS4-HMAC-SHA256\n<TIMESTAMP>\n<CRED_SCOPE>\n<hex(sha256(CANONICAL))>`,
    where CRED_SCOPE is `<YYYYMMDD>/<region>/<service>/aws4_request`.

 3. Derive the signing key by chaining HMAC-SHA256 over the date, region,
    service and the literal `aws4_request`, seeded with `AWS4` + secret key.

 4. HMAC the string to sign with the derived key and hex-encode the result.

The signature is carried either in the Authorization header or, for
presigned URLs, in the X-Amz-Signature query parameter together with
X-Amz-Algorithm, X-Amz-Credential, X-Amz-Date and X-Amz-SignedHeaders.
*/
package v4
