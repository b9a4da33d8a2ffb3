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
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	instant := time.Date(2013, 8, 6, 0, 0, 0, 0, time.UTC)

	if e, a := "20130806T000000Z", FormatTimestamp(instant); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	// Non-UTC instants are normalized to UTC before formatting.
	if e, a := "20130806T000000Z", FormatTimestamp(instant.In(loc)); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	// Zero instant means "now": output must parse and be current-ish.
	now, err := time.Parse(TimeFormat, FormatTimestamp(time.Time{}))
	if err != nil {
		t.Fatalf("parse formatted now: %v", err)
	}
	if d := time.Since(now); d < -time.Minute || d > time.Minute {
		t.Errorf("formatted zero instant not near now, off by %v", d)
	}
}

func TestDeriveSigning(t *testing.T) {
	creds := Credentials{
		AccessKey:   "AKIDEXAMPLE",
		SecretKey:   "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY",
		ServiceName: "s3",
		RegionName:  "us-east-1",
	}

	signing, err := DeriveSigning("20130806T000000Z", creds)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "20130806/us-east-1/s3/aws4_request", signing.Scope; e != a {
		t.Errorf("expect scope %v, got %v", e, a)
	}
	if e, a := "AKIDEXAMPLE/20130806/us-east-1/s3/aws4_request", signing.Credential; e != a {
		t.Errorf("expect credential %v, got %v", e, a)
	}
	expectKey := "2f48cc3468ee03844cf678742289da23c4bbb25af2a01dda75fe5e20c1525daa"
	if e, a := expectKey, hex.EncodeToString(signing.Key); e != a {
		t.Errorf("expect key %v, got %v", e, a)
	}
}

func TestDeriveSigningDefaultRegion(t *testing.T) {
	creds := Credentials{
		AccessKey:   "AKIDEXAMPLE",
		SecretKey:   "secret",
		ServiceName: "s3",
	}

	signing, err := DeriveSigning("20130806T000000Z", creds)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "20130806/"+DefaultRegion+"/s3/aws4_request", signing.Scope; e != a {
		t.Errorf("expect scope %v, got %v", e, a)
	}
}

func TestDeriveSigningErrors(t *testing.T) {
	valid := Credentials{
		AccessKey:   "AKIDEXAMPLE",
		SecretKey:   "secret",
		ServiceName: "s3",
	}

	cases := map[string]struct {
		timestamp string
		creds     Credentials
	}{
		"missing keys":      {"20130806T000000Z", Credentials{ServiceName: "s3"}},
		"missing secret":    {"20130806T000000Z", Credentials{AccessKey: "AKIDEXAMPLE", ServiceName: "s3"}},
		"missing service":   {"20130806T000000Z", Credentials{AccessKey: "AKIDEXAMPLE", SecretKey: "secret"}},
		"short timestamp":   {"2013", valid},
		"garbage timestamp": {"not-a-date-at-all", valid},
	}

	for name, c := range cases {
		if _, err := DeriveSigning(c.timestamp, c.creds); err == nil {
			t.Errorf("%s: expect error, got none", name)
		}
	}
}

func TestSignString(t *testing.T) {
	// RFC 4231 test case 2.
	sig := SignString([]byte("Jefe"), []byte("what do ya want for nothing?"))
	expect := "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"
	if e, a := expect, hex.EncodeToString(sig); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}
