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

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"s3-request-signer/internal/awscreds"
	"s3-request-signer/internal/config"
	"s3-request-signer/internal/logger"
	"s3-request-signer/s3"
	"s3-request-signer/v4"
)

var Version string

const usage = "usage: s3-request-signer <presign|sign|sign-policy|version> [flags]"

func main() {
	if Version == "" {
		Version = "unknown"
	}

	logs, err := logger.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(os.Args) < 2 {
		logs.Exit(usage, 2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "presign":
		runPresign(ctx, logs, os.Args[2:])
	case "sign":
		runSign(ctx, logs, os.Args[2:])
	case "sign-policy":
		runSignPolicy(ctx, logs, os.Args[2:])
	case "version":
		fmt.Println(Version)
	default:
		logs.Exit("unknown command "+os.Args[1]+"\n"+usage, 2)
	}
}

// signingFlags are the flags shared by all subcommands.
type signingFlags struct {
	region       string
	service      string
	accessKey    string
	secretKey    string
	sessionToken string
	secretName   string
	configPath   string
	isYaml       bool
}

func (f *signingFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.region, "region", "", "Signing region (defaults to "+v4.DefaultRegion+")")
	fs.StringVar(&f.service, "service", "", "Credential-scope service name (defaults to s3)")
	fs.StringVar(&f.accessKey, "access-key", "", "Static access key ID")
	fs.StringVar(&f.secretKey, "secret-key", "", "Static secret access key")
	fs.StringVar(&f.sessionToken, "session-token", "", "Static session token")
	fs.StringVar(&f.secretName, "secret-name", "", "Secrets Manager secret holding the signing keys")
	fs.StringVar(&f.configPath, "config", "", "Signing profile file")
	fs.BoolVar(&f.isYaml, "yaml", false, "Parse the profile file as YAML")
}

// resolveCredentials resolves signing credentials in precedence order:
// explicit flags, then a profile file, then a Secrets Manager secret named on
// the command line, then the AWS default chain.
func resolveCredentials(ctx context.Context, logs *logger.Logger, f *signingFlags) (s3.Credentials, error) {
	if f.accessKey != "" && f.secretKey != "" {
		return s3.Credentials{
			AccessKey:    f.accessKey,
			SecretKey:    f.secretKey,
			SessionToken: f.sessionToken,
			ServiceName:  f.service,
			RegionName:   f.region,
		}, nil
	}

	var profile *config.Profile
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath, f.isYaml)
		if err != nil {
			return s3.Credentials{}, err
		}
		profile = loaded
	} else {
		profile = &config.Profile{
			Region:           f.region,
			Service:          f.service,
			CredentialSource: config.SourceDefault,
		}
		if f.secretName != "" {
			profile.CredentialSource = config.SourceSecretsManager
			profile.SecretName = f.secretName
		}
	}

	svc := awscreds.NewService(&http.Client{Timeout: 10 * time.Second}, logs)
	creds, err := awscreds.Resolve(ctx, svc, profile)
	if err != nil {
		return s3.Credentials{}, err
	}
	// Command-line flags win over profile values.
	if f.region != "" {
		creds.RegionName = f.region
	}
	if f.service != "" {
		creds.ServiceName = f.service
	}
	return creds, nil
}

func runPresign(ctx context.Context, logs *logger.Logger, args []string) {
	fs := flag.NewFlagSet("presign", flag.ExitOnError)
	rawURL := fs.String("url", "", "URL to presign")
	method := fs.String("method", http.MethodGet, "HTTP method")
	expires := fs.Int("expires", 0, "X-Amz-Expires seconds; 0 keeps the URL's value or the one-week default")
	flags := &signingFlags{}
	flags.register(fs)
	fs.Parse(args)

	if *rawURL == "" {
		logs.Exit("presign: -url is required", 2)
	}
	creds, err := resolveCredentials(ctx, logs, flags)
	if err != nil {
		logs.Exit(err, 1)
	}

	target, err := s3.TargetFromURL(*rawURL)
	if err != nil {
		logs.Exit(&v4.SigningError{Err: err}, 1)
	}
	if *expires > 0 {
		if target.Query == nil {
			target.Query = url.Values{}
		}
		target.Query.Set(v4.AmzExpiresKey, strconv.Itoa(*expires))
	}

	req := &s3.Request{Method: *method, Target: target}
	if _, err := s3.SignRequest(creds, req, s3.SignOptions{Query: true, SetRequest: true}); err != nil {
		logs.Exit(&v4.SigningError{Err: err}, 1)
	}
	fmt.Println(target.String())
}

func runSign(ctx context.Context, logs *logger.Logger, args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	rawURL := fs.String("url", "", "URL of the request to sign")
	method := fs.String("method", http.MethodGet, "HTTP method")
	unsigned := fs.Bool("unsigned-payload", false, "Sign with the unsigned-payload sentinel")
	flags := &signingFlags{}
	flags.register(fs)
	fs.Parse(args)

	if *rawURL == "" {
		logs.Exit("sign: -url is required", 2)
	}
	creds, err := resolveCredentials(ctx, logs, flags)
	if err != nil {
		logs.Exit(err, 1)
	}

	target, err := s3.TargetFromURL(*rawURL)
	if err != nil {
		logs.Exit(&v4.SigningError{Err: err}, 1)
	}

	opts := s3.SignOptions{}
	if *unsigned {
		opts.Payload = s3.PayloadUnsigned
	}
	req := &s3.Request{Method: *method, Target: target}
	result, err := s3.SignRequest(creds, req, opts)
	if err != nil {
		logs.Exit(&v4.SigningError{Err: err}, 1)
	}
	printJSON(logs, result)
}

func runSignPolicy(ctx context.Context, logs *logger.Logger, args []string) {
	fs := flag.NewFlagSet("sign-policy", flag.ExitOnError)
	timestamp := fs.String("timestamp", "", "Pre-formatted signing timestamp (defaults to now)")
	flags := &signingFlags{}
	flags.register(fs)
	fs.Parse(args)

	creds, err := resolveCredentials(ctx, logs, flags)
	if err != nil {
		logs.Exit(err, 1)
	}

	var policy s3.Policy
	if err := json.NewDecoder(os.Stdin).Decode(&policy); err != nil {
		logs.Exit(&v4.SigningError{Err: fmt.Errorf("reading policy from stdin: %w", err)}, 1)
	}

	fields, err := s3.SignPolicy(creds, &policy, s3.SignOptions{Timestamp: *timestamp})
	if err != nil {
		logs.Exit(&v4.SigningError{Err: err}, 1)
	}
	printJSON(logs, fields)
}

func printJSON(logs *logger.Logger, v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logs.Exit(err, 1)
	}
	fmt.Println(string(out))
}
