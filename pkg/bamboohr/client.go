// Copyright 2025 hrtools LLC
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

package bamboohr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔑 Credentials holds the subdomain and API key for a BambooHR tenant
type Credentials struct {
	Subdomain string // Company subdomain (e.g. "acme" for acme.bamboohr.com)
	APIKey    string // API key, used as the basic-auth username
}

// 🏭 CredentialsFromEnv reads credentials from the environment
func CredentialsFromEnv() (Credentials, error) {
	creds := Credentials{
		Subdomain: os.Getenv("BAMBOOHR_SUBDOMAIN"),
		APIKey:    os.Getenv("BAMBOOHR_API_KEY"),
	}
	if creds.Subdomain == "" {
		return Credentials{}, errors.New("BAMBOOHR_SUBDOMAIN environment variable not set")
	}
	if creds.APIKey == "" {
		return Credentials{}, errors.New("BAMBOOHR_API_KEY environment variable not set")
	}
	return creds, nil
}

// 🔌 Client is the remote access surface the sync pipeline depends on
type Client interface {
	// 📥 GetJSON issues an authenticated GET and decodes the JSON body
	GetJSON(ctx context.Context, endpoint string, params map[string]string) (any, error)

	// 📄 GetXML issues an authenticated GET and returns the raw XML body
	GetXML(ctx context.Context, endpoint string, params map[string]string) (string, error)

	// 📦 GetRaw issues an authenticated GET and returns the body verbatim
	GetRaw(ctx context.Context, endpoint string) (string, error)

	// 🔗 AppURL builds a URL into the BambooHR web application
	AppURL(path string) string

	// 🏢 Company returns the tenant name (the subdomain)
	Company() string
}

// ❌ RequestError is returned for non-2xx responses and transport failures.
// StatusCode is 0 when no HTTP status was available.
type RequestError struct {
	StatusCode int
	Endpoint   string
	Err        error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("bamboohr request to %q failed (status=%d): %v", e.Endpoint, e.StatusCode, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// 🔍 AsRequestError extracts a RequestError from an error chain
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}

// 🎯 apiClient implements Client against the real BambooHR gateway
type apiClient struct {
	creds   Credentials
	baseURL string
	httpc   *http.Client
}

// 🏭 New creates a Client for the given tenant credentials
func New(creds Credentials) Client {
	return &apiClient{
		creds:   creds,
		baseURL: fmt.Sprintf("https://api.bamboohr.com/api/gateway.php/%s/v1", creds.Subdomain),
		httpc:   http.DefaultClient,
	}
}

// 🏭 NewWithHTTPClient creates a Client with a custom http.Client and base URL,
// used by tests to point at a local server
func NewWithHTTPClient(creds Credentials, httpc *http.Client, baseURL string) Client {
	return &apiClient{creds: creds, baseURL: baseURL, httpc: httpc}
}

func (c *apiClient) Company() string {
	return c.creds.Subdomain
}

func (c *apiClient) AppURL(path string) string {
	return fmt.Sprintf("https://%s.bamboohr.com%s", c.creds.Subdomain, path)
}

// get performs the round-trip shared by all three accessors. BambooHR
// authenticates with the API key as username and the literal "x" password.
func (c *apiClient) get(ctx context.Context, endpoint string, params map[string]string, accept string) (string, error) {
	logger := zerolog.Ctx(ctx)

	reqURL := c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")
	if len(params) > 0 {
		values := url.Values{}
		for k, v := range params {
			values.Set(k, v)
		}
		reqURL += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", errors.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.creds.APIKey, "x")
	req.Header.Set("Accept", accept)

	resp, err := c.httpc.Do(req)
	if err != nil {
		logger.Error().Str("endpoint", endpoint).Err(err).Msg("request transport failure")
		return "", &RequestError{StatusCode: 0, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RequestError{StatusCode: resp.StatusCode, Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error().Str("endpoint", endpoint).Int("status", resp.StatusCode).Msg("request failed")
		return "", &RequestError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Err:        errors.Errorf("unexpected status code: %d", resp.StatusCode),
		}
	}

	return string(body), nil
}

func (c *apiClient) GetJSON(ctx context.Context, endpoint string, params map[string]string) (any, error) {
	body, err := c.get(ctx, endpoint, params, "application/json")
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, errors.Errorf("decoding response from %q: %w", endpoint, err)
	}
	return parsed, nil
}

func (c *apiClient) GetXML(ctx context.Context, endpoint string, params map[string]string) (string, error) {
	return c.get(ctx, endpoint, params, "application/xml")
}

func (c *apiClient) GetRaw(ctx context.Context, endpoint string) (string, error) {
	return c.get(ctx, endpoint, nil, "*/*")
}
