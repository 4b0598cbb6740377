// Package client talks to a local key-management daemon (kmd) over
// authenticated HTTP. It holds no state beyond the daemon address and API
// token, so one Client is safe to share between goroutines; every operation
// is a single blocking round trip.
package client

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"
)

const (
	authHeader           = "X-KMD-API-Token"
	apiVersionPathPrefix = "/v1"
)

const (
	healthPath          = "/health"
	versionsPath        = "/versions"
	walletsPath         = "/wallets"
	walletPath          = "/wallet"
	walletInfoPath      = "/wallet/info"
	walletInitPath      = "/wallet/init"
	walletReleasePath   = "/wallet/release"
	walletRenewPath     = "/wallet/renew"
	walletRenamePath    = "/wallet/rename"
	masterKeyExportPath = "/master-key/export"
	keyPath             = "/key"
	keyImportPath       = "/key/import"
	keyExportPath       = "/key/export"
	keyListPath         = "/key/list"
	transactionSignPath = "/transaction/sign"
	multisigPath        = "/multisig"
	multisigListPath    = "/multisig/list"
	multisigImportPath  = "/multisig/import"
	multisigExportPath  = "/multisig/export"
	multisigSignPath    = "/multisig/sign"
)

// unversionedPaths are dispatched without the /v1 prefix, noAuthPaths
// without the token header. Protocol constants, not per-call choices.
var unversionedPaths = map[string]bool{
	healthPath:      true,
	versionsPath:    true,
	"/swagger.json": true,
}

var noAuthPaths = map[string]bool{
	healthPath:   true,
	versionsPath: true,
}

type Client struct {
	address string
	token   string
}

// New creates a client for the daemon at address, authenticating with token.
func New(address, token string) *Client {
	return &Client{address: address, token: token}
}

// do builds and dispatches one request and decodes a 2xx JSON body into
// response when it is non-nil. The raw body comes back either way so callers
// can apply the empty-object success convention.
func (c *Client) do(method, path string, body interface{}, opts []CallOption, response interface{}) (raw []byte, err error) {
	options := defaultCallOptions()
	for _, opt := range opts {
		opt(&options)
	}

	requrl := path
	if !unversionedPaths[path] {
		requrl = apiVersionPathPrefix + path
	}
	if len(options.queryParams) > 0 {
		requrl = requrl + "?" + options.queryParams.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "cannot encode request body")
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, c.address+requrl, bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create request")
	}
	if !noAuthPaths[path] {
		req.Header.Set(authHeader, c.token)
	}

	httpClient := http.Client{Timeout: options.timeout}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "cannot reach kmd")
	}
	defer resp.Body.Close()

	raw, err = ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read kmd response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, daemonError(resp.StatusCode, raw)
	}

	if response != nil {
		err = json.Unmarshal(raw, response)
		if err != nil {
			return nil, errors.Wrap(err, "cannot decode kmd response")
		}
	}

	return raw, nil
}

// emptyObjectSuccess reports whether the daemon answered with exactly {},
// its success sentinel for delete and release operations. A daemon that ever
// returned {} for a different semantic (say a not-found no-op) would be
// indistinguishable from success here.
func emptyObjectSuccess(raw []byte) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}
	return fields != nil && len(fields) == 0
}

// Health checks that the daemon is reachable. The endpoint is unversioned
// and unauthenticated.
func (c *Client) Health(opts ...CallOption) error {
	_, err := c.do(http.MethodGet, healthPath, nil, opts, nil)
	return err
}

// Versions lists the API versions the daemon supports.
func (c *Client) Versions(opts ...CallOption) (versions []string, err error) {
	var response struct {
		Versions []string `json:"versions"`
	}
	if _, err = c.do(http.MethodGet, versionsPath, nil, opts, &response); err != nil {
		return nil, err
	}
	if response.Versions == nil {
		return nil, &ResponseError{Field: "versions"}
	}
	return response.Versions, nil
}
