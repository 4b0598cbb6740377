package client

import (
	"net/http"

	"golang.org/x/crypto/ed25519"
)

type importKeyRequest struct {
	WalletHandleToken string `json:"wallet_handle_token"`
	PrivateKey        []byte `json:"private_key"`
}

type exportKeyRequest struct {
	WalletHandleToken string `json:"wallet_handle_token"`
	WalletPassword    string `json:"wallet_password"`
	Address           string `json:"address"`
}

type generateKeyRequest struct {
	WalletHandleToken string `json:"wallet_handle_token"`
	DisplayMnemonic   bool   `json:"display_mnemonic"`
}

type deleteKeyRequest struct {
	WalletHandleToken string `json:"wallet_handle_token"`
	WalletPassword    string `json:"wallet_password"`
	Address           string `json:"address"`
}

// ImportKey stores a private key in the wallet and returns the address of
// the account it controls.
func (c *Client) ImportKey(handle string, privateKey ed25519.PrivateKey, opts ...CallOption) (address string, err error) {
	request := importKeyRequest{WalletHandleToken: handle, PrivateKey: privateKey}
	var response struct {
		Address string `json:"address"`
	}
	if _, err = c.do(http.MethodPost, keyImportPath, request, opts, &response); err != nil {
		return "", err
	}
	if response.Address == "" {
		return "", &ResponseError{Field: "address"}
	}
	return response.Address, nil
}

// ExportKey retrieves the private key behind address.
func (c *Client) ExportKey(handle, password, address string, opts ...CallOption) (privateKey ed25519.PrivateKey, err error) {
	request := exportKeyRequest{WalletHandleToken: handle, WalletPassword: password, Address: address}
	var response struct {
		PrivateKey []byte `json:"private_key"`
	}
	if _, err = c.do(http.MethodPost, keyExportPath, request, opts, &response); err != nil {
		return nil, err
	}
	if response.PrivateKey == nil {
		return nil, &ResponseError{Field: "private_key"}
	}
	return ed25519.PrivateKey(response.PrivateKey), nil
}

// GenerateKey has the daemon create a key inside the wallet; only the new
// address comes back.
func (c *Client) GenerateKey(handle string, opts ...CallOption) (address string, err error) {
	request := generateKeyRequest{WalletHandleToken: handle, DisplayMnemonic: false}
	var response struct {
		Address string `json:"address"`
	}
	if _, err = c.do(http.MethodPost, keyPath, request, opts, &response); err != nil {
		return "", err
	}
	if response.Address == "" {
		return "", &ResponseError{Field: "address"}
	}
	return response.Address, nil
}

// DeleteKey removes the key behind address from the wallet. True means the
// daemon answered with its empty-object success sentinel.
func (c *Client) DeleteKey(handle, password, address string, opts ...CallOption) (deleted bool, err error) {
	request := deleteKeyRequest{WalletHandleToken: handle, WalletPassword: password, Address: address}
	raw, err := c.do(http.MethodDelete, keyPath, request, opts, nil)
	if err != nil {
		return false, err
	}
	return emptyObjectSuccess(raw), nil
}

// ListKeys enumerates the addresses in the wallet. The daemon reports an
// empty wallet as {}; any other response without addresses is malformed.
func (c *Client) ListKeys(handle string, opts ...CallOption) (addresses []string, err error) {
	request := walletHandleRequest{WalletHandleToken: handle}
	var response struct {
		Addresses []string `json:"addresses"`
	}
	raw, err := c.do(http.MethodPost, keyListPath, request, opts, &response)
	if err != nil {
		return nil, err
	}
	if response.Addresses == nil {
		if emptyObjectSuccess(raw) {
			return []string{}, nil
		}
		return nil, &ResponseError{Field: "addresses"}
	}
	return response.Addresses, nil
}
