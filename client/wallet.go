package client

import (
	"net/http"

	"github.com/olegabu/go-kmd/types"
)

// DefaultWalletDriver backs CreateWallet when no driver is named.
const DefaultWalletDriver = "sqlite"

type createWalletRequest struct {
	DriverName          string                    `json:"wallet_driver_name"`
	Name                string                    `json:"wallet_name"`
	Password            string                    `json:"wallet_password"`
	MasterDerivationKey types.MasterDerivationKey `json:"master_derivation_key,omitempty"`
}

type walletHandleRequest struct {
	WalletHandleToken string `json:"wallet_handle_token"`
}

type initWalletHandleRequest struct {
	WalletID       string `json:"wallet_id"`
	WalletPassword string `json:"wallet_password"`
}

type renameWalletRequest struct {
	WalletID       string `json:"wallet_id"`
	WalletPassword string `json:"wallet_password"`
	WalletName     string `json:"wallet_name"`
}

// ListWallets enumerates the wallets the daemon hosts. A daemon with no
// wallets yields an empty slice, not an error.
func (c *Client) ListWallets(opts ...CallOption) (wallets []types.WalletRecord, err error) {
	var response struct {
		Wallets []types.WalletRecord `json:"wallets"`
	}
	if _, err = c.do(http.MethodGet, walletsPath, nil, opts, &response); err != nil {
		return nil, err
	}
	if response.Wallets == nil {
		return []types.WalletRecord{}, nil
	}
	return response.Wallets, nil
}

// CreateWallet creates a wallet named name. An empty driver defaults to
// sqlite; a non-nil masterDerivationKey recovers the wallet from it.
func (c *Client) CreateWallet(name, password, driver string, masterDerivationKey types.MasterDerivationKey, opts ...CallOption) (wallet types.WalletRecord, err error) {
	if driver == "" {
		driver = DefaultWalletDriver
	}

	request := createWalletRequest{
		DriverName:          driver,
		Name:                name,
		Password:            password,
		MasterDerivationKey: masterDerivationKey,
	}
	var response struct {
		Wallet *types.WalletRecord `json:"wallet"`
	}
	if _, err = c.do(http.MethodPost, walletPath, request, opts, &response); err != nil {
		return
	}
	if response.Wallet == nil {
		err = &ResponseError{Field: "wallet"}
		return
	}
	return *response.Wallet, nil
}

// GetWallet fetches the wallet record behind a handle token along with the
// handle's remaining lifetime.
func (c *Client) GetWallet(handle string, opts ...CallOption) (walletHandle types.WalletHandle, err error) {
	request := walletHandleRequest{WalletHandleToken: handle}
	var response struct {
		WalletHandle *types.WalletHandle `json:"wallet_handle"`
	}
	if _, err = c.do(http.MethodPost, walletInfoPath, request, opts, &response); err != nil {
		return
	}
	if response.WalletHandle == nil {
		err = &ResponseError{Field: "wallet_handle"}
		return
	}
	return *response.WalletHandle, nil
}

// InitWalletHandle unlocks a wallet and returns the handle token required by
// most other operations. The daemon owns the token's lifecycle.
func (c *Client) InitWalletHandle(walletID, password string, opts ...CallOption) (handle string, err error) {
	request := initWalletHandleRequest{WalletID: walletID, WalletPassword: password}
	var response struct {
		WalletHandleToken string `json:"wallet_handle_token"`
	}
	if _, err = c.do(http.MethodPost, walletInitPath, request, opts, &response); err != nil {
		return "", err
	}
	if response.WalletHandleToken == "" {
		return "", &ResponseError{Field: "wallet_handle_token"}
	}
	return response.WalletHandleToken, nil
}

// ReleaseWalletHandle invalidates a handle token. True means the daemon
// answered with its empty-object success sentinel.
func (c *Client) ReleaseWalletHandle(handle string, opts ...CallOption) (released bool, err error) {
	request := walletHandleRequest{WalletHandleToken: handle}
	raw, err := c.do(http.MethodPost, walletReleasePath, request, opts, nil)
	if err != nil {
		return false, err
	}
	return emptyObjectSuccess(raw), nil
}

// RenewWalletHandle extends the lifetime of a handle token.
func (c *Client) RenewWalletHandle(handle string, opts ...CallOption) (walletHandle types.WalletHandle, err error) {
	request := walletHandleRequest{WalletHandleToken: handle}
	var response struct {
		WalletHandle *types.WalletHandle `json:"wallet_handle"`
	}
	if _, err = c.do(http.MethodPost, walletRenewPath, request, opts, &response); err != nil {
		return
	}
	if response.WalletHandle == nil {
		err = &ResponseError{Field: "wallet_handle"}
		return
	}
	return *response.WalletHandle, nil
}

// RenameWallet changes the wallet's name, authenticated by id and password
// rather than a handle.
func (c *Client) RenameWallet(walletID, password, newName string, opts ...CallOption) (wallet types.WalletRecord, err error) {
	request := renameWalletRequest{WalletID: walletID, WalletPassword: password, WalletName: newName}
	var response struct {
		Wallet *types.WalletRecord `json:"wallet"`
	}
	if _, err = c.do(http.MethodPost, walletRenamePath, request, opts, &response); err != nil {
		return
	}
	if response.Wallet == nil {
		err = &ResponseError{Field: "wallet"}
		return
	}
	return *response.Wallet, nil
}

// ExportMasterDerivationKey reveals the wallet's recovery secret. Security
// sensitive, so the password rides along with the handle.
func (c *Client) ExportMasterDerivationKey(handle, password string, opts ...CallOption) (masterDerivationKey types.MasterDerivationKey, err error) {
	request := struct {
		WalletHandleToken string `json:"wallet_handle_token"`
		WalletPassword    string `json:"wallet_password"`
	}{handle, password}
	var response struct {
		MasterDerivationKey types.MasterDerivationKey `json:"master_derivation_key"`
	}
	if _, err = c.do(http.MethodPost, masterKeyExportPath, request, opts, &response); err != nil {
		return nil, err
	}
	if response.MasterDerivationKey == nil {
		return nil, &ResponseError{Field: "master_derivation_key"}
	}
	return response.MasterDerivationKey, nil
}
