package client

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/olegabu/go-kmd/encoding"
	"github.com/olegabu/go-kmd/types"
)

type importMultisigRequest struct {
	WalletHandleToken string   `json:"wallet_handle_token"`
	Version           uint8    `json:"multisig_version"`
	Threshold         uint8    `json:"threshold"`
	PublicKeys        [][]byte `json:"pks"`
}

type exportMultisigRequest struct {
	WalletHandleToken string `json:"wallet_handle_token"`
	Address           string `json:"address"`
}

type deleteMultisigRequest struct {
	WalletHandleToken string `json:"wallet_handle_token"`
	WalletPassword    string `json:"wallet_password"`
	Address           string `json:"address"`
}

type signMultisigRequest struct {
	WalletHandleToken string         `json:"wallet_handle_token"`
	WalletPassword    string         `json:"wallet_password"`
	Transaction       []byte         `json:"transaction"`
	PublicKey         []byte         `json:"public_key"`
	PartialMultisig   types.Multisig `json:"partial_multisig"`
	Signer            []byte         `json:"signer,omitempty"`
}

// ListMultisig enumerates the multisig account addresses in the wallet. The
// daemon reports an empty wallet as {}; any other response without addresses
// is malformed.
func (c *Client) ListMultisig(handle string, opts ...CallOption) (addresses []string, err error) {
	request := walletHandleRequest{WalletHandleToken: handle}
	var response struct {
		Addresses []string `json:"addresses"`
	}
	raw, err := c.do(http.MethodPost, multisigListPath, request, opts, &response)
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

// ImportMultisig registers a multisig account with the wallet and returns
// its address. Member addresses go over the wire as raw public keys.
func (c *Client) ImportMultisig(handle string, account types.MultisigAccount, opts ...CallOption) (address string, err error) {
	pks := make([][]byte, len(account.Addresses))
	for i, memberAddress := range account.Addresses {
		pks[i], err = encoding.DecodeAddress(memberAddress)
		if err != nil {
			return "", errors.Wrapf(err, "cannot decode member address %v", memberAddress)
		}
	}

	request := importMultisigRequest{
		WalletHandleToken: handle,
		Version:           account.Version,
		Threshold:         account.Threshold,
		PublicKeys:        pks,
	}
	var response struct {
		Address string `json:"address"`
	}
	if _, err = c.do(http.MethodPost, multisigImportPath, request, opts, &response); err != nil {
		return "", err
	}
	if response.Address == "" {
		return "", &ResponseError{Field: "address"}
	}
	return response.Address, nil
}

// ExportMultisig reads the multisig account behind address back out of the
// wallet, with member keys re-encoded as addresses in daemon order.
func (c *Client) ExportMultisig(handle, address string, opts ...CallOption) (account types.MultisigAccount, err error) {
	request := exportMultisigRequest{WalletHandleToken: handle, Address: address}
	var response struct {
		Version    uint8    `json:"multisig_version"`
		Threshold  uint8    `json:"threshold"`
		PublicKeys [][]byte `json:"pks"`
	}
	if _, err = c.do(http.MethodPost, multisigExportPath, request, opts, &response); err != nil {
		return
	}
	if response.PublicKeys == nil {
		err = &ResponseError{Field: "pks"}
		return
	}

	account.Version = response.Version
	account.Threshold = response.Threshold
	account.Addresses = make([]string, len(response.PublicKeys))
	for i, pk := range response.PublicKeys {
		account.Addresses[i], err = encoding.EncodeAddress(pk)
		if err != nil {
			err = errors.Wrapf(err, "cannot encode member key %d", i)
			return
		}
	}
	return account, nil
}

// DeleteMultisig removes the multisig account behind address. True means
// the daemon answered with its empty-object success sentinel.
func (c *Client) DeleteMultisig(handle, password, address string, opts ...CallOption) (deleted bool, err error) {
	request := deleteMultisigRequest{WalletHandleToken: handle, WalletPassword: password, Address: address}
	raw, err := c.do(http.MethodDelete, multisigPath, request, opts, nil)
	if err != nil {
		return false, err
	}
	return emptyObjectSuccess(raw), nil
}

// SignMultisigTransaction asks the daemon to add the signature of the
// member behind signerAddress to mtx. It mutates mtx in place, replacing
// mtx.Multisig with the daemon's updated structure, and returns the same
// object; no other field changes. The optional mtx.AuthAddr names an
// alternate authorizing address for the daemon to honor.
func (c *Client) SignMultisigTransaction(handle, password, signerAddress string, mtx *types.MultisigTransaction, opts ...CallOption) (*types.MultisigTransaction, error) {
	encodedTx, err := encoding.MsgpackEncode(mtx.Txn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode transaction")
	}

	publicKey, err := encoding.DecodeAddress(signerAddress)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode signer address")
	}

	request := signMultisigRequest{
		WalletHandleToken: handle,
		WalletPassword:    password,
		Transaction:       encodedTx,
		PublicKey:         publicKey,
		PartialMultisig:   mtx.Multisig,
	}
	if mtx.AuthAddr != "" {
		request.Signer, err = encoding.DecodeAddress(mtx.AuthAddr)
		if err != nil {
			return nil, errors.Wrap(err, "cannot decode auth address")
		}
	}

	var response struct {
		Multisig []byte `json:"multisig"`
	}
	if _, err = c.do(http.MethodPost, multisigSignPath, request, opts, &response); err != nil {
		return nil, err
	}
	if response.Multisig == nil {
		return nil, &ResponseError{Field: "multisig"}
	}

	var msig types.Multisig
	if err = encoding.MsgpackDecode(response.Multisig, &msig); err != nil {
		return nil, errors.Wrap(err, "cannot decode multisig")
	}

	mtx.Multisig = msig
	return mtx, nil
}
