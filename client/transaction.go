package client

import (
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"

	"github.com/olegabu/go-kmd/encoding"
	"github.com/olegabu/go-kmd/types"
)

type signTransactionRequest struct {
	WalletHandleToken string `json:"wallet_handle_token"`
	WalletPassword    string `json:"wallet_password"`
	Transaction       []byte `json:"transaction"`
	PublicKey         []byte `json:"public_key,omitempty"`
}

// SignTransaction has the daemon sign tx with the key of its sender. The
// transaction is msgpack-encoded before send and the daemon's blob decoded
// after receive, with no reinterpretation in between.
func (c *Client) SignTransaction(handle, password string, tx types.Transaction, opts ...CallOption) (types.SignedTxn, error) {
	return c.signTransaction(handle, password, nil, tx, opts)
}

// SignTransactionWithSpecificPublicKey signs tx with the key behind
// publicKey rather than the key of the sender. The key goes over the wire
// as raw bytes in public_key, not as its base32 address.
func (c *Client) SignTransactionWithSpecificPublicKey(handle, password string, publicKey ed25519.PublicKey, tx types.Transaction, opts ...CallOption) (types.SignedTxn, error) {
	return c.signTransaction(handle, password, publicKey, tx, opts)
}

func (c *Client) signTransaction(handle, password string, publicKey ed25519.PublicKey, tx types.Transaction, opts []CallOption) (signed types.SignedTxn, err error) {
	encodedTx, err := encoding.MsgpackEncode(tx)
	if err != nil {
		err = errors.Wrap(err, "cannot encode transaction")
		return
	}

	request := signTransactionRequest{
		WalletHandleToken: handle,
		WalletPassword:    password,
		Transaction:       encodedTx,
		PublicKey:         publicKey,
	}
	var response struct {
		SignedTransaction []byte `json:"signed_transaction"`
	}
	if _, err = c.do(http.MethodPost, transactionSignPath, request, opts, &response); err != nil {
		return
	}
	if response.SignedTransaction == nil {
		err = &ResponseError{Field: "signed_transaction"}
		return
	}

	err = encoding.MsgpackDecode(response.SignedTransaction, &signed)
	if err != nil {
		err = errors.Wrap(err, "cannot decode signed transaction")
	}
	return
}
