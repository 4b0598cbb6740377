// Package wallet fronts one daemon wallet with a session that owns the
// handle-token lifecycle, so callers work with names and passwords instead
// of juggling tokens.
package wallet

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"

	"github.com/olegabu/go-kmd/client"
	"github.com/olegabu/go-kmd/types"
)

type Wallet struct {
	client   *client.Client
	id       string
	name     string
	password string
	handle   string
}

// New binds a session to the daemon wallet named name. The wallet must
// already exist; no handle is taken until the first operation needs one.
func New(c *client.Client, name, password string) (w *Wallet, err error) {
	wallets, err := c.ListWallets()
	if err != nil {
		return nil, errors.Wrap(err, "cannot ListWallets")
	}

	for _, record := range wallets {
		if record.Name == name {
			return &Wallet{client: c, id: record.ID, name: name, password: password}, nil
		}
	}
	return nil, errors.Errorf("cannot find wallet %v", name)
}

// Create makes the wallet on the daemon first, then binds a session to it.
// A non-nil masterDerivationKey recovers an existing wallet.
func Create(c *client.Client, name, password string, masterDerivationKey types.MasterDerivationKey) (w *Wallet, err error) {
	record, err := c.CreateWallet(name, password, "", masterDerivationKey)
	if err != nil {
		return nil, errors.Wrap(err, "cannot CreateWallet")
	}
	return &Wallet{client: c, id: record.ID, name: record.Name, password: password}, nil
}

func (t *Wallet) ID() string {
	return t.id
}

func (t *Wallet) Name() string {
	return t.name
}

// automateHandle makes sure the session holds a usable handle token: the
// current one is renewed when the daemon still honors it, otherwise a fresh
// one is initialized.
func (t *Wallet) automateHandle() (handle string, err error) {
	if t.handle != "" {
		_, err = t.client.RenewWalletHandle(t.handle)
		if err == nil {
			return t.handle, nil
		}
		var daemonErr *client.Error
		if !errors.As(err, &daemonErr) {
			return "", errors.Wrap(err, "cannot RenewWalletHandle")
		}
		t.handle = ""
	}

	t.handle, err = t.client.InitWalletHandle(t.id, t.password)
	if err != nil {
		return "", errors.Wrap(err, "cannot InitWalletHandle")
	}
	return t.handle, nil
}

// Release gives the current handle token back to the daemon.
func (t *Wallet) Release() error {
	if t.handle == "" {
		return nil
	}
	released, err := t.client.ReleaseWalletHandle(t.handle)
	if err != nil {
		return errors.Wrap(err, "cannot ReleaseWalletHandle")
	}
	if !released {
		return errors.New("daemon did not confirm handle release")
	}
	t.handle = ""
	return nil
}

// Info fetches the wallet record and the remaining handle lifetime.
func (t *Wallet) Info() (walletHandle types.WalletHandle, err error) {
	handle, err := t.automateHandle()
	if err != nil {
		return
	}
	return t.client.GetWallet(handle)
}

// Rename changes the wallet's name on the daemon.
func (t *Wallet) Rename(newName string) (record types.WalletRecord, err error) {
	record, err = t.client.RenameWallet(t.id, t.password, newName)
	if err != nil {
		return
	}
	t.name = record.Name
	return record, nil
}

// ExportMasterDerivationKey reveals the wallet's recovery secret.
func (t *Wallet) ExportMasterDerivationKey() (types.MasterDerivationKey, error) {
	handle, err := t.automateHandle()
	if err != nil {
		return nil, err
	}
	return t.client.ExportMasterDerivationKey(handle, t.password)
}

func (t *Wallet) ListKeys() ([]string, error) {
	handle, err := t.automateHandle()
	if err != nil {
		return nil, err
	}
	return t.client.ListKeys(handle)
}

func (t *Wallet) GenerateKey() (address string, err error) {
	handle, err := t.automateHandle()
	if err != nil {
		return "", err
	}
	return t.client.GenerateKey(handle)
}

func (t *Wallet) ImportKey(privateKey ed25519.PrivateKey) (address string, err error) {
	handle, err := t.automateHandle()
	if err != nil {
		return "", err
	}
	return t.client.ImportKey(handle, privateKey)
}

func (t *Wallet) ExportKey(address string) (ed25519.PrivateKey, error) {
	handle, err := t.automateHandle()
	if err != nil {
		return nil, err
	}
	return t.client.ExportKey(handle, t.password, address)
}

func (t *Wallet) DeleteKey(address string) (deleted bool, err error) {
	handle, err := t.automateHandle()
	if err != nil {
		return false, err
	}
	return t.client.DeleteKey(handle, t.password, address)
}

func (t *Wallet) SignTransaction(tx types.Transaction) (types.SignedTxn, error) {
	handle, err := t.automateHandle()
	if err != nil {
		return types.SignedTxn{}, err
	}
	return t.client.SignTransaction(handle, t.password, tx)
}

func (t *Wallet) ListMultisig() ([]string, error) {
	handle, err := t.automateHandle()
	if err != nil {
		return nil, err
	}
	return t.client.ListMultisig(handle)
}

func (t *Wallet) ImportMultisig(account types.MultisigAccount) (address string, err error) {
	handle, err := t.automateHandle()
	if err != nil {
		return "", err
	}
	return t.client.ImportMultisig(handle, account)
}

func (t *Wallet) ExportMultisig(address string) (types.MultisigAccount, error) {
	handle, err := t.automateHandle()
	if err != nil {
		return types.MultisigAccount{}, err
	}
	return t.client.ExportMultisig(handle, address)
}

func (t *Wallet) DeleteMultisig(address string) (deleted bool, err error) {
	handle, err := t.automateHandle()
	if err != nil {
		return false, err
	}
	return t.client.DeleteMultisig(handle, t.password, address)
}

// SignMultisigTransaction adds the signature of the member behind
// signerAddress to mtx, mutating it in place like the client call does.
func (t *Wallet) SignMultisigTransaction(signerAddress string, mtx *types.MultisigTransaction) (*types.MultisigTransaction, error) {
	handle, err := t.automateHandle()
	if err != nil {
		return nil, err
	}
	return t.client.SignMultisigTransaction(handle, t.password, signerAddress, mtx)
}
