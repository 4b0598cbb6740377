// Package mnemonic converts the daemon's 32-byte secrets (master derivation
// keys, ed25519 seeds) to and from 24-word English mnemonics for backup and
// recovery. The daemon never sees the words, only the raw key.
package mnemonic

import (
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ed25519"

	"github.com/olegabu/go-kmd/types"
)

const keyLenBytes = 32

// FromKey renders a 32-byte key as a mnemonic.
func FromKey(key []byte) (mnemonic string, err error) {
	if len(key) != keyLenBytes {
		return "", errors.Errorf("key is %d bytes, expected %d", len(key), keyLenBytes)
	}

	mnemonic, err = bip39.NewMnemonic(key)
	if err != nil {
		return "", errors.Wrap(err, "cannot get NewMnemonic from key")
	}
	return mnemonic, nil
}

// ToKey recovers the 32-byte key behind a mnemonic.
func ToKey(mnemonic string) (key []byte, err error) {
	key, err = bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get EntropyFromMnemonic")
	}
	if len(key) != keyLenBytes {
		return nil, errors.Errorf("mnemonic encodes %d bytes, expected %d", len(key), keyLenBytes)
	}
	return key, nil
}

// FromMasterDerivationKey renders a wallet recovery secret as a mnemonic.
func FromMasterDerivationKey(masterDerivationKey types.MasterDerivationKey) (string, error) {
	return FromKey(masterDerivationKey)
}

// ToMasterDerivationKey recovers a wallet recovery secret from a mnemonic.
func ToMasterDerivationKey(mnemonic string) (types.MasterDerivationKey, error) {
	key, err := ToKey(mnemonic)
	if err != nil {
		return nil, err
	}
	return types.MasterDerivationKey(key), nil
}

// FromPrivateKey renders the seed half of an ed25519 private key as a
// mnemonic.
func FromPrivateKey(privateKey ed25519.PrivateKey) (string, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return "", errors.Errorf("private key is %d bytes, expected %d", len(privateKey), ed25519.PrivateKeySize)
	}
	return FromKey(privateKey.Seed())
}

// ToPrivateKey recovers the full ed25519 private key from a seed mnemonic.
func ToPrivateKey(mnemonic string) (ed25519.PrivateKey, error) {
	seed, err := ToKey(mnemonic)
	if err != nil {
		return nil, err
	}
	return ed25519.NewKeyFromSeed(seed), nil
}
