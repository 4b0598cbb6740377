package types

import (
	"golang.org/x/crypto/ed25519"
)

// Transaction is the unsigned transaction the daemon signs on the caller's
// behalf. The client treats it as opaque: it is msgpack-encoded before send
// and never reinterpreted, so only the fields needed to carry a payment are
// modeled here.
type Transaction struct {
	Type        string `msgpack:"type,omitempty" json:"type,omitempty"`
	Sender      []byte `msgpack:"snd,omitempty" json:"sender,omitempty"`
	Fee         uint64 `msgpack:"fee,omitempty" json:"fee,omitempty"`
	FirstValid  uint64 `msgpack:"fv,omitempty" json:"first_valid,omitempty"`
	LastValid   uint64 `msgpack:"lv,omitempty" json:"last_valid,omitempty"`
	Note        []byte `msgpack:"note,omitempty" json:"note,omitempty"`
	GenesisID   string `msgpack:"gen,omitempty" json:"genesis_id,omitempty"`
	GenesisHash []byte `msgpack:"gh,omitempty" json:"genesis_hash,omitempty"`
	Receiver    []byte `msgpack:"rcv,omitempty" json:"receiver,omitempty"`
	Amount      uint64 `msgpack:"amt,omitempty" json:"amount,omitempty"`
}

// SignedTxn is the daemon's signing result: the transaction plus either a
// plain signature or a multisig structure.
type SignedTxn struct {
	Sig      []byte      `msgpack:"sig,omitempty"`
	Multisig *Multisig   `msgpack:"msig,omitempty"`
	AuthAddr []byte      `msgpack:"sgnr,omitempty"`
	Txn      Transaction `msgpack:"txn"`
}

// Multisig holds the member keys and whatever partial signatures have been
// collected so far. The json tags are the daemon's partial_multisig wire
// form; the msgpack tags are the canonical encoding of the finished blob.
type Multisig struct {
	Version   uint8            `msgpack:"v" json:"version"`
	Threshold uint8            `msgpack:"thr" json:"threshold"`
	Subsigs   []MultisigSubsig `msgpack:"subsig" json:"subsigs"`
}

type MultisigSubsig struct {
	PublicKey []byte `msgpack:"pk" json:"public_key"`
	Signature []byte `msgpack:"s,omitempty" json:"signature,omitempty"`
}

// MemberKeys returns the subsig public keys in order.
func (t Multisig) MemberKeys() []ed25519.PublicKey {
	pks := make([]ed25519.PublicKey, len(t.Subsigs))
	for i, subsig := range t.Subsigs {
		pks[i] = ed25519.PublicKey(subsig.PublicKey)
	}
	return pks
}

// MultisigTransaction is a transaction paired with its (possibly partial)
// multisig. AuthAddr, when set, names the authorizing address the daemon
// should honor instead of the sender.
type MultisigTransaction struct {
	Txn      Transaction
	Multisig Multisig
	AuthAddr string
}
