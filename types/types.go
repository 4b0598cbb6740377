package types

// MasterDerivationKey is the wallet-level recovery secret held by the daemon.
// The client never derives keys from it, only carries it across the wire.
type MasterDerivationKey []byte

type WalletRecord struct {
	ID                          string `json:"id"`
	Name                        string `json:"name"`
	DriverName                  string `json:"driver_name"`
	SupportsMasterDerivationKey bool   `json:"supports_master_derivation_key"`
}

// WalletHandle pairs a wallet record with the remaining lifetime of the
// handle token it was fetched with.
type WalletHandle struct {
	Wallet         WalletRecord `json:"wallet"`
	ExpiresSeconds int64        `json:"expires_seconds"`
}

// MultisigAccount is a threshold-signature group of member addresses, in the
// order the daemon stores them.
type MultisigAccount struct {
	Version   uint8
	Threshold uint8
	Addresses []string
}
