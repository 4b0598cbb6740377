package encoding

import (
	"crypto/sha512"
	"encoding/base32"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

const (
	publicKeyLen = ed25519.PublicKeySize
	checksumLen  = 4
)

var base32Encoder = base32.StdEncoding.WithPadding(base32.NoPadding)

// EncodeAddress converts a raw 32-byte public key to its base32 address:
// base32(pk || last 4 bytes of SHA-512/256(pk)), unpadded.
func EncodeAddress(publicKey ed25519.PublicKey) (address string, err error) {
	if len(publicKey) != publicKeyLen {
		return "", errors.Errorf("public key is %d bytes, expected %d", len(publicKey), publicKeyLen)
	}

	checksum := addressChecksum(publicKey)
	return base32Encoder.EncodeToString(append(publicKey[:publicKeyLen:publicKeyLen], checksum...)), nil
}

// DecodeAddress converts a base32 address back to the raw public key,
// verifying the embedded checksum.
func DecodeAddress(address string) (publicKey ed25519.PublicKey, err error) {
	decoded, err := base32Encoder.DecodeString(address)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode address as base32")
	}

	if len(decoded) != publicKeyLen+checksumLen {
		return nil, errors.Errorf("address is %d bytes, expected %d", len(decoded), publicKeyLen+checksumLen)
	}

	publicKey = decoded[:publicKeyLen]
	checksum := decoded[publicKeyLen:]
	expected := addressChecksum(publicKey)
	for i := range checksum {
		if checksum[i] != expected[i] {
			return nil, errors.New("address checksum mismatch")
		}
	}

	return publicKey, nil
}

func addressChecksum(publicKey []byte) []byte {
	digest := sha512.Sum512_256(publicKey)
	return digest[sha512.Size256-checksumLen:]
}
