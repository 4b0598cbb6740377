package encoding

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"
)

func TestEncodeDecodeAddress(t *testing.T) {
	publicKey := ed25519.PublicKey(bytes.Repeat([]byte{7}, ed25519.PublicKeySize))

	address, err := EncodeAddress(publicKey)
	assert.NoError(t, err)
	assert.Len(t, address, 58)
	assert.NotContains(t, address, "=")

	decoded, err := DecodeAddress(address)
	assert.NoError(t, err)
	assert.Equal(t, publicKey, decoded)
}

func TestEncodeZeroAddress(t *testing.T) {
	address, err := EncodeAddress(make([]byte, ed25519.PublicKeySize))
	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("A", 52)+"Y5HFKQ", address)
}

func TestEncodeAddressRejectsBadKeyLength(t *testing.T) {
	_, err := EncodeAddress(make([]byte, 16))
	assert.Error(t, err)
}

func TestDecodeAddressRejectsBadChecksum(t *testing.T) {
	address, err := EncodeAddress(bytes.Repeat([]byte{7}, ed25519.PublicKeySize))
	assert.NoError(t, err)

	flipped := "A"
	if strings.HasSuffix(address, "A") {
		flipped = "B"
	}
	_, err = DecodeAddress(address[:len(address)-1] + flipped)
	assert.Error(t, err)
}

func TestDecodeAddressRejectsBadLength(t *testing.T) {
	_, err := DecodeAddress("MFRGG")
	assert.Error(t, err)
}

func TestDecodeAddressRejectsBadBase32(t *testing.T) {
	_, err := DecodeAddress(strings.Repeat("0", 58))
	assert.Error(t, err)
}
