package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olegabu/go-kmd/types"
)

func TestMsgpackSignedTxnRoundTrip(t *testing.T) {
	signed := types.SignedTxn{
		Sig: []byte("signature"),
		Multisig: &types.Multisig{
			Version:   1,
			Threshold: 2,
			Subsigs: []types.MultisigSubsig{
				{PublicKey: []byte("member one public key 32 bytes!!"), Signature: []byte("partial")},
				{PublicKey: []byte("member two public key 32 bytes!!")},
			},
		},
		Txn: types.Transaction{
			Type:     "pay",
			Sender:   []byte("sender"),
			Receiver: []byte("receiver"),
			Amount:   1000,
			Fee:      10,
			Note:     []byte("note"),
		},
	}

	blob, err := MsgpackEncode(signed)
	assert.NoError(t, err)

	var decoded types.SignedTxn
	err = MsgpackDecode(blob, &decoded)
	assert.NoError(t, err)
	assert.Equal(t, signed, decoded)
}

func TestMsgpackDecodeRejectsGarbage(t *testing.T) {
	var decoded types.SignedTxn
	err := MsgpackDecode([]byte("\xc1 not msgpack"), &decoded)
	assert.Error(t, err)
}
