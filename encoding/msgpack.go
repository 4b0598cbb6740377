package encoding

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackEncode serializes a transaction or signature object to the binary
// form the daemon expects. The bytes cross the wire base64-encoded inside
// JSON request bodies.
func MsgpackEncode(v interface{}) (encoded []byte, err error) {
	encoded, err = msgpack.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "cannot msgpack encode")
	}
	return encoded, nil
}

// MsgpackDecode deserializes bytes produced by the daemon into v.
func MsgpackDecode(encoded []byte, v interface{}) error {
	err := msgpack.Unmarshal(encoded, v)
	if err != nil {
		return errors.Wrap(err, "cannot msgpack decode")
	}
	return nil
}
