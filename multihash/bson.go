package multihash

import (
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// BSON support embeds values in BSON documents as generic binary elements
// carrying the compact wire form.

// MarshalBSONValue implements bson.ValueMarshaler.
func (m Multihash) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.Binary, bsoncore.AppendBinary(nil, bsontype.BinaryGeneric, Encode(m)), nil
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (m *Multihash) UnmarshalBSONValue(t bsontype.Type, b []byte) error {
	if t != bsontype.Binary {
		return newError(KindInvalidEncoding, "expected BSON binary, got %s", t)
	}
	_, bin, _, ok := bsoncore.ReadBinary(b)
	if !ok {
		return newError(KindInvalidEncoding, "malformed BSON binary value")
	}
	return m.UnmarshalBinary(bin)
}
