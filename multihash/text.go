package multihash

import (
	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multibase"
)

// DefaultBase is the textual base used when none is requested: lowercase
// base16 with the 'f' multibase prefix, the most universally decodable
// fallback.
const DefaultBase multibase.Encoding = multibase.Base16

// String renders m in the default base.
func (m Multihash) String() string {
	s, err := m.StringOfBase(DefaultBase)
	if err != nil {
		panic("base16 encoding should not fail: " + err.Error())
	}
	return s
}

// StringOfBase renders m under the requested multibase encoding: one leading
// character identifying the base, then the base encoding of the binary wire
// form.
func (m Multihash) StringOfBase(base multibase.Encoding) (string, error) {
	s, err := multibase.Encode(base, Encode(m))
	if err != nil {
		return "", wrapError(KindInvalidEncoding, "multibase encode", err)
	}
	return s, nil
}

// FromString parses a multibase-wrapped multihash. An unrecognized leading
// base character or malformed base payload fails with InvalidEncoding;
// failures in the underlying binary decode propagate unchanged.
func FromString(s string) (Multihash, error) {
	_, data, err := multibase.Decode(s)
	if err != nil {
		return Multihash{}, wrapError(KindInvalidEncoding, "multibase decode", err)
	}
	return FromBytes(data)
}

// B58String renders the binary wire form as bare base58btc, without a
// multibase prefix. This is the legacy convention used by CIDv0-style
// consumers.
func (m Multihash) B58String() string {
	return base58.Encode(Encode(m))
}

// FromB58String parses a bare base58btc multihash produced by B58String.
func FromB58String(s string) (Multihash, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return Multihash{}, wrapError(KindInvalidEncoding, "base58 decode", err)
	}
	return FromBytes(data)
}
