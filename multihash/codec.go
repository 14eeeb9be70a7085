package multihash

import (
	"errors"

	"github.com/multiformats/go-varint"

	"xdao.co/multihash/multicodec"
)

// Encode serializes m to its binary wire form:
//
//	<code varint><digest length varint><digest bytes>
//
// There is no leading sigil, no padding and no checksum; the encoding is a
// payload, not a container.
func Encode(m Multihash) []byte {
	code := m.code.Bytes()
	length := varint.ToUvarint(uint64(len(m.digest)))

	buf := make([]byte, 0, len(code)+len(length)+len(m.digest))
	buf = append(buf, code...)
	buf = append(buf, length...)
	return append(buf, m.digest...)
}

// Decode parses one multihash from the front of buf and returns it together
// with the unconsumed remainder, so a value embedded in a larger stream can
// be peeled off. It is a pure function of buf.
//
// Algorithm identifiers outside the multicodec table fail with
// InvalidAlgorithm; a declared digest length that exceeds the remaining
// bytes fails with TruncatedInput. A zero-length digest is legal.
func Decode(buf []byte) (Multihash, []byte, error) {
	code, rest, err := multicodec.ReadCode(buf)
	if err != nil {
		return Multihash{}, nil, wrapError(varintKind(err, KindInvalidAlgorithm), "reading algorithm identifier", err)
	}
	if !code.Known() {
		return Multihash{}, nil, newError(KindInvalidAlgorithm, "unknown algorithm identifier 0x%x", uint64(code))
	}

	n, sz, err := varint.FromUvarint(rest)
	if err != nil {
		return Multihash{}, nil, wrapError(varintKind(err, KindInvalidEncoding), "reading digest length", err)
	}
	rest = rest[sz:]

	// checked before any int conversion: n <= len(rest) bounds n to int range
	if uint64(len(rest)) < n {
		return Multihash{}, nil, newError(KindTruncatedInput,
			"declared digest length %d exceeds %d remaining bytes", n, len(rest))
	}

	m := Multihash{code: code, digest: append([]byte(nil), rest[:n]...)}
	return m, rest[n:], nil
}

// FromBytes decodes exactly one multihash from buf, ignoring any trailing
// bytes.
func FromBytes(buf []byte) (Multihash, error) {
	m, _, err := Decode(buf)
	return m, err
}

// varintKind maps a varint parse failure to an error kind: running out of
// bytes is truncation, anything else (overflow, non-minimal encoding) keeps
// the caller's default.
func varintKind(err error, def Kind) Kind {
	if errors.Is(err, varint.ErrUnderflow) {
		return KindTruncatedInput
	}
	return def
}
