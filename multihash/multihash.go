// Package multihash implements the self-describing hash value: a digest
// coupled with the identifier of the algorithm that produced it, so a
// consumer can interpret the digest without out-of-band knowledge.
//
// The binary wire form is <code varint><length varint><digest bytes>, with
// no leading sigil byte. Textual forms wrap those bytes in a multibase
// encoding. See Encode and StringOfBase.
package multihash

import (
	"bytes"

	"xdao.co/multihash/multicodec"
)

// Multihash is the immutable (algorithm, digest) pair.
//
// The zero value is the canonical null multihash: identity algorithm with an
// empty digest. Values are cheap to copy and safe to share across
// goroutines; no method mutates the receiver.
type Multihash struct {
	code   multicodec.Code
	digest []byte
}

// NewFromDigest wraps externally computed digest bytes with an algorithm
// identifier. The digest length is not validated against the algorithm's
// native size, and the code is not checked against the registry; this is the
// escape hatch for truncated digests, foreign algorithms and test fixtures.
// Only the decode paths reject unknown identifiers.
func NewFromDigest(code multicodec.Code, digest []byte) Multihash {
	return Multihash{code: code, digest: append([]byte(nil), digest...)}
}

// Null returns the canonical null multihash.
func Null() Multihash {
	return Multihash{}
}

// IsNull reports whether m is the canonical null multihash.
func (m Multihash) IsNull() bool {
	return m.code == multicodec.Identity && len(m.digest) == 0
}

// Code returns the algorithm identifier.
func (m Multihash) Code() multicodec.Code {
	return m.code
}

// Digest returns a copy of the digest bytes.
func (m Multihash) Digest() []byte {
	return append([]byte(nil), m.digest...)
}

// Size returns the digest length in bytes.
func (m Multihash) Size() int {
	return len(m.digest)
}

// Bytes returns the binary encoding of m.
func (m Multihash) Bytes() []byte {
	return Encode(m)
}

// Equal reports whether two values carry the same algorithm and digest.
// Textual encoding is presentation, not identity: two values that differ
// only in how they were rendered compare equal.
func (m Multihash) Equal(o Multihash) bool {
	return m.code == o.code && bytes.Equal(m.digest, o.digest)
}

// Compare orders values by algorithm identifier, then digest bytes.
// Compare(o) == 0 iff Equal(o).
func (m Multihash) Compare(o Multihash) int {
	switch {
	case m.code < o.code:
		return -1
	case m.code > o.code:
		return 1
	}
	return bytes.Compare(m.digest, o.digest)
}
