// Package multicodec defines the algorithm identifiers used by the multihash
// format, drawn from the canonical multicodec registry.
//
// Only the hash-family rows of the registry are carried here, plus the
// multihash sigil itself. The table is fixed at build time; identifiers
// outside it are representable as Code values but are not Known.
package multicodec

import (
	"fmt"

	"github.com/multiformats/go-varint"
)

// Code is a multicodec identifier: a small unsigned integer naming a specific
// hash function / output-width combination.
type Code uint64

const (
	// Identity is the zero code: the "digest" is the input itself.
	Identity Code = 0x00

	Sha1     Code = 0x11
	Sha2_256 Code = 0x12
	Sha2_512 Code = 0x13
	Sha3_512 Code = 0x14
	Sha3_384 Code = 0x15
	Sha3_256 Code = 0x16
	Sha3_224 Code = 0x17
	Shake128 Code = 0x18
	Shake256 Code = 0x19

	Keccak224 Code = 0x1a
	Keccak256 Code = 0x1b
	Keccak384 Code = 0x1c
	Keccak512 Code = 0x1d

	Blake3 Code = 0x1e

	Sha2_384 Code = 0x20

	Murmur3X64_64 Code = 0x22
	Murmur3_32    Code = 0x23

	// Multihash is the sigil code for the multihash format itself. It never
	// appears inside an encoded value; it exists so containers that tag
	// their payloads have a name for this format.
	Multihash Code = 0x31

	DblSha2_256 Code = 0x56

	Md4 Code = 0xd4
	Md5 Code = 0xd5

	Sha2_224     Code = 0x1013
	Sha2_512_224 Code = 0x1014
	Sha2_512_256 Code = 0x1015

	Ripemd128 Code = 0x1052
	Ripemd160 Code = 0x1053
	Ripemd256 Code = 0x1054
	Ripemd320 Code = 0x1055

	Blake2b224 Code = 0xb21c
	Blake2b256 Code = 0xb220
	Blake2b384 Code = 0xb230
	Blake2b512 Code = 0xb240
	Blake2s224 Code = 0xb25c
	Blake2s256 Code = 0xb260
)

var names = map[Code]string{
	Identity:      "identity",
	Sha1:          "sha1",
	Sha2_224:      "sha2-224",
	Sha2_256:      "sha2-256",
	Sha2_384:      "sha2-384",
	Sha2_512:      "sha2-512",
	Sha2_512_224:  "sha2-512-224",
	Sha2_512_256:  "sha2-512-256",
	Sha3_224:      "sha3-224",
	Sha3_256:      "sha3-256",
	Sha3_384:      "sha3-384",
	Sha3_512:      "sha3-512",
	Shake128:      "shake-128",
	Shake256:      "shake-256",
	Keccak224:     "keccak-224",
	Keccak256:     "keccak-256",
	Keccak384:     "keccak-384",
	Keccak512:     "keccak-512",
	Blake3:        "blake3",
	Murmur3X64_64: "murmur3-x64-64",
	Murmur3_32:    "murmur3-32",
	Multihash:     "multihash",
	DblSha2_256:   "dbl-sha2-256",
	Md4:           "md4",
	Md5:           "md5",
	Ripemd128:     "ripemd-128",
	Ripemd160:     "ripemd-160",
	Ripemd256:     "ripemd-256",
	Ripemd320:     "ripemd-320",
	Blake2b224:    "blake2b-224",
	Blake2b256:    "blake2b-256",
	Blake2b384:    "blake2b-384",
	Blake2b512:    "blake2b-512",
	Blake2s224:    "blake2s-224",
	Blake2s256:    "blake2s-256",
}

var codes = func() map[string]Code {
	m := make(map[string]Code, len(names))
	for c, n := range names {
		m[n] = c
	}
	return m
}()

// String returns the registry name for known codes, or a hex placeholder for
// codes outside the table.
func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("codec(0x%x)", uint64(c))
}

// Known reports whether c is a row of the table.
func (c Code) Known() bool {
	_, ok := names[c]
	return ok
}

// FromName resolves a registry name back to its code.
func FromName(name string) (Code, error) {
	c, ok := codes[name]
	if !ok {
		return 0, fmt.Errorf("unknown codec name %q", name)
	}
	return c, nil
}

// Bytes returns the code as an unsigned varint.
func (c Code) Bytes() []byte {
	return varint.ToUvarint(uint64(c))
}

// ReadCode consumes one varint-encoded code from buf and returns it together
// with the unconsumed remainder. The code is not checked against the table;
// callers decide whether off-table values are acceptable.
func ReadCode(buf []byte) (Code, []byte, error) {
	v, n, err := varint.FromUvarint(buf)
	if err != nil {
		return 0, nil, fmt.Errorf("reading codec varint: %w", err)
	}
	return Code(v), buf[n:], nil
}
