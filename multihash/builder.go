package multihash

import (
	"github.com/multiformats/go-multibase"

	"xdao.co/multihash/multicodec"
)

// Builder accumulates an algorithm, digest bytes and an optional textual
// base, then produces a Multihash or its encoded string form.
//
// Builders are plain values: every With/Sum call returns a derived builder
// and leaves the receiver untouched, so one configured builder can be reused
// across inputs without leaking state between builds.
type Builder struct {
	code      multicodec.Code
	digest    []byte
	hasDigest bool
	base      multibase.Encoding
	hasBase   bool
}

// NewBuilder returns a builder for the given algorithm.
func NewBuilder(code multicodec.Code) Builder {
	return Builder{code: code}
}

// Sum hashes data with the builder's algorithm and returns a builder
// carrying the digest. The algorithm is resolved first; an identifier
// outside the registry fails with UnsupportedAlgorithm before data is
// touched.
func (b Builder) Sum(data []byte) (Builder, error) {
	m, err := Sum(b.code, data)
	if err != nil {
		return Builder{}, err
	}
	b.digest = m.digest
	b.hasDigest = true
	return b, nil
}

// WithDigest sets externally computed digest bytes, bypassing hashing. No
// validation is performed against the algorithm's native size.
func (b Builder) WithDigest(digest []byte) Builder {
	b.digest = append([]byte(nil), digest...)
	b.hasDigest = true
	return b
}

// WithBase selects the textual base used by BuildEncoded.
func (b Builder) WithBase(base multibase.Encoding) Builder {
	b.base = base
	b.hasBase = true
	return b
}

// Build returns the accumulated value. It fails with ErrMissingDigest when
// neither Sum nor WithDigest ran.
func (b Builder) Build() (Multihash, error) {
	if !b.hasDigest {
		return Multihash{}, ErrMissingDigest
	}
	return Multihash{code: b.code, digest: append([]byte(nil), b.digest...)}, nil
}

// BuildEncoded returns the value rendered under the configured base, or the
// default base when none was selected.
func (b Builder) BuildEncoded() (string, error) {
	m, err := b.Build()
	if err != nil {
		return "", err
	}
	base := DefaultBase
	if b.hasBase {
		base = b.base
	}
	return m.StringOfBase(base)
}
