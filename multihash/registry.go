package multihash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"sort"

	sha256simd "github.com/minio/sha256-simd"
	"github.com/spaolacci/murmur3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"

	"xdao.co/multihash/multicodec"
)

// SizeVariable marks registry entries whose digest length depends on the
// input (identity only).
const SizeVariable = -1

type hasher struct {
	size int
	sum  func(data []byte) []byte
}

func sumFn(newFn func() hash.Hash) func([]byte) []byte {
	return func(data []byte) []byte {
		h := newFn()
		h.Write(data)
		return h.Sum(nil)
	}
}

func blake2bFn(size int) func([]byte) []byte {
	return sumFn(func() hash.Hash {
		h, err := blake2b.New(size, nil)
		if err != nil {
			// unkeyed constructor with a registry-fixed size cannot fail
			panic(err)
		}
		return h
	})
}

func shakeFn(newFn func() sha3.ShakeHash, size int) func([]byte) []byte {
	return func(data []byte) []byte {
		h := newFn()
		h.Write(data)
		out := make([]byte, size)
		h.Read(out)
		return out
	}
}

// hashers is the closed algorithm registry: identifier to digest function
// and native output size. It is built once and never mutated; concurrent
// lookups need no locking. Codes present in the multicodec table but absent
// here (ripemd-128/256/320, blake2s-224, keccak-224/384, murmur3-32) have no
// implementation in the adopted crypto stack and fail Sum with
// UnsupportedAlgorithm.
var hashers = map[multicodec.Code]hasher{
	multicodec.Identity: {SizeVariable, func(data []byte) []byte {
		return append([]byte(nil), data...)
	}},

	multicodec.Sha1:         {sha1.Size, sumFn(sha1.New)},
	multicodec.Sha2_224:     {sha256.Size224, sumFn(sha256.New224)},
	multicodec.Sha2_256:     {sha256simd.Size, sumFn(sha256simd.New)},
	multicodec.Sha2_384:     {sha512.Size384, sumFn(sha512.New384)},
	multicodec.Sha2_512:     {sha512.Size, sumFn(sha512.New)},
	multicodec.Sha2_512_224: {sha512.Size224, sumFn(sha512.New512_224)},
	multicodec.Sha2_512_256: {sha512.Size256, sumFn(sha512.New512_256)},

	multicodec.DblSha2_256: {sha256simd.Size, func(data []byte) []byte {
		first := sha256simd.Sum256(data)
		second := sha256simd.Sum256(first[:])
		return second[:]
	}},

	multicodec.Sha3_224: {28, sumFn(sha3.New224)},
	multicodec.Sha3_256: {32, sumFn(sha3.New256)},
	multicodec.Sha3_384: {48, sumFn(sha3.New384)},
	multicodec.Sha3_512: {64, sumFn(sha3.New512)},

	multicodec.Shake128: {32, shakeFn(sha3.NewShake128, 32)},
	multicodec.Shake256: {64, shakeFn(sha3.NewShake256, 64)},

	multicodec.Keccak256: {32, sumFn(sha3.NewLegacyKeccak256)},
	multicodec.Keccak512: {64, sumFn(sha3.NewLegacyKeccak512)},

	multicodec.Blake2b224: {28, blake2bFn(28)},
	multicodec.Blake2b256: {32, blake2bFn(32)},
	multicodec.Blake2b384: {48, blake2bFn(48)},
	multicodec.Blake2b512: {64, blake2bFn(64)},
	multicodec.Blake2s256: {blake2s.Size, sumFn(func() hash.Hash {
		h, err := blake2s.New256(nil)
		if err != nil {
			panic(err)
		}
		return h
	})},

	multicodec.Blake3: {32, sumFn(func() hash.Hash { return blake3.New(32, nil) })},

	multicodec.Md4: {md4.Size, sumFn(md4.New)},
	multicodec.Md5: {md5.Size, sumFn(md5.New)},

	multicodec.Ripemd160: {ripemd160.Size, sumFn(ripemd160.New)},

	multicodec.Murmur3X64_64: {8, sumFn(func() hash.Hash { return murmur3.New64() })},
}

// Sum hashes data with the named algorithm and wraps the digest. This is the
// only path that produces a value claiming to be the result of actually
// hashing data. The input is consumed in a single pass; there is no
// streaming contract at this layer.
func Sum(code multicodec.Code, data []byte) (Multihash, error) {
	h, ok := hashers[code]
	if !ok {
		return Multihash{}, newError(KindUnsupportedAlgorithm, "unsupported hash algorithm: %s", code)
	}
	return Multihash{code: code, digest: h.sum(data)}, nil
}

// DigestSize returns the native digest size in bytes for a supported
// algorithm, or SizeVariable for identity.
func DigestSize(code multicodec.Code) (int, error) {
	h, ok := hashers[code]
	if !ok {
		return 0, newError(KindUnsupportedAlgorithm, "unsupported hash algorithm: %s", code)
	}
	return h.size, nil
}

// SupportedCodes lists the algorithms Sum can compute, in ascending code
// order.
func SupportedCodes() []multicodec.Code {
	out := make([]multicodec.Code, 0, len(hashers))
	for c := range hashers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
