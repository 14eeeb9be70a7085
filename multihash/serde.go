package multihash

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"

	"xdao.co/multihash/multicodec"
)

// Mode selects the structured representation of a value. It is always
// supplied by the caller; a value never infers its own representation.
type Mode int

const (
	// ModeReadable renders a named-field record: the algorithm as its
	// registry name and the digest as base16-lower multibase text.
	ModeReadable Mode = iota
	// ModeCompact renders the positional binary form: the raw wire bytes.
	ModeCompact
)

// Serialize encodes m under the given mode. Readable output is a JSON
// object; compact output is the binary wire form. Each mode's output is
// decodable only by Deserialize in the same mode.
func Serialize(m Multihash, mode Mode) ([]byte, error) {
	switch mode {
	case ModeReadable:
		return m.MarshalJSON()
	case ModeCompact:
		return m.MarshalBinary()
	default:
		return nil, newError(KindInvalidEncoding, "unknown serialization mode %d", int(mode))
	}
}

// Deserialize decodes the output of Serialize for the same mode.
func Deserialize(b []byte, mode Mode) (Multihash, error) {
	var m Multihash
	var err error
	switch mode {
	case ModeReadable:
		err = m.UnmarshalJSON(b)
	case ModeCompact:
		err = m.UnmarshalBinary(b)
	default:
		err = newError(KindInvalidEncoding, "unknown serialization mode %d", int(mode))
	}
	if err != nil {
		return Multihash{}, err
	}
	return m, nil
}

// readableRecord is the human-readable schema: exactly two mandatory string
// fields. The hash field carries varint(len)||digest under base16-lower
// multibase, so the digest length survives the textual round trip.
type readableRecord struct {
	Codec string `json:"codec"`
	Hash  string `json:"hash"`
}

// MarshalJSON implements the human-readable mode. Values carrying an
// off-table algorithm identifier cannot be named and fail with
// InvalidAlgorithm.
func (m Multihash) MarshalJSON() ([]byte, error) {
	if !m.code.Known() {
		return nil, newError(KindInvalidAlgorithm, "algorithm identifier 0x%x has no registry name", uint64(m.code))
	}
	vb := append(varint.ToUvarint(uint64(len(m.digest))), m.digest...)
	enc, err := multibase.Encode(multibase.Base16, vb)
	if err != nil {
		return nil, wrapError(KindInvalidEncoding, "multibase encode", err)
	}
	return json.Marshal(readableRecord{Codec: m.code.String(), Hash: enc})
}

// UnmarshalJSON parses the human-readable record. Field order is not
// significant; both fields are mandatory (MissingField), may appear once
// (DuplicateField), and the codec name must resolve (InvalidAlgorithm).
func (m *Multihash) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return wrapError(KindInvalidEncoding, "reading record", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return newError(KindInvalidEncoding, "expected a JSON object, got %v", tok)
	}

	var codecName, hashField string
	var haveCodec, haveHash bool
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return wrapError(KindInvalidEncoding, "reading field name", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return newError(KindInvalidEncoding, "non-string field name %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return wrapError(KindInvalidEncoding, "reading field value", err)
		}
		val, ok := valTok.(string)
		if !ok {
			return newError(KindInvalidEncoding, "field %q: expected a string value", key)
		}

		switch key {
		case "codec":
			if haveCodec {
				return newError(KindDuplicateField, "repeated field %q", key)
			}
			codecName, haveCodec = val, true
		case "hash":
			if haveHash {
				return newError(KindDuplicateField, "repeated field %q", key)
			}
			hashField, haveHash = val, true
		default:
			return newError(KindInvalidEncoding, "unexpected field %q", key)
		}
	}
	if _, err := dec.Token(); err != nil {
		return wrapError(KindInvalidEncoding, "reading record end", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return newError(KindInvalidEncoding, "trailing data after record")
	}

	if !haveCodec {
		return newError(KindMissingField, "missing field %q", "codec")
	}
	if !haveHash {
		return newError(KindMissingField, "missing field %q", "hash")
	}

	code, err := multicodec.FromName(codecName)
	if err != nil {
		return wrapError(KindInvalidAlgorithm, "resolving codec name", err)
	}

	_, vb, err := multibase.Decode(hashField)
	if err != nil {
		return wrapError(KindInvalidEncoding, "decoding hash field", err)
	}
	n, sz, err := varint.FromUvarint(vb)
	if err != nil {
		return wrapError(KindInvalidEncoding, "decoding hash field length", err)
	}
	if uint64(len(vb)-sz) != n {
		return newError(KindInvalidEncoding,
			"hash field declares %d digest bytes but carries %d", n, len(vb)-sz)
	}

	*m = Multihash{code: code, digest: append([]byte(nil), vb[sz:]...)}
	return nil
}

// MarshalBinary implements the compact mode (encoding.BinaryMarshaler).
func (m Multihash) MarshalBinary() ([]byte, error) {
	return Encode(m), nil
}

// UnmarshalBinary implements the compact mode. Unlike Decode, the buffer
// must frame exactly one value; trailing bytes are rejected.
func (m *Multihash) UnmarshalBinary(b []byte) error {
	decoded, rest, err := Decode(b)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return newError(KindInvalidEncoding, "%d trailing bytes after multihash", len(rest))
	}
	*m = decoded
	return nil
}

// MarshalText renders the default textual form (encoding.TextMarshaler).
func (m Multihash) MarshalText() ([]byte, error) {
	s, err := m.StringOfBase(DefaultBase)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText parses any multibase textual form (encoding.TextUnmarshaler).
func (m *Multihash) UnmarshalText(b []byte) error {
	decoded, err := FromString(string(b))
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}
