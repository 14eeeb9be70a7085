package multihash

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"xdao.co/multihash/multicodec"
)

const zigBlake2sDigest = "642203125d59e8b93edb676fc78de9c587cf52ccc6f219032da1f377082332b0"

func mustSum(t *testing.T, code multicodec.Code, data []byte) Multihash {
	t.Helper()
	m, err := Sum(code, data)
	if err != nil {
		t.Fatalf("Sum(%v): %v", code, err)
	}
	return m
}

func TestReadableVector(t *testing.T) {
	m := mustSum(t, multicodec.Blake2s256, zig)
	out, err := Serialize(m, ModeReadable)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := `{"codec":"blake2s-256","hash":"f20` + zigBlake2sDigest + `"}`
	if string(out) != want {
		t.Fatalf("readable form:\n got %s\nwant %s", out, want)
	}
	back, err := Deserialize(out, ModeReadable)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !back.Equal(m) {
		t.Fatalf("readable round trip mismatch")
	}
}

func TestCompactVector(t *testing.T) {
	m := mustSum(t, multicodec.Blake2s256, zig)
	out, err := Serialize(m, ModeCompact)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want, err := hex.DecodeString("e0e40220" + zigBlake2sDigest)
	if err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	if !bytes.Equal(out, want) {
		t.Fatalf("compact form: got %x want %x", out, want)
	}
	back, err := Deserialize(out, ModeCompact)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !back.Equal(m) {
		t.Fatalf("compact round trip mismatch")
	}
}

func TestStructuredRoundTripBothModes(t *testing.T) {
	values := []Multihash{
		Null(),
		mustSum(t, multicodec.Sha1, zig),
		mustSum(t, multicodec.Sha2_512, zig),
		mustSum(t, multicodec.Blake3, zig),
		NewFromDigest(multicodec.Sha2_256, []byte{0x01, 0x02}), // truncated digest
	}
	for _, m := range values {
		for _, mode := range []Mode{ModeReadable, ModeCompact} {
			out, err := Serialize(m, mode)
			if err != nil {
				t.Fatalf("Serialize(%v, mode %d): %v", m.Code(), mode, err)
			}
			back, err := Deserialize(out, mode)
			if err != nil {
				t.Fatalf("Deserialize(%v, mode %d): %v", m.Code(), mode, err)
			}
			if !back.Equal(m) {
				t.Fatalf("round trip mismatch: %v mode %d", m.Code(), mode)
			}
		}
	}
}

func TestNullReadableForm(t *testing.T) {
	out, err := Serialize(Null(), ModeReadable)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if string(out) != `{"codec":"identity","hash":"f00"}` {
		t.Fatalf("null readable form: %s", out)
	}
	compact, err := Serialize(Null(), ModeCompact)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Equal(compact, []byte{0x00, 0x00}) {
		t.Fatalf("null compact form: %x", compact)
	}
}

func TestReadableFieldOrderInsensitive(t *testing.T) {
	var m Multihash
	if err := json.Unmarshal([]byte(`{"hash":"f20`+zigBlake2sDigest+`","codec":"blake2s-256"}`), &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !m.Equal(mustSum(t, multicodec.Blake2s256, zig)) {
		t.Fatalf("field order changed the decoded value")
	}
}

func TestReadableMissingField(t *testing.T) {
	cases := []string{
		`{"codec":"sha1"}`,
		`{"hash":"f00"}`,
		`{}`,
	}
	for _, c := range cases {
		var m Multihash
		if err := m.UnmarshalJSON([]byte(c)); !IsKind(err, KindMissingField) {
			t.Fatalf("UnmarshalJSON(%s): got %v, want MissingField", c, err)
		}
	}
}

func TestReadableDuplicateField(t *testing.T) {
	cases := []string{
		`{"codec":"sha1","codec":"sha1","hash":"f00"}`,
		`{"codec":"sha1","hash":"f00","hash":"f00"}`,
	}
	for _, c := range cases {
		var m Multihash
		if err := m.UnmarshalJSON([]byte(c)); !IsKind(err, KindDuplicateField) {
			t.Fatalf("UnmarshalJSON(%s): got %v, want DuplicateField", c, err)
		}
	}
}

func TestReadableUnknownCodecName(t *testing.T) {
	var m Multihash
	err := m.UnmarshalJSON([]byte(`{"codec":"sha9-999","hash":"f00"}`))
	if !IsKind(err, KindInvalidAlgorithm) {
		t.Fatalf("got %v, want InvalidAlgorithm", err)
	}
}

func TestReadableMalformedRecords(t *testing.T) {
	cases := []string{
		`[]`,
		`"f1100"`,
		`{"codec":"sha1","hash":"f00","extra":1}`,
		`{"codec":17,"hash":"f00"}`,
		`{"codec":"sha1","hash":"f02aa"}`, // declares 2 digest bytes, carries 1
		`{"codec":"sha1","hash":"zzz!"}`,
	}
	for _, c := range cases {
		var m Multihash
		err := m.UnmarshalJSON([]byte(c))
		if err == nil {
			t.Fatalf("UnmarshalJSON(%s): expected error", c)
		}
		if IsKind(err, KindMissingField) || IsKind(err, KindDuplicateField) {
			t.Fatalf("UnmarshalJSON(%s): wrong kind %v", c, err)
		}
	}
}

func TestCompactRejectsTrailingBytes(t *testing.T) {
	m := mustSum(t, multicodec.Sha1, zig)
	var back Multihash
	if err := back.UnmarshalBinary(append(Encode(m), 0x00)); !IsKind(err, KindInvalidEncoding) {
		t.Fatalf("UnmarshalBinary(trailing): got %v, want InvalidEncoding", err)
	}
}

func TestReadableOffTableCode(t *testing.T) {
	m := NewFromDigest(multicodec.Code(0x7777), []byte{0x01})
	if _, err := Serialize(m, ModeReadable); !IsKind(err, KindInvalidAlgorithm) {
		t.Fatalf("Serialize(off-table, readable): want InvalidAlgorithm")
	}
}

func TestTextMarshalerRoundTrip(t *testing.T) {
	m := mustSum(t, multicodec.Sha3_512, zig)
	txt, err := m.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var back Multihash
	if err := back.UnmarshalText(txt); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if !back.Equal(m) {
		t.Fatalf("text marshaler round trip mismatch")
	}
}

func TestBSONRoundTrip(t *testing.T) {
	type doc struct {
		Name string    `bson:"name"`
		Hash Multihash `bson:"hash"`
	}
	in := doc{Name: "zig", Hash: mustSum(t, multicodec.Blake2b256, zig)}
	raw, err := bson.Marshal(in)
	if err != nil {
		t.Fatalf("bson.Marshal: %v", err)
	}
	var out doc
	if err := bson.Unmarshal(raw, &out); err != nil {
		t.Fatalf("bson.Unmarshal: %v", err)
	}
	if out.Name != in.Name || !out.Hash.Equal(in.Hash) {
		t.Fatalf("bson round trip mismatch")
	}
}

func TestBSONNullRoundTrip(t *testing.T) {
	type doc struct {
		Hash Multihash `bson:"hash"`
	}
	raw, err := bson.Marshal(doc{Hash: Null()})
	if err != nil {
		t.Fatalf("bson.Marshal: %v", err)
	}
	var out doc
	if err := bson.Unmarshal(raw, &out); err != nil {
		t.Fatalf("bson.Unmarshal: %v", err)
	}
	if !out.Hash.IsNull() {
		t.Fatalf("null value did not survive BSON round trip")
	}
}
