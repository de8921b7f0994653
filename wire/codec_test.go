package wire

import (
	"bytes"
	"testing"
)

// syncRequest mirrors wl_display.sync{callback: new_id} for the
// boundary scenario in spec.md §8.1 without depending on protocol/core.
type syncRequest struct{ Callback uint32 }

func (syncRequest) Opcode() uint16 { return 0 }
func (r syncRequest) EncodeArgs(e *Encoder) error {
	e.PutUint32(r.Callback)
	return nil
}

func TestSerializeEmptyPayload(t *testing.T) {
	words, fds, err := Serialize(1, syncRequest{Callback: 3})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if len(fds) != 0 {
		t.Fatalf("expected no fds, got %v", fds)
	}
	want := []uint32{1, (12 << 16) | 0, 3}
	if !equalWords(words, want) {
		t.Fatalf("words = %v, want %v", words, want)
	}
}

// globalEvent mirrors wl_registry.global{name, interface, version} for
// the boundary scenario in spec.md §8.2.
type globalEvent struct {
	Name      uint32
	Interface string
	Version   uint32
}

func TestEncodeStringWithPad(t *testing.T) {
	enc := NewEncoder()
	enc.PutUint32(1)
	if err := enc.PutString("wl_shm"); err != nil {
		t.Fatalf("PutString: %v", err)
	}
	enc.PutUint32(3)

	words := enc.Words()
	want := []uint32{
		1,
		7, // "wl_shm" + NUL = 7 bytes
		BytesToWord([]byte("wl_s"), 0),
		BytesToWord([]byte("hm\x00\x00"), 0),
		3,
	}
	if !equalWords(words, want) {
		t.Fatalf("words = %#x, want %#x", words, want)
	}
}

func TestDecodeErrorEvent(t *testing.T) {
	msg := "invalid arguments to wl_registry@2.bind"
	if len(msg)+1 != 40 {
		t.Fatalf("fixture message length drifted: %d", len(msg)+1)
	}

	enc := NewEncoder()
	enc.PutUint32(1)  // object_id
	enc.PutUint32(15) // code
	if err := enc.PutString(msg); err != nil {
		t.Fatalf("PutString: %v", err)
	}
	body := WordsToBytes(enc.Words())

	d := NewDecoder(body, nil)
	objectID, err := d.Uint32()
	if err != nil {
		t.Fatalf("object_id: %v", err)
	}
	code, err := d.Uint32()
	if err != nil {
		t.Fatalf("code: %v", err)
	}
	gotMsg, err := d.String()
	if err != nil {
		t.Fatalf("message: %v", err)
	}
	if objectID != 1 || code != 15 || gotMsg != msg {
		t.Fatalf("got (%d, %d, %q), want (1, 15, %q)", objectID, code, gotMsg, msg)
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", d.Remaining())
	}
}

func TestRoundTripArgs(t *testing.T) {
	enc := NewEncoder()
	enc.PutUint32(42)
	enc.PutInt32(-7)
	enc.PutEnum(2)
	enc.PutBitfield(0b101)
	if err := enc.PutString("héllo"); err != nil {
		t.Fatal(err)
	}
	if err := enc.PutArray([]byte{1, 2, 3, 4, 5}); err != nil {
		t.Fatal(err)
	}

	body := WordsToBytes(enc.Words())
	d := NewDecoder(body, nil)

	if v, err := d.Uint32(); err != nil || v != 42 {
		t.Fatalf("Uint32 = %d, %v", v, err)
	}
	if v, err := d.Int32(); err != nil || v != -7 {
		t.Fatalf("Int32 = %d, %v", v, err)
	}
	if v, err := d.Enum(nil); err != nil || v != 2 {
		t.Fatalf("Enum = %d, %v", v, err)
	}
	if v, err := d.Bitfield(); err != nil || v != 0b101 {
		t.Fatalf("Bitfield = %d, %v", v, err)
	}
	if v, err := d.String(); err != nil || v != "héllo" {
		t.Fatalf("String = %q, %v", v, err)
	}
	if v, err := d.Array(); err != nil || !bytes.Equal(v, []byte{1, 2, 3, 4, 5}) {
		t.Fatalf("Array = %v, %v", v, err)
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", d.Remaining())
	}
}

func TestDecodeClosedEnumRejectsUnknownTag(t *testing.T) {
	enc := NewEncoder()
	enc.PutEnum(99)
	d := NewDecoder(WordsToBytes(enc.Words()), nil)

	valid := func(v uint32) bool { return v == 0 || v == 1 }
	_, err := d.Enum(valid)
	if kind, ok := KindOf(err); !ok || kind != KindUnknownEnumTag {
		t.Fatalf("err = %v, want KindUnknownEnumTag", err)
	}
}

func TestDecodeTruncatedStreamIsEndOfStream(t *testing.T) {
	d := NewDecoder([]byte{1, 2, 3}, nil)
	_, err := d.Uint32()
	if kind, ok := KindOf(err); !ok || kind != KindEndOfStream {
		t.Fatalf("err = %v, want KindEndOfStream", err)
	}
}

func TestDecodeNeverReadsPastDeclaredSize(t *testing.T) {
	// A truncated string length claims more bytes than are present;
	// the decoder must fail rather than read beyond buf.
	enc := NewEncoder()
	enc.PutUint32(1000) // bogus length, including NUL
	d := NewDecoder(WordsToBytes(enc.Words()), nil)
	_, err := d.String()
	if kind, ok := KindOf(err); !ok || kind != KindEndOfStream {
		t.Fatalf("err = %v, want KindEndOfStream", err)
	}
}

func TestEncodeShortStringPassesLengthGuard(t *testing.T) {
	// PutString rejects len(s)+1 >= 1<<32 with KindStringTooLong; that
	// branch is not exercised here, since reaching it needs a 4GiB
	// string. This test checks only that a short string passes the guard.
	enc := NewEncoder()
	err := enc.PutString("short")
	if err != nil {
		t.Fatalf("unexpected error for short string: %v", err)
	}
}

func equalWords(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
