package core

import (
	"reflect"
	"testing"

	"github.com/bnema/wlwire/wire"
)

func TestSyncEncodesAsOpcode0Scenario(t *testing.T) {
	// This is spec.md §8 boundary scenario 1: wl_display.sync bound to
	// object 1 with callback id 3 serializes to [1, (12<<16)|0, 3].
	words, fds, err := wire.Serialize(1, Sync{Callback: 3})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := []uint32{1, (12 << 16) | 0, 3}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("words = %v, want %v", words, want)
	}
	if len(fds) != 0 {
		t.Fatalf("fds = %v, want none", fds)
	}
}

func TestBindEncodesInterfaceString(t *testing.T) {
	words, _, err := wire.Serialize(2, Bind{Name: 1, Interface: "wl_shm", Version: 1, ID: 5})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	// header(2) + name(1) + strlen(1) + "wl_s"/"hm\0\0"(2) + version(1) + id(1) = 8 words
	if len(words) != 8 {
		t.Fatalf("len(words) = %d, want 8", len(words))
	}
}

func TestDecodeGlobalEventRoundTrip(t *testing.T) {
	words, _, err := wire.Serialize(2, Bind{Name: 1, Interface: "wl_shm", Version: 1, ID: 5})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	body := wordsToBytes(words[2:])
	dec := wire.NewDecoder(body, nil)
	ev, err := DecodeGlobalEvent(dec)
	if err != nil {
		t.Fatalf("DecodeGlobalEvent: %v", err)
	}
	if ev.Name != 1 || ev.Interface != "wl_shm" || ev.Version != 1 {
		t.Fatalf("ev = %+v, want name=1 interface=wl_shm version=1", ev)
	}
}

func TestDecodeErrorEventMatchesBoundaryScenario(t *testing.T) {
	// spec.md §8 boundary scenario 3's error event: object 1, code 15,
	// and the 40-byte (NUL included) message "invalid arguments to
	// wl_registry@2.bind", a 13-word (52-byte) body.
	msg := "invalid arguments to wl_registry@2.bind"
	words := []uint32{1, 15}
	strWords, _, err := wire.Serialize(0, stringOnly{s: msg})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	words = append(words, strWords[2:]...)
	body := wordsToBytes(words)

	dec := wire.NewDecoder(body, nil)
	ev, err := DecodeErrorEvent(dec)
	if err != nil {
		t.Fatalf("DecodeErrorEvent: %v", err)
	}
	if ev.ObjectID != 1 || ev.Code != 15 || ev.Message != msg {
		t.Fatalf("ev = %+v", ev)
	}
	if dec.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", dec.Remaining())
	}
}

type stringOnly struct{ s string }

func (stringOnly) Opcode() uint16 { return 0 }
func (r stringOnly) EncodeArgs(e *wire.Encoder) error { return e.PutString(r.s) }

func wordsToBytes(words []uint32) []byte {
	b := make([]byte, 0, len(words)*4)
	for _, w := range words {
		b = append(b, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	return b
}
