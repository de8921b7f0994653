package desktop

import (
	"net"
	"os"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/bnema/wlwire/wire"
	"github.com/bnema/wlwire/wlclient"
)

func socketpair(t *testing.T) (a, b *wlclient.Connection) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("Socketpair: %v", err)
	}
	wrap := func(fd int) *wlclient.Connection {
		f := os.NewFile(uintptr(fd), "socketpair")
		c, err := net.FileConn(f)
		if err != nil {
			t.Fatalf("FileConn: %v", err)
		}
		f.Close()
		uc, ok := c.(*net.UnixConn)
		if !ok {
			t.Fatalf("not a *net.UnixConn")
		}
		return wlclient.FromUnixConn(uc)
	}
	return wrap(fds[0]), wrap(fds[1])
}

// TestCreatePoolCarriesFD is spec.md §8 boundary scenario 6: a
// wl_shm.create_pool request transfers its fd out-of-band, and the
// receiving end must be able to pull it via Decoder.Fd at the point
// the fd field falls in declaration order.
func TestCreatePoolCarriesFD(t *testing.T) {
	a, b := socketpair(t)
	defer a.Close()
	defer b.Close()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if err := a.Send(4, CreatePool{ID: 5, Fd: int(w.Fd()), Size: 40000}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	header, dec, err := b.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if header.ObjectID != 4 || header.Opcode != 0 {
		t.Fatalf("header = %+v, want object_id=4 opcode=0", header)
	}

	id, err := dec.Uint32()
	if err != nil || id != 5 {
		t.Fatalf("id = %d, err = %v", id, err)
	}
	fd, err := dec.Fd()
	if err != nil {
		t.Fatalf("Fd: %v", err)
	}
	defer unix.Close(fd)
	if fd == int(w.Fd()) {
		t.Fatalf("fd was not duplicated across the socket boundary")
	}
	size, err := dec.Int32()
	if err != nil || size != 40000 {
		t.Fatalf("size = %d, err = %v", size, err)
	}
	if dec.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", dec.Remaining())
	}
}

func TestToplevelConfigureDecodesArrayField(t *testing.T) {
	a, b := socketpair(t)
	defer a.Close()
	defer b.Close()

	type configureEvent struct {
		width, height int32
		states        []byte
	}
	send := func(ev configureEvent) error {
		enc := wire.NewEncoder()
		enc.PutInt32(ev.width)
		enc.PutInt32(ev.height)
		if err := enc.PutArray(ev.states); err != nil {
			return err
		}
		return a.Send(10, rawMessage{opcode: 0, enc: enc})
	}
	if err := send(configureEvent{width: 800, height: 600, states: []byte{2, 0, 0, 0}}); err != nil {
		t.Fatalf("send: %v", err)
	}

	_, dec, err := b.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	ev, err := DecodeToplevelConfigureEvent(dec)
	if err != nil {
		t.Fatalf("DecodeToplevelConfigureEvent: %v", err)
	}
	if ev.Width != 800 || ev.Height != 600 || len(ev.States) != 4 || ev.States[0] != 2 {
		t.Fatalf("ev = %+v", ev)
	}
}

type rawMessage struct {
	opcode uint16
	enc    *wire.Encoder
}

func (r rawMessage) Opcode() uint16 { return r.opcode }
func (r rawMessage) EncodeArgs(e *wire.Encoder) error {
	for _, w := range r.enc.Words() {
		e.PutUint32(w)
	}
	return nil
}
