package wlclient

import (
	"net"
	"os"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/bnema/wlwire/wire"
)

// socketpair returns two connected Connections backed by a real
// AF_UNIX SOCK_STREAM socketpair, so SCM_RIGHTS ancillary data can
// travel between them the same way it would over a compositor socket.
// net.Pipe cannot carry ancillary data, so it is not an option here.
func socketpair(t *testing.T) (a, b *Connection) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("Socketpair: %v", err)
	}
	a = wrapFD(t, fds[0])
	b = wrapFD(t, fds[1])
	return a, b
}

func wrapFD(t *testing.T, fd int) *Connection {
	t.Helper()
	f := os.NewFile(uintptr(fd), "socketpair")
	c, err := net.FileConn(f)
	if err != nil {
		t.Fatalf("FileConn: %v", err)
	}
	f.Close()
	uc, ok := c.(*net.UnixConn)
	if !ok {
		t.Fatalf("FileConn did not return a *net.UnixConn")
	}
	return FromUnixConn(uc)
}

type syncRequest struct{ callback uint32 }

func (syncRequest) Opcode() uint16 { return 0 }
func (r syncRequest) EncodeArgs(e *wire.Encoder) error {
	e.PutUint32(r.callback)
	return nil
}

func TestSendRecvRoundTrip(t *testing.T) {
	a, b := socketpair(t)
	defer a.Close()
	defer b.Close()

	if err := a.Send(1, syncRequest{callback: 5}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	header, dec, err := b.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if header.ObjectID != 1 || header.Opcode != 0 {
		t.Fatalf("header = %+v, want object_id=1 opcode=0", header)
	}
	cb, err := dec.Uint32()
	if err != nil {
		t.Fatalf("Uint32: %v", err)
	}
	if cb != 5 {
		t.Fatalf("callback = %d, want 5", cb)
	}
	if dec.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", dec.Remaining())
	}
}

type fdCarryingRequest struct{ fd int }

func (fdCarryingRequest) Opcode() uint16 { return 3 }
func (r fdCarryingRequest) EncodeArgs(e *wire.Encoder) error {
	e.PutFd(r.fd)
	e.PutUint32(0)
	return nil
}

func TestSendRecvCarriesFD(t *testing.T) {
	a, b := socketpair(t)
	defer a.Close()
	defer b.Close()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if err := a.Send(3, fdCarryingRequest{fd: int(w.Fd())}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	_, dec, err := b.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	gotFD, err := dec.Fd()
	if err != nil {
		t.Fatalf("Fd: %v", err)
	}
	defer unix.Close(gotFD)
	if gotFD == int(w.Fd()) {
		t.Fatalf("fd %d was not duplicated across the socket boundary", gotFD)
	}
}

func TestRecvOnOrderlyCloseIsSocketClosed(t *testing.T) {
	a, b := socketpair(t)
	defer b.Close()
	a.Close()

	_, _, err := b.Recv()
	if kind, ok := wire.KindOf(err); !ok || kind != wire.KindSocketClosed {
		t.Fatalf("err kind = %v, want KindSocketClosed", err)
	}
}

func TestSendBufGrowsByDoubling(t *testing.T) {
	a, b := socketpair(t)
	defer a.Close()
	defer b.Close()

	initial := a.SendBufCap()
	if initial != initialBufWords*4 {
		t.Fatalf("initial send buf cap = %d, want %d", initial, initialBufWords*4)
	}

	a.growSendBuf(1000)
	if a.SendBufCap() < 1000 {
		t.Fatalf("send buf cap = %d, want >= 1000", a.SendBufCap())
	}
	if a.SendBufCap()%(initialBufWords*4) != 0 {
		t.Fatalf("send buf cap = %d, want a power-of-two multiple of %d", a.SendBufCap(), initialBufWords*4)
	}
}
