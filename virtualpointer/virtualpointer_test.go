package virtualpointer

import (
	"net"
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/bnema/wlwire/idpool"
	"github.com/bnema/wlwire/protocol/vinput"
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
		uc := c.(*net.UnixConn)
		return wlclient.FromUnixConn(uc)
	}
	return wrap(fds[0]), wrap(fds[1])
}

func TestCreatePointerSendsRequest(t *testing.T) {
	client, server := socketpair(t)
	defer client.Close()
	defer server.Close()

	pool := idpool.New()
	pool.Create() // registry, occupies 2
	mgr := NewManager(client, pool, 3)

	ptr, err := mgr.CreatePointer(7)
	if err != nil {
		t.Fatalf("CreatePointer: %v", err)
	}

	header, dec, err := server.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if header.ObjectID != 3 || header.Opcode != 0 {
		t.Fatalf("header = %+v, want object_id=3 opcode=0", header)
	}
	seat, err := dec.Uint32()
	if err != nil || seat != 7 {
		t.Fatalf("seat = %d, err = %v", seat, err)
	}
	id, err := dec.Uint32()
	if err != nil || id != ptr.objectID {
		t.Fatalf("id = %d, want %d, err = %v", id, ptr.objectID, err)
	}
}

func TestMoveRelativeSendsMotionThenFrame(t *testing.T) {
	client, server := socketpair(t)
	defer client.Close()
	defer server.Close()

	ptr := &Pointer{conn: client, pool: idpool.New(), objectID: 4}
	go func() {
		if err := ptr.MoveRelative(1.5, -2.5); err != nil {
			t.Errorf("MoveRelative: %v", err)
		}
	}()

	header, dec, err := server.Recv()
	if err != nil {
		t.Fatalf("Recv motion: %v", err)
	}
	if header.Opcode != 0 {
		t.Fatalf("opcode = %d, want 0 (motion)", header.Opcode)
	}
	if _, err := dec.Uint32(); err != nil { // time
		t.Fatalf("time: %v", err)
	}
	dx, err := dec.Int32()
	if err != nil {
		t.Fatalf("dx: %v", err)
	}
	if dx != int32(vinput.FixedFromFloat64(1.5)) {
		t.Fatalf("dx = %d, want %d", dx, int32(vinput.FixedFromFloat64(1.5)))
	}

	header, _, err = server.Recv()
	if err != nil {
		t.Fatalf("Recv frame: %v", err)
	}
	if header.Opcode != 4 {
		t.Fatalf("opcode = %d, want 4 (frame)", header.Opcode)
	}
}

func TestLeftClickPressesThenReleases(t *testing.T) {
	client, server := socketpair(t)
	defer client.Close()
	defer server.Close()

	ptr := &Pointer{conn: client, pool: idpool.New(), objectID: 4}
	go func() {
		if err := ptr.LeftClick(); err != nil {
			t.Errorf("LeftClick: %v", err)
		}
	}()

	wantStates := []uint32{uint32(ButtonStatePressed), uint32(ButtonStateReleased)}
	for i, want := range wantStates {
		header, dec, err := server.Recv()
		if err != nil {
			t.Fatalf("Recv %d: %v", i, err)
		}
		if header.Opcode != 2 {
			t.Fatalf("Recv %d: opcode = %d, want 2 (button)", i, header.Opcode)
		}
		if _, err := dec.Uint32(); err != nil { // time
			t.Fatalf("Recv %d: time: %v", i, err)
		}
		button, err := dec.Uint32()
		if err != nil || button != BtnLeft {
			t.Fatalf("Recv %d: button = %d, want %d, err = %v", i, button, BtnLeft, err)
		}
		state, err := dec.Enum(nil)
		if err != nil || state != want {
			t.Fatalf("Recv %d: state = %d, want %d, err = %v", i, state, want, err)
		}
	}

	header, _, err := server.Recv()
	if err != nil {
		t.Fatalf("Recv frame: %v", err)
	}
	if header.Opcode != 4 {
		t.Fatalf("opcode = %d, want 4 (frame)", header.Opcode)
	}
}

func TestScrollVerticalEncodesAxis(t *testing.T) {
	client, server := socketpair(t)
	defer client.Close()
	defer server.Close()

	ptr := &Pointer{conn: client, pool: idpool.New(), objectID: 4}
	go func() {
		if err := ptr.ScrollVertical(3.0); err != nil {
			t.Errorf("ScrollVertical: %v", err)
		}
	}()

	header, dec, err := server.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if header.Opcode != 3 {
		t.Fatalf("opcode = %d, want 3 (axis)", header.Opcode)
	}
	if _, err := dec.Uint32(); err != nil { // time
		t.Fatalf("time: %v", err)
	}
	axis, err := dec.Enum(nil)
	if err != nil || axis != uint32(AxisVertical) {
		t.Fatalf("axis = %d, want %d, err = %v", axis, AxisVertical, err)
	}
}

func TestDestroyRecyclesObjectID(t *testing.T) {
	client, server := socketpair(t)
	defer client.Close()
	defer server.Close()

	pool := idpool.New()
	ptr := &Pointer{conn: client, pool: pool, objectID: pool.Create()}
	if err := ptr.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	header, _, err := server.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if header.Opcode != 8 {
		t.Fatalf("opcode = %d, want 8 (destroy)", header.Opcode)
	}

	reused := pool.Create()
	if reused != ptr.objectID {
		t.Fatalf("reused = %d, want recycled id %d", reused, ptr.objectID)
	}
}

func TestMotionUsesWallClockTime(t *testing.T) {
	client, server := socketpair(t)
	defer client.Close()
	defer server.Close()

	ptr := &Pointer{conn: client, pool: idpool.New(), objectID: 4}
	before := timeMs(time.Now())
	go func() {
		if err := ptr.Motion(time.Now(), 0, 0); err != nil {
			t.Errorf("Motion: %v", err)
		}
	}()

	_, dec, err := server.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	ts, err := dec.Uint32()
	if err != nil {
		t.Fatalf("time: %v", err)
	}
	after := timeMs(time.Now())
	if ts < before || ts > after {
		t.Fatalf("time = %d, want between %d and %d", ts, before, after)
	}
}
