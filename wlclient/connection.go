// Package wlclient owns the Unix-domain socket transport for a single
// Wayland connection: frame-level send/recv, growable word buffers,
// and the ancillary-data channel carrying out-of-band file
// descriptors. This is C4 from spec.md §4.4.
package wlclient

import (
	"encoding/binary"
	"errors"
	"io"
	"net"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/bnema/wlwire/wire"
)

// initialBufWords is the starting capacity, in words, of both the
// send and recv scratch buffers, per spec.md's buffer growth policy
// ("doubling, starting at 16 words").
const initialBufWords = 16

// maxAncillaryFDs bounds how many file descriptors a single recvmsg
// call is prepared to receive. Wayland messages carry at most a
// handful of fds (e.g. one keymap fd); this is a generous ceiling, not
// a protocol limit.
const maxAncillaryFDs = 16

// Connection owns a connected Unix-domain stream socket and the two
// growable word buffers spec.md §3 assigns it, plus the FIFO of file
// descriptors received but not yet claimed by a caller.
//
// A Connection is not safe for concurrent use by multiple senders or
// receivers (spec.md §5); it performs no internal locking.
type Connection struct {
	conn *net.UnixConn

	sendBuf []byte
	recvBuf []byte

	fdQueue []int

	logger zerolog.Logger
}

// Option configures a Connection at construction time.
type Option func(*Connection)

// WithLogger attaches a zerolog.Logger for optional debug output. The
// default is zerolog.Nop() — per spec.md §7, "the library performs no
// logging beyond what the integrator configures."
func WithLogger(l zerolog.Logger) Option {
	return func(c *Connection) { c.logger = l }
}

// Connect establishes a Unix-domain stream connection to path. If path
// is empty, it is resolved via DefaultSocketPath.
func Connect(path string, opts ...Option) (*Connection, error) {
	if path == "" {
		p, err := DefaultSocketPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	raw, err := net.Dial("unix", path)
	if err != nil {
		return nil, wire.NewError(wire.KindIO, "wlclient.Connect", err)
	}
	uc, ok := raw.(*net.UnixConn)
	if !ok {
		raw.Close()
		return nil, wire.NewError(wire.KindIO, "wlclient.Connect", errors.New("not a unix socket"))
	}

	c := newConnection(uc, opts...)
	c.logger.Debug().Str("path", path).Msg("wlclient: connected")
	return c, nil
}

// FromUnixConn wraps an already-connected *net.UnixConn as a
// Connection, for callers (and tests) that establish the socket
// themselves — e.g. a socketpair rather than a dial.
func FromUnixConn(conn *net.UnixConn, opts ...Option) *Connection {
	return newConnection(conn, opts...)
}

// newConnection builds a Connection with its send/recv buffers at
// their starting capacity (spec.md §4.4: "starting at 16 words").
func newConnection(conn *net.UnixConn, opts ...Option) *Connection {
	c := &Connection{
		conn:    conn,
		sendBuf: make([]byte, 0, initialBufWords*4),
		recvBuf: make([]byte, 0, initialBufWords*4),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases the underlying socket. Any fds still queued and
// unclaimed are the application's responsibility (spec.md §5); Close
// does not close them.
func (c *Connection) Close() error {
	return c.conn.Close()
}

// Send serializes msg onto objectID and writes it in one sendmsg call,
// attaching any fd arguments as a single SCM_RIGHTS ancillary-data
// block. A message with zero fds uses an empty control region.
func (c *Connection) Send(objectID uint32, msg wire.Encodable) error {
	words, fds, err := wire.Serialize(objectID, msg)
	if err != nil {
		return err
	}

	needed := len(words) * 4
	c.growSendBuf(needed)
	buf := c.sendBuf[:needed]
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}

	var oob []byte
	if len(fds) > 0 {
		oob = unix.UnixRights(fds...)
	}

	if _, _, err := c.conn.WriteMsgUnix(buf, oob, nil); err != nil {
		return wire.NewError(wire.KindIO, "wlclient.Connection.Send", err)
	}
	c.logger.Debug().
		Uint32("object_id", objectID).
		Uint16("opcode", msg.Opcode()).
		Int("fds", len(fds)).
		Msg("wlclient: sent")
	return nil
}

// Recv reads one frame: an 8-byte header via recvmsg, then the
// size-8 body via a second recvmsg, each capable of carrying ancillary
// fds. Any fds received are appended, in arrival order, to the fd
// queue TakeFD drains. The returned Decoder wraps a slice of the
// connection's recv buffer: it is valid only until the next Recv call.
func (c *Connection) Recv() (wire.Header, *wire.Decoder, error) {
	var headerBuf [wire.HeaderSize]byte
	oobBuf := make([]byte, unix.CmsgSpace(maxAncillaryFDs*4))

	n, oobn, _, _, err := c.conn.ReadMsgUnix(headerBuf[:], oobBuf)
	if err != nil {
		return wire.Header{}, nil, wire.NewError(wire.KindIO, "wlclient.Connection.Recv", err)
	}
	if n == 0 {
		return wire.Header{}, nil, wire.NewError(wire.KindSocketClosed, "wlclient.Connection.Recv", io.EOF)
	}
	if n < wire.HeaderSize {
		return wire.Header{}, nil, wire.NewError(wire.KindSocketClosed, "wlclient.Connection.Recv", io.ErrUnexpectedEOF)
	}
	if err := c.collectFds(oobBuf[:oobn]); err != nil {
		return wire.Header{}, nil, err
	}

	header := wire.DecodeHeader(
		wire.BytesToWord(headerBuf[:], 0),
		wire.BytesToWord(headerBuf[:], 4),
	)
	if header.Size < wire.HeaderSize || int(header.Size)%4 != 0 {
		return wire.Header{}, nil, wire.NewError(wire.KindOversizedFrame, "wlclient.Connection.Recv", nil)
	}

	bodyLen := int(header.Size) - wire.HeaderSize
	if bodyLen == 0 {
		return header, wire.NewDecoder(nil, c), nil
	}

	c.growRecvBuf(bodyLen)
	body := c.recvBuf[:bodyLen]

	oobBuf2 := make([]byte, unix.CmsgSpace(maxAncillaryFDs*4))
	bn, oobn2, _, _, err := c.conn.ReadMsgUnix(body, oobBuf2)
	if err != nil {
		return wire.Header{}, nil, wire.NewError(wire.KindIO, "wlclient.Connection.Recv", err)
	}
	if bn < bodyLen {
		return wire.Header{}, nil, wire.NewError(wire.KindSocketClosed, "wlclient.Connection.Recv", io.ErrUnexpectedEOF)
	}
	if err := c.collectFds(oobBuf2[:oobn2]); err != nil {
		return wire.Header{}, nil, err
	}

	c.logger.Debug().
		Uint32("object_id", header.ObjectID).
		Uint16("opcode", header.Opcode).
		Int("body_len", bodyLen).
		Msg("wlclient: received")
	return header, wire.NewDecoder(body, c), nil
}

// TakeFD pops the oldest queued file descriptor, implementing
// wire.FdSource for Decoder.Fd and serving as the public surface named
// in spec.md §6.4.
func (c *Connection) TakeFD() (int, error) {
	if len(c.fdQueue) == 0 {
		return 0, wire.NewError(wire.KindEmptyFdQueue, "wlclient.Connection.TakeFD", nil)
	}
	fd := c.fdQueue[0]
	c.fdQueue = c.fdQueue[1:]
	return fd, nil
}

func (c *Connection) collectFds(oob []byte) error {
	if len(oob) == 0 {
		return nil
	}
	cmsgs, err := unix.ParseSocketControlMessage(oob)
	if err != nil {
		return wire.NewError(wire.KindIO, "wlclient.Connection.collectFds", err)
	}
	for _, cmsg := range cmsgs {
		fds, err := unix.ParseUnixRights(&cmsg)
		if err != nil {
			return wire.NewError(wire.KindIO, "wlclient.Connection.collectFds", err)
		}
		c.fdQueue = append(c.fdQueue, fds...)
	}
	return nil
}

func (c *Connection) growSendBuf(needed int) {
	for cap(c.sendBuf) < needed {
		c.sendBuf = make([]byte, 0, cap(c.sendBuf)*2)
	}
}

func (c *Connection) growRecvBuf(needed int) {
	for cap(c.recvBuf) < needed {
		c.recvBuf = make([]byte, 0, cap(c.recvBuf)*2)
	}
}

// SendBufCap reports the current send scratch-buffer capacity in
// bytes, for tests asserting the doubling growth policy.
func (c *Connection) SendBufCap() int { return cap(c.sendBuf) }

// RecvBufCap reports the current recv scratch-buffer capacity in
// bytes, for tests asserting the doubling growth policy.
func (c *Connection) RecvBufCap() int { return cap(c.recvBuf) }
