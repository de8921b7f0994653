package wire

// FdSource supplies file descriptors pulled off a connection's
// ancillary-data queue, in arrival order. wlclient.Connection
// implements it; Decoder.Fd calls through to it so that decoding an
// fd-bearing event pulls the fd at exactly the right point in field
// order, per spec.md §4.4 ("take_fd... once per fd, in field order").
type FdSource interface {
	TakeFD() (int, error)
}

// Decoder walks a message body word by word. Arrays are returned as
// subslices of buf: per spec.md's Design Notes, these are borrowed
// views valid only until the next Connection.Recv overwrites the
// underlying buffer. Strings are copied out of buf.
type Decoder struct {
	buf []byte
	pos int
	fds FdSource
}

// NewDecoder wraps buf (the argument bytes of one frame, i.e. the body
// following the 8-byte header) for sequential decoding. fds may be nil
// if the caller knows the message carries no fd fields.
func NewDecoder(buf []byte, fds FdSource) *Decoder {
	return &Decoder{buf: buf, fds: fds}
}

func (d *Decoder) word() (uint32, error) {
	if d.pos+4 > len(d.buf) {
		return 0, NewError(KindEndOfStream, "wire.Decoder", nil)
	}
	v := uint32(d.buf[d.pos]) | uint32(d.buf[d.pos+1])<<8 |
		uint32(d.buf[d.pos+2])<<16 | uint32(d.buf[d.pos+3])<<24
	d.pos += 4
	return v, nil
}

// Uint32 decodes a u32 field.
func (d *Decoder) Uint32() (uint32, error) { return d.word() }

// Int32 decodes an i32 field.
func (d *Decoder) Int32() (int32, error) {
	v, err := d.word()
	return int32(v), err
}

// Bitfield decodes a bitfield(u32) field.
func (d *Decoder) Bitfield() (uint32, error) { return d.word() }

// Enum decodes an enum(u32) field. A non-nil valid closes the enum:
// any tag it rejects becomes KindUnknownEnumTag. Pass nil for an open
// enum, which must accept any 32-bit value per spec.md §3.
func (d *Decoder) Enum(valid func(uint32) bool) (uint32, error) {
	v, err := d.word()
	if err != nil {
		return 0, err
	}
	if valid != nil && !valid(v) {
		return 0, NewError(KindUnknownEnumTag, "wire.Decoder.Enum", nil)
	}
	return v, nil
}

// String decodes a length-prefixed NUL-terminated string per spec.md
// I2, returning it without the trailing NUL. The returned string
// does not share storage with buf (its bytes are copied once at the
// `string(...)` conversion — zero-copy is not
// available to an idiomatic Go decoder without unsafe, so this takes
// the allocation spec.md's Design Notes call "acceptable at a small
// cost").
func (d *Decoder) String() (string, error) {
	n, err := d.word()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", NewError(KindEndOfStream, "wire.Decoder.String", nil)
	}
	pad := (4 - int(n)%4) % 4
	needed := int(n) + pad
	if needed < 0 || d.pos+needed > len(d.buf) {
		return "", NewError(KindEndOfStream, "wire.Decoder.String", nil)
	}
	s := string(d.buf[d.pos : d.pos+int(n)-1])
	d.pos += needed
	return s, nil
}

// Array decodes a length-prefixed raw byte array per spec.md §3,
// returning a zero-copy subslice of buf.
func (d *Decoder) Array() ([]byte, error) {
	n, err := d.word()
	if err != nil {
		return nil, err
	}
	pad := (4 - int(n)%4) % 4
	needed := int(n) + pad
	if needed < 0 || d.pos+needed > len(d.buf) {
		return nil, NewError(KindEndOfStream, "wire.Decoder.Array", nil)
	}
	b := d.buf[d.pos : d.pos+int(n)]
	d.pos += needed
	return b, nil
}

// Fd pulls the next queued file descriptor. Callers must invoke it
// once per fd field, in declaration order, matching spec.md I3.
func (d *Decoder) Fd() (int, error) {
	if d.fds == nil {
		return 0, NewError(KindEmptyFdQueue, "wire.Decoder.Fd", nil)
	}
	return d.fds.TakeFD()
}

// Remaining reports how many bytes are left undecoded in the body —
// used by the fuzzable property in spec.md §8 to assert decoding never
// reads past the declared frame size.
func (d *Decoder) Remaining() int { return len(d.buf) - d.pos }
