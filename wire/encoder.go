package wire

// Encoder accumulates the argument words and out-of-band file
// descriptors for a single message body, in field declaration order.
// It is the hand-written message records' only dependency on the
// codec: every Put* call maps directly to one spec.md §3 argument type.
type Encoder struct {
	words []uint32
	fds   []int
}

// NewEncoder returns an empty Encoder ready for a new message body.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Words returns the accumulated argument words, not including the
// frame header.
func (e *Encoder) Words() []uint32 { return e.words }

// Fds returns the file descriptors collected from PutFd calls, in the
// order they were put — the same order Connection.Send must hand to
// sendmsg's ancillary data per spec.md I3.
func (e *Encoder) Fds() []int { return e.fds }

// PutUint32 encodes a u32 field: one word.
func (e *Encoder) PutUint32(v uint32) {
	e.words = append(e.words, v)
}

// PutInt32 encodes an i32 field: one word, reinterpreted.
func (e *Encoder) PutInt32(v int32) {
	e.words = append(e.words, uint32(v))
}

// PutEnum encodes an enum(u32) field: one word.
func (e *Encoder) PutEnum(v uint32) {
	e.words = append(e.words, v)
}

// PutBitfield encodes a bitfield(u32) field: one word.
func (e *Encoder) PutBitfield(v uint32) {
	e.words = append(e.words, v)
}

// PutString encodes a NUL-terminated, length-prefixed, word-padded
// string per spec.md I2: the length word counts bytes including the
// trailing NUL, and the payload is zero-padded to a 4-byte boundary.
func (e *Encoder) PutString(s string) error {
	n := uint64(len(s)) + 1
	if n >= 1<<32 {
		return NewError(KindStringTooLong, "wire.Encoder.PutString", nil)
	}
	e.words = append(e.words, uint32(n))
	e.putPaddedBytes(append([]byte(s), 0))
	return nil
}

// PutArray encodes a length-prefixed, word-padded raw byte array per
// spec.md §3 ("array<T> — length-prefixed raw bytes ... padded to a
// 4-byte boundary").
func (e *Encoder) PutArray(b []byte) error {
	if uint64(len(b)) >= 1<<32 {
		return NewError(KindStringTooLong, "wire.Encoder.PutArray", nil)
	}
	e.words = append(e.words, uint32(len(b)))
	e.putPaddedBytes(b)
	return nil
}

// PutFd records a file-descriptor argument. Per spec.md §3, fd fields
// contribute no words to the stream: they travel only in fds.
func (e *Encoder) PutFd(fd int) {
	e.fds = append(e.fds, fd)
}

// putPaddedBytes appends b to the word stream, zero-padded to the next
// 4-byte boundary, by packing 4 bytes per word little-endian.
func (e *Encoder) putPaddedBytes(b []byte) {
	total := len(b)
	pad := (4 - total%4) % 4
	full := total + pad
	for i := 0; i < full; i += 4 {
		var word uint32
		for j := 0; j < 4; j++ {
			idx := i + j
			if idx < total {
				word |= uint32(b[idx]) << (8 * j)
			}
		}
		e.words = append(e.words, word)
	}
}
