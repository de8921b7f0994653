package wire

// HeaderSize is the byte length of every frame's fixed header: a u32
// object id followed by a u32 holding (size<<16)|opcode.
const HeaderSize = 8

// Header is the decoded form of a frame's 8-byte header.
type Header struct {
	ObjectID uint32
	Size     uint16
	Opcode   uint16
}

// Message is implemented by every request/event argument
// record so the codec can recover its opcode without a type switch.
type Message interface {
	Opcode() uint16
}

// Encodable is a Message that knows how to lay its own fields into an
// Encoder, in declaration order, per spec.md §4.2.
type Encodable interface {
	Message
	EncodeArgs(*Encoder) error
}

// Serialize builds the full wire frame (header + argument words) for a
// message bound to objectID, along with the file descriptors, if any,
// that must ride the same sendmsg's ancillary data.
//
// This is C2's serialize operation from spec.md §4.2.
func Serialize(objectID uint32, msg Encodable) (words []uint32, fds []int, err error) {
	enc := NewEncoder()
	if err := msg.EncodeArgs(enc); err != nil {
		return nil, nil, err
	}
	argWords := enc.Words()

	size := HeaderSize + 4*len(argWords)
	if size > 0xffff {
		return nil, nil, NewError(KindOverflowBuffer, "wire.Serialize", nil)
	}

	out := make([]uint32, 0, 2+len(argWords))
	// Wire convention (confirmed by spec.md §8 boundary scenario 1):
	// the second header word packs size in the high 16 bits and opcode
	// in the low 16 bits — (size<<16)|opcode, not the reverse.
	out = append(out, objectID, (uint32(size)<<16)|uint32(msg.Opcode()))
	out = append(out, argWords...)
	return out, enc.Fds(), nil
}

// DecodeHeader parses the first two words of a frame.
func DecodeHeader(objectID, sizeOpcode uint32) Header {
	return Header{
		ObjectID: objectID,
		Size:     uint16(sizeOpcode >> 16),
		Opcode:   uint16(sizeOpcode & 0xffff),
	}
}
