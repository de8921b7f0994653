package wire

import "encoding/binary"

// WordsToBytes packs words into their little-endian byte representation
// for handing to the socket layer. The wire is used only over a local
// Unix-domain socket, so spec.md's "host endianness" is little-endian
// on every platform this module targets, matching every wire-format
// example in the retrieval pack.
func WordsToBytes(words []uint32) []byte {
	out := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// BytesToWord reads one little-endian word at offset off.
func BytesToWord(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off:])
}
