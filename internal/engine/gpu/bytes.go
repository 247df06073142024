package gpu

import (
	"encoding/binary"
	"math"
)

// Float32Bytes packs values as little-endian IEEE 754 for upload.
func Float32Bytes(values []float32) []byte {
	b := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b
}

// Uint16Bytes packs indices as little-endian for an IndexUint16 buffer.
func Uint16Bytes(values []uint16) []byte {
	b := make([]byte, len(values)*2)
	for i, v := range values {
		binary.LittleEndian.PutUint16(b[i*2:], v)
	}
	return b
}
