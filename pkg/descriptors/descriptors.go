package descriptors

import "errors"

var ErrInvalidDescriptor = errors.New("invalid descriptor")

// uint24 reads a 3-byte little-endian value, the encoding UAC uses for
// sample frequencies.
func uint24(buf []byte) uint32 {
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16
}
