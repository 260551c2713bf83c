// Package bitpack moves arbitrary bit ranges between byte buffers.
//
// Bits are addressed by a single index running left to right across the whole
// buffer. How an index maps onto the bits of a byte depends on the buffer's
// Order:
//
//	MSBFirst: bit 0 is the most significant bit of byte 0
//	LSBFirst: bit 0 is the least significant bit of byte 0
//
// Converting a buffer from one order to the other reverses the bits of every
// byte and leaves the logical bit sequence unchanged. The conversion is an
// involution. Convert and Reorder exist for data laid out LSB-first, e.g.
// the bit-reversed buffers produced by other mnemonic implementations; code
// that owns its buffers can work MSBFirst throughout and never call them.
package bitpack

import (
	"errors"
	"fmt"
	"math/bits"
)

// Order selects how bit indexes map onto the bits of a byte.
type Order uint8

const (
	MSBFirst Order = iota
	LSBFirst
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case MSBFirst:
		return "msb-first"
	case LSBFirst:
		return "lsb-first"
	default:
		return fmt.Sprintf("order(%d)", uint8(o))
	}
}

// Bit packing errors.
var (
	ErrInvalidRange = errors.New("invalid bit range")
	ErrShortBuffer  = errors.New("buffer too short")
)

// BytesForBits returns the number of whole bytes needed to hold n bits.
func BytesForBits(n int) int {
	return (n + 7) / 8
}

// Buffer is a fixed-capacity bit-addressable byte buffer.
type Buffer struct {
	buf   []byte
	order Order
}

// New returns a zeroed buffer able to hold at least nbits bits.
func New(nbits int, order Order) *Buffer {
	return &Buffer{buf: make([]byte, BytesForBits(nbits)), order: order}
}

// Wrap returns a buffer backed by b. The buffer shares b's storage.
func Wrap(b []byte, order Order) *Buffer {
	return &Buffer{buf: b, order: order}
}

// Len returns the capacity of the buffer in bits.
func (b *Buffer) Len() int {
	return len(b.buf) * 8
}

// Bytes returns the underlying storage.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Order returns the bit numbering of the buffer.
func (b *Buffer) Order() Order {
	return b.order
}

func (b *Buffer) mask(i int) byte {
	if b.order == LSBFirst {
		return 1 << (i % 8)
	}
	return 0x80 >> (i % 8)
}

// Get reports whether bit i is set. It panics if i is out of range.
func (b *Buffer) Get(i int) bool {
	return b.buf[i/8]&b.mask(i) != 0
}

// Set sets bit i. It panics if i is out of range.
func (b *Buffer) Set(i int) {
	b.buf[i/8] |= b.mask(i)
}

// Clear zeroes every bit of the buffer.
func (b *Buffer) Clear() {
	clear(b.buf)
}

// Convert changes the buffer's bit numbering to order. Every index keeps
// the value it had; only the in-memory byte layout changes.
func (b *Buffer) Convert(order Order) {
	if b.order == order {
		return
	}
	Reorder(b.buf)
	b.order = order
}

// Reorder reverses the bit order of each byte of p in place. Bytes laid out
// for LSBFirst numbering become the same bit sequence in MSBFirst numbering
// and the other way round. Applying it twice restores p.
func Reorder(p []byte) {
	for i := range p {
		p[i] = bits.Reverse8(p[i])
	}
}

// Extract copies bits [from, to) of src into dst starting at bit base.
//
// When rightJustify is set the span is placed at the low end of the smallest
// whole-byte container able to hold it, i.e. it is shifted right by the
// number of unused bits in that container. Only bits in [from, to) of src are
// read and only set bits are written, so dst should be zeroed by the caller
// unless accumulation is wanted.
//
// Example, MSBFirst, range [11, 21):
//
//	src:   01101001 01010010 01010001 11111010
//	left:  10010010 10000000
//	right: 00000010 01001010
func Extract(dst *Buffer, base int, src *Buffer, from, to int, rightJustify bool) error {
	if from < 0 || to <= from || base < 0 {
		return fmt.Errorf("%w: [%d, %d) at %d", ErrInvalidRange, from, to, base)
	}
	if to > src.Len() {
		return fmt.Errorf("%w: source holds %d bits, range ends at %d", ErrShortBuffer, src.Len(), to)
	}

	n := to - from
	pad := 0
	if rightJustify {
		pad = BytesForBits(n)*8 - n
	}
	if end := base + pad + n; end > dst.Len() {
		return fmt.Errorf("%w: destination holds %d bits, need %d", ErrShortBuffer, dst.Len(), end)
	}

	at := base + pad
	for i := from; i < to; i++ {
		if src.Get(i) {
			dst.Set(at)
		}
		at++
	}
	return nil
}
