// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import "strconv"

// Bits is a packed vector of pin values, indexed the same way as the
// ChannelRanges in an Interface. It plays the role of the BitSlice/BitVec
// pair from the specification: a Bits value is used both as an input
// argument (BitSlice) and as a return value (BitVec) throughout this
// package.
type Bits []bool

// NewBits returns a zeroed Bits vector of the given size.
func NewBits(size int) Bits {
	return make(Bits, size)
}

// Clone returns an independent copy of b.
func (b Bits) Clone() Bits {
	c := make(Bits, len(b))
	copy(c, b)
	return c
}

// Slice returns the sub-vector described by r. It panics if r is out of
// bounds, which is a programmer error (see the package's Eval/Clock
// contract).
func (b Bits) Slice(r ChannelRange) Bits {
	return b[r.Start : r.End+1]
}

// SetSlice overwrites the sub-vector described by r with data. len(data)
// must equal r.Size().
func (b Bits) SetSlice(r ChannelRange, data Bits) {
	copy(b[r.Start:r.End+1], data)
}

// equal reports whether a and b hold the same bits. Lengths always match in
// practice (both sides come from the same chip's output size), but a length
// mismatch is treated as inequality rather than a panic.
func (b Bits) equal(other Bits) bool {
	if len(b) != len(other) {
		return false
	}
	for i, v := range b {
		if v != other[i] {
			return false
		}
	}
	return true
}

// Uint16 packs up to 16 bits of b (LSB first) into a uint16, for tests and
// CLI convenience.
func (b Bits) Uint16() uint16 {
	var v uint16
	for i, bit := range b {
		if i >= 16 {
			break
		}
		if bit {
			v |= 1 << uint(i)
		}
	}
	return v
}

// BitsFromUint16 unpacks the low `size` bits of v (LSB first) into a new
// Bits vector, for tests and CLI convenience.
func BitsFromUint16(v uint16, size int) Bits {
	b := NewBits(size)
	for i := range b {
		b[i] = v&(1<<uint(i)) != 0
	}
	return b
}

// String renders b as a compact string of '0'/'1' characters, MSB first,
// for diagnostics.
func (b Bits) String() string {
	buf := make([]byte, len(b))
	for i, bit := range b {
		c := byte('0')
		if bit {
			c = '1'
		}
		buf[len(b)-1-i] = c
	}
	return string(buf)
}

func (r ChannelRange) String() string {
	if r.Start == r.End {
		return "[" + strconv.Itoa(int(r.Start)) + "]"
	}
	return "[" + strconv.Itoa(int(r.Start)) + ".." + strconv.Itoa(int(r.End)) + "]"
}
