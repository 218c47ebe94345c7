// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import "github.com/pkg/errors"

// A ChannelRange is an inclusive pair of 16-bit bit indices identifying
// either a pin's location within its owning chip's packed input or output
// bit vector, or a bus slice selector within a connection.
type ChannelRange struct {
	Start uint16
	End   uint16
}

// Size returns the number of bits covered by r.
func (r ChannelRange) Size() int {
	return int(r.End) - int(r.Start) + 1
}

// offset returns a new ChannelRange shifted so that it starts at
// base+rel.Start and ends at base+rel.End.
func (r ChannelRange) offset(base uint16) (ChannelRange, error) {
	start := int(base) + int(r.Start)
	end := int(base) + int(r.End)
	if start > 0xFFFF || end > 0xFFFF {
		return ChannelRange{}, errors.New("channel range overflows 16 bits")
	}
	return ChannelRange{Start: uint16(start), End: uint16(end)}, nil
}

// A Channel is a parsed pin declaration: a name and a bit width. Width
// defaults to 1 for a plain (non-bus) pin.
type Channel struct {
	Name  string
	Width uint16
}
