// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import "github.com/pkg/errors"

// Interface describes a chip's pin layout: four disjoint name->ChannelRange
// mappings (combinatorial/sequential, input/output). Ranges within each
// half (input pins vs. output pins) partition [0, SizeIn()) / [0,
// SizeOut()) with no gaps and no overlaps: sequential pins occupy
// [0, seqSize) and combinatorial pins occupy [seqSize, totalSize).
type Interface struct {
	CombIn  map[string]ChannelRange
	CombOut map[string]ChannelRange
	SeqIn   map[string]ChannelRange
	SeqOut  map[string]ChannelRange

	sizeIn  int
	sizeOut int
}

// NewInterface builds an Interface from ordered input/output channel lists,
// assigning bit indices left to right: sequential pins first, then
// combinatorial pins, as described on Interface.
func NewInterface(seqIn, combIn, seqOut, combOut []Channel) (Interface, error) {
	iface := Interface{
		CombIn:  make(map[string]ChannelRange, len(combIn)),
		CombOut: make(map[string]ChannelRange, len(combOut)),
		SeqIn:   make(map[string]ChannelRange, len(seqIn)),
		SeqOut:  make(map[string]ChannelRange, len(seqOut)),
	}
	var off uint16
	var err error
	if off, err = assign(iface.SeqIn, seqIn, 0); err != nil {
		return Interface{}, err
	}
	if off, err = assign(iface.CombIn, combIn, off); err != nil {
		return Interface{}, err
	}
	iface.sizeIn = int(off)

	off = 0
	if off, err = assign(iface.SeqOut, seqOut, 0); err != nil {
		return Interface{}, err
	}
	if off, err = assign(iface.CombOut, combOut, off); err != nil {
		return Interface{}, err
	}
	iface.sizeOut = int(off)
	return iface, nil
}

func assign(m map[string]ChannelRange, chans []Channel, start uint16) (uint16, error) {
	off := start
	for _, c := range chans {
		if c.Width == 0 {
			return 0, errors.Errorf("pin %q has zero width", c.Name)
		}
		if _, dup := m[c.Name]; dup {
			return 0, errors.Errorf("duplicate pin name %q", c.Name)
		}
		end := int(off) + int(c.Width) - 1
		if end > 0xFFFF {
			return 0, errors.Errorf("pin %q overflows the 16-bit channel space", c.Name)
		}
		m[c.Name] = ChannelRange{Start: off, End: uint16(end)}
		off = uint16(end + 1)
	}
	return off, nil
}

// SizeIn returns the total width of the chip's packed input bit vector.
func (i Interface) SizeIn() int { return i.sizeIn }

// SizeOut returns the total width of the chip's packed output bit vector.
func (i Interface) SizeOut() int { return i.sizeOut }

// Clocked reports whether this chip has any sequential pin.
func (i Interface) Clocked() bool {
	return len(i.SeqIn) > 0 || len(i.SeqOut) > 0
}

// IsInputPin reports whether name is one of this chip's input pins
// (combinatorial or sequential).
func (i Interface) IsInputPin(name string) bool {
	if _, ok := i.CombIn[name]; ok {
		return true
	}
	_, ok := i.SeqIn[name]
	return ok
}

// RealRange resolves a pin name with an optional relative sub-range to an
// absolute ChannelRange within this interface's input or output vector. If
// rel is nil the pin's full range is returned.
func (i Interface) RealRange(name string, rel *ChannelRange) (ChannelRange, error) {
	pin, ok := i.lookup(name)
	if !ok {
		return ChannelRange{}, errors.Errorf("pin %q not found", name)
	}
	if rel == nil {
		return pin, nil
	}
	if rel.Size() > pin.Size() {
		return ChannelRange{}, errors.Errorf("range %v exceeds the width of pin %q (%d bits)", *rel, name, pin.Size())
	}
	return rel.offset(pin.Start)
}

func (i Interface) lookup(name string) (ChannelRange, bool) {
	if r, ok := i.CombIn[name]; ok {
		return r, true
	}
	if r, ok := i.SeqIn[name]; ok {
		return r, true
	}
	if r, ok := i.CombOut[name]; ok {
		return r, true
	}
	if r, ok := i.SeqOut[name]; ok {
		return r, true
	}
	return ChannelRange{}, false
}
