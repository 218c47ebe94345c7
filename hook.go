// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

// A Hook is a destination address for a bit-slice write: the id of a
// sub-chip (or the owning NativeChip's OutChip sentinel) and the
// ChannelRange within that destination's input (or output, for OutChip)
// vector that should receive the data.
type Hook struct {
	ChipID int
	Range  ChannelRange
}

// A RouteEntry maps a slice of a source output vector (From) to a Hook.
type RouteEntry struct {
	From ChannelRange
	To   Hook
}

// A Router is an ordered list of RouteEntry describing where each bit of a
// produced output vector must be written. Router entries fire in insertion
// order.
type Router []RouteEntry

// genRequests slices src according to each entry's From range and queues
// one write request per entry, in router order.
func (r Router) genRequests(src Bits, queue *[]request) {
	for _, e := range r {
		*queue = append(*queue, request{
			target: e.To.ChipID,
			rng:    e.To.Range,
			data:   src.Slice(e.From),
		})
	}
}

// request is a queued write of a bit slice to a destination: write data
// into the target's input buffer (or the NativeChip's output buffer, for
// the OutChip sentinel) at rng.
type request struct {
	target int
	rng    ChannelRange
	data   Bits
}
