// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

// outChipID is the reserved id of the synthetic output sink within a
// NativeChip's registry. It is never a key of NativeChip.registry.
const outChipID = -1

// NativeChip is the compiled executable form of a Native ChipRepr: a graph
// of sub-chip Barriers wired together by Routers, plus an input router
// mapping the chip's own top-level input bits to initial write requests.
//
// NativeChip implements Chip, so native chips can themselves be used as
// sub-chips of an enclosing NativeChip, exactly as the specification
// requires.
type NativeChip struct {
	iface    Interface
	registry map[int]*Barrier
	inRouter Router
	outChip  int
	outBuf   Bits
	clocked  bool

	queue []request // reused across Eval/Clock calls, always empty at rest
}

var _ Chip = (*NativeChip)(nil)

// Interface implements Chip.
func (n *NativeChip) Interface() Interface { return n.iface }

// IsClocked implements Chip.
func (n *NativeChip) IsClocked() bool { return n.clocked }

// Clone implements Chip: every Barrier (and its wrapped Chip) is deep
// copied, so the clone shares no mutable state with n.
func (n *NativeChip) Clone() Chip {
	c := &NativeChip{
		iface:    n.iface,
		registry: make(map[int]*Barrier, len(n.registry)),
		inRouter: n.inRouter,
		outChip:  n.outChip,
		outBuf:   n.outBuf.Clone(),
		clocked:  n.clocked,
	}
	for id, b := range n.registry {
		c.registry[id] = b.clone()
	}
	return c
}

// Eval implements Chip: combinatorial propagation to fixpoint. See run and
// Barrier.evalStep for the request-queue protocol.
func (n *NativeChip) Eval(bits Bits) Bits {
	n.inRouter.genRequests(bits, &n.queue)
	n.run(false)
	return n.outBuf.Clone()
}

// Clock implements Chip: sequential state advance followed by
// re-propagation.
func (n *NativeChip) Clock(bits Bits) Bits {
	n.inRouter.genRequests(bits, &n.queue)
	n.run(true)
	return n.outBuf.Clone()
}

// run drains the request queue, dispatching each request to its target
// Barrier (or, for the output sink, directly into outBuf). It must leave
// n.queue empty on return -- the queue only ever holds state for the
// duration of a single Eval/Clock call.
func (n *NativeChip) run(tick bool) {
	for len(n.queue) > 0 {
		r := n.queue[0]
		n.queue = n.queue[1:]
		if r.target == n.outChip {
			n.outBuf.SetSlice(r.rng, r.data)
			continue
		}
		b := n.registry[r.target]
		b.accept(r.rng, r.data)
		if tick {
			b.clockStep(&n.queue)
		} else {
			b.evalStep(&n.queue)
		}
	}
}
