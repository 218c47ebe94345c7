// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

// A Barrier is the per-sub-chip record owned by a NativeChip: it buffers
// writes destined for one sub-chip's input pins, tracks which of those
// bits are latched (sequential) vs. transparent (combinatorial), and holds
// the outgoing Router for that sub-chip's output.
type Barrier struct {
	inBuffer     Bits
	intermediate Bits
	outBuffer    Bits
	clockMask    Bits // true iff the corresponding input bit is combinatorial
	chip         Chip
	router       Router
}

func newBarrier(chip Chip, clockMask Bits, router Router) *Barrier {
	in := chip.Interface().SizeIn()
	out := chip.Interface().SizeOut()
	return &Barrier{
		inBuffer:     NewBits(in),
		intermediate: NewBits(in),
		outBuffer:    NewBits(out),
		clockMask:    clockMask,
		chip:         chip,
		router:       router,
	}
}

// accept copies data into the barrier's input buffer at rng.
func (b *Barrier) accept(rng ChannelRange, data Bits) {
	b.inBuffer.SetSlice(rng, data)
}

// evalStep latches combinatorial input bits into intermediate (sequential
// bits are held at their previous value until a clock tick), runs the
// sub-chip's Eval, and queues the resulting output routes -- but only if
// the output actually changed. This change-gating is what stops a cyclic
// wiring (a part's output feeding back, through other parts, into one of
// its own inputs) from re-queuing itself forever: once a barrier's
// recomputed output stops differing from its last one, the cascade through
// it dies out instead of bouncing indefinitely.
func (b *Barrier) evalStep(queue *[]request) {
	for i, v := range b.inBuffer {
		if b.clockMask[i] {
			b.intermediate[i] = v
		}
	}
	out := b.chip.Eval(b.intermediate)
	if out.equal(b.outBuffer) {
		return
	}
	b.outBuffer = out
	b.router.genRequests(b.outBuffer, queue)
}

// clockStep latches the whole input buffer into intermediate regardless of
// clock_mask, then runs the sub-chip's Clock (which may change latched
// state) and queues the resulting output routes, subject to the same
// change-gating as evalStep.
func (b *Barrier) clockStep(queue *[]request) {
	copy(b.intermediate, b.inBuffer)
	out := b.chip.Clock(b.intermediate)
	if out.equal(b.outBuffer) {
		return
	}
	b.outBuffer = out
	b.router.genRequests(b.outBuffer, queue)
}

func (b *Barrier) clone() *Barrier {
	return &Barrier{
		inBuffer:     b.inBuffer.Clone(),
		intermediate: b.intermediate.Clone(),
		outBuffer:    b.outBuffer.Clone(),
		clockMask:    b.clockMask,
		chip:         b.chip.Clone(),
		router:       b.router,
	}
}
