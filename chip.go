// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

// A Chip is the minimal capability set shared by primitive (built-in) and
// native (parts-graph) chips: the engine treats sub-chips uniformly through
// this interface, exactly as a NativeChip's own Barriers hold a Chip
// regardless of whether it wraps another NativeChip or a primitive.
//
// Eval and Clock must not retain the Bits passed to them beyond the call,
// and must not be called concurrently on the same Chip. Two independently
// Cloned chips may
// safely be driven from different goroutines.
type Chip interface {
	// Interface returns this chip's pin layout.
	Interface() Interface
	// Eval computes the chip's output for the given combinatorial input,
	// without advancing any sequential state. len(bits) must equal
	// Interface().SizeIn(); the returned Bits has length Interface().SizeOut().
	Eval(bits Bits) Bits
	// Clock advances any sequential state using the given input, then
	// re-evaluates outputs. Same length contract as Eval.
	Clock(bits Bits) Bits
	// IsClocked reports whether this chip (or any of its sub-chips,
	// transitively) contains sequential state.
	IsClocked() bool
	// Clone returns an independent copy of this chip with its own
	// sequential state, sharing no mutable state with the original.
	Clone() Chip
}
