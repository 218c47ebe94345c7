// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

// nandIface and dffIface are shared by every Nand/DFF instance: neither
// chip carries per-instance interface state.
var (
	nandIface = mustIface(NewInterface(nil, []Channel{{Name: "a", Width: 1}, {Name: "b", Width: 1}}, nil, []Channel{{Name: "out", Width: 1}}))
	dffIface  = mustIface(NewInterface([]Channel{{Name: "in", Width: 1}}, nil, []Channel{{Name: "out", Width: 1}}, nil))
)

func mustIface(i Interface, err error) Interface {
	if err != nil {
		panic(err)
	}
	return i
}

// nandChip is the sole mandatory primitive: out = !(a && b). It carries no
// state, so Clone is a no-op: sharing the single package-level value across
// every Nand instance is safe.
type nandChip struct{}

var theNand Chip = nandChip{}

// Nand returns the built-in Nand gate.
func Nand() Chip { return theNand }

func (nandChip) Interface() Interface { return nandIface }

func (nandChip) Eval(bits Bits) Bits {
	return Bits{!(bits[0] && bits[1])}
}

func (c nandChip) Clock(bits Bits) Bits { return c.Eval(bits) }

func (nandChip) IsClocked() bool { return false }

func (c nandChip) Clone() Chip { return c }

// dffChip is the data flip-flop: eval([x]) = [state] (state is unaffected by
// Eval), clock([x]) sets state := x and returns [state] (i.e. the new
// state, per the specification's redefinition of the classic
// out(t) = in(t-1) DFF in terms of this engine's eval/clock protocol).
type dffChip struct {
	state bool
}

// DFF returns a fresh built-in data flip-flop, initially holding false.
func DFF() Chip { return &dffChip{} }

func (d *dffChip) Interface() Interface { return dffIface }

func (d *dffChip) Eval(bits Bits) Bits { return Bits{d.state} }

func (d *dffChip) Clock(bits Bits) Bits {
	d.state = bits[0]
	return Bits{d.state}
}

func (d *dffChip) IsClocked() bool { return true }

func (d *dffChip) Clone() Chip {
	c := *d
	return &c
}
