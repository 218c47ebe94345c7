// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import "testing"

const andHDL = `CHIP And2 {
	IN a, b;
	OUT out;

	PARTS:
	Nand(a=a, b=b, out=w1);
	Nand(a=w1, b=w1, out=out);
}
`

func newBuiltins(t *testing.T) *ChipBuilder {
	t.Helper()
	b, err := NewChipBuilder().WithBuiltins()
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestRegisterHDLNeedsMissingParts(t *testing.T) {
	b := NewChipBuilder() // no Nand registered yet
	_, err := b.RegisterHDL(andHDL)
	ne, ok := err.(*NeedsError)
	if !ok {
		t.Fatalf("err = %v (%T), want *NeedsError", err, err)
	}
	if len(ne.Names) != 1 || ne.Names[0] != "Nand" {
		t.Fatalf("NeedsError.Names = %v, want [Nand]", ne.Names)
	}
}

func TestRegisterHDLRejectsDuplicateName(t *testing.T) {
	b := newBuiltins(t)
	if _, err := b.RegisterHDL(andHDL); err != nil {
		t.Fatal(err)
	}
	_, err := b.RegisterHDL(andHDL)
	if _, ok := err.(*RebuiltError); !ok {
		t.Fatalf("err = %v (%T), want *RebuiltError", err, err)
	}
}

func TestResolveChipUnknownName(t *testing.T) {
	b := newBuiltins(t)
	_, err := b.ResolveChip("Nope")
	if _, ok := err.(*ChipNotFoundError); !ok {
		t.Fatalf("err = %v (%T), want *ChipNotFoundError", err, err)
	}
}

func TestAnd2EndToEnd(t *testing.T) {
	b := newBuiltins(t)
	if _, err := b.RegisterHDL(andHDL); err != nil {
		t.Fatal(err)
	}
	and2, err := b.ResolveChip("And2")
	if err != nil {
		t.Fatal(err)
	}
	td := []struct {
		a, b, want bool
	}{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	}
	for _, d := range td {
		got := and2.Eval(Bits{d.a, d.b})
		if got[0] != d.want {
			t.Errorf("And2(%v,%v) = %v, want %v", d.a, d.b, got[0], d.want)
		}
	}
}

func TestResolveChipReturnsIndependentInstances(t *testing.T) {
	b := newBuiltins(t)
	if _, err := b.RegisterHDL(`CHIP Latch {
	IN d;
	OUT q;

	PARTS:
	DFF(in=d, out=q);
}
`); err != nil {
		t.Fatal(err)
	}
	a, err := b.ResolveChip("Latch")
	if err != nil {
		t.Fatal(err)
	}
	c, err := b.ResolveChip("Latch")
	if err != nil {
		t.Fatal(err)
	}
	a.Clock(Bits{true})
	if got := c.Eval(Bits{false}); got[0] != false {
		t.Fatalf("second ResolveChip instance shares state with the first: got %v", got[0])
	}
}

func TestNames(t *testing.T) {
	b := newBuiltins(t)
	names := b.Names()
	if len(names) != 2 || names[0] != "Nand" || names[1] != "DFF" {
		t.Fatalf("Names() = %v, want [Nand DFF]", names)
	}
}
