// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import "testing"

func TestElaborateNoSource(t *testing.T) {
	b := newBuiltins(t)
	_, err := b.RegisterHDL(`CHIP Bad {
	IN a;
	OUT out;

	PARTS:
	Nand(a=w, b=w, out=out);
}
`)
	if _, ok := err.(*NoSourceError); !ok {
		t.Fatalf("err = %v (%T), want *NoSourceError", err, err)
	}
}

func TestElaborateConflictingSources(t *testing.T) {
	b := newBuiltins(t)
	_, err := b.RegisterHDL(`CHIP Bad {
	IN a, b;
	OUT out;

	PARTS:
	Nand(a=a, b=a, out=w);
	Nand(a=b, b=b, out=w);
	Nand(a=w, b=w, out=out);
}
`)
	if _, ok := err.(*ConflictingSourcesError); !ok {
		t.Fatalf("err = %v (%T), want *ConflictingSourcesError", err, err)
	}
}

func TestElaboratePinNotFound(t *testing.T) {
	b := newBuiltins(t)
	_, err := b.RegisterHDL(`CHIP Bad {
	IN a, b;
	OUT out;

	PARTS:
	Nand(a=a, bogus=b, out=out);
}
`)
	if _, ok := err.(*PinNotFoundError); !ok {
		t.Fatalf("err = %v (%T), want *PinNotFoundError", err, err)
	}
}

// A top-level output pin can only ever be written by a part's output; it
// cannot be read back as a source for another part's input.
func TestElaborateOutputPinNotReadable(t *testing.T) {
	b := newBuiltins(t)
	_, err := b.RegisterHDL(`CHIP Bad {
	IN a;
	OUT out, out2;

	PARTS:
	Nand(a=a, b=a, out=out);
	Nand(a=out, b=out, out=out2);
}
`)
	if err == nil {
		t.Fatal("expected a direction-mismatch error, got nil")
	}
}

// A bus sub-range applied to a real top-level pin must still fit that pin's
// width: a mismatch here is a genuine elaboration error, not a signal to
// fall back to treating the reference as a fresh internal wire.
func TestElaborateTopPinBusRangeMismatch(t *testing.T) {
	b := newBuiltins(t)
	_, err := b.RegisterHDL(`CHIP Bad {
	IN a;
	OUT out;

	PARTS:
	Nand(a=a, b=a, out=out[0..2]);
}
`)
	if err == nil {
		t.Fatal("expected a width-mismatch elaboration error, got nil")
	}
}

func TestElaborateNumberDriverRejected(t *testing.T) {
	b := newBuiltins(t)
	_, err := b.RegisterHDL(`CHIP Bad {
	IN a;
	OUT out;

	PARTS:
	Nand(a=a, b=1, out=out);
}
`)
	if _, ok := err.(*ValuesNotSupportedError); !ok {
		t.Fatalf("err = %v (%T), want *ValuesNotSupportedError", err, err)
	}
}

func TestElaborateConstantDriver(t *testing.T) {
	b := newBuiltins(t)
	if _, err := b.RegisterHDL(`CHIP AlwaysLow {
	IN a;
	OUT out;

	PARTS:
	Nand(a=true, b=true, out=out);
}
`); err != nil {
		t.Fatal(err)
	}
	chip, err := b.ResolveChip("AlwaysLow")
	if err != nil {
		t.Fatal(err)
	}
	if got := chip.Eval(Bits{false}); got[0] != false {
		t.Fatalf("AlwaysLow = %v, want false (Nand(true,true))", got[0])
	}
}

func TestElaborateBusFanOut(t *testing.T) {
	b := newBuiltins(t)
	if _, err := b.RegisterHDL(`CHIP Split {
	IN in[2];
	OUT lo, hi;

	PARTS:
	Nand(a=in[0], b=in[0], out=notLo);
	Nand(a=notLo, b=notLo, out=lo);
	Nand(a=in[1], b=in[1], out=notHi);
	Nand(a=notHi, b=notHi, out=hi);
}
`); err != nil {
		t.Fatal(err)
	}
	split, err := b.ResolveChip("Split")
	if err != nil {
		t.Fatal(err)
	}
	got := split.Eval(Bits{true, false})
	if got[0] != true || got[1] != false {
		t.Fatalf("Split(in=10) = %v, want [true false]", got)
	}
}
