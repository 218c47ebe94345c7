package hwtest_test

import (
	"testing"

	hwsim "github.com/n2t/hwsim"
	"github.com/n2t/hwsim/hwlib"
	"github.com/n2t/hwsim/hwtest"
)

const orViaNand = `CHIP OrViaNand {
	IN a, b;
	OUT out;

	PARTS:
	Nand(a=a, b=a, out=notA);
	Nand(a=b, b=b, out=notB);
	Nand(a=notA, b=notB, out=out);
}
`

func TestCompareChips(t *testing.T) {
	b, err := hwsim.NewChipBuilder().WithBuiltins()
	if err != nil {
		t.Fatal(err)
	}
	if err := hwlib.Register(b); err != nil {
		t.Fatal(err)
	}
	if _, err := b.RegisterHDL(orViaNand); err != nil {
		t.Fatal(err)
	}

	libOr, err := b.ResolveChip("Or")
	if err != nil {
		t.Fatal(err)
	}
	nandOr, err := b.ResolveChip("OrViaNand")
	if err != nil {
		t.Fatal(err)
	}

	hwtest.CompareChips(t, libOr, nandOr)
}
