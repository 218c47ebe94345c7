package main

import (
	"testing"

	hwsim "github.com/n2t/hwsim"
)

func TestParseBits(t *testing.T) {
	got, err := parseBits("101")
	if err != nil {
		t.Fatal(err)
	}
	want := hwsim.Bits{true, false, true} // LSB first: bit0=1, bit1=0, bit2=1
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parseBits(%q) = %s, want %s", "101", got, want)
		}
	}
	if got.String() != "101" {
		t.Fatalf("parseBits(%q).String() = %q, want %q", "101", got.String(), "101")
	}
}

func TestParseBitsInvalid(t *testing.T) {
	if _, err := parseBits("102"); err == nil {
		t.Fatal("expected an error for a non-binary digit")
	}
}

func TestParseAssignment(t *testing.T) {
	a, err := parseAssignment("sel=10")
	if err != nil {
		t.Fatal(err)
	}
	if a.name != "sel" || a.bits.String() != "10" {
		t.Fatalf("parseAssignment = %+v", a)
	}
	if _, err := parseAssignment("sel"); err == nil {
		t.Fatal("expected an error for a missing '='")
	}
}

func TestBuildInput(t *testing.T) {
	iface, err := hwsim.NewInterface(nil, []hwsim.Channel{{Name: "a", Width: 1}, {Name: "sel", Width: 2}}, nil, []hwsim.Channel{{Name: "out", Width: 1}})
	if err != nil {
		t.Fatal(err)
	}
	in, err := buildInput(iface, []pinAssignment{
		{name: "a", bits: hwsim.Bits{true}},
		{name: "sel", bits: hwsim.Bits{true, false}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(in) != iface.SizeIn() {
		t.Fatalf("len(in) = %d, want %d", len(in), iface.SizeIn())
	}

	if _, err := buildInput(iface, []pinAssignment{{name: "nope", bits: hwsim.Bits{true}}}); err == nil {
		t.Fatal("expected an error for an unknown pin")
	}
	if _, err := buildInput(iface, []pinAssignment{{name: "a", bits: hwsim.Bits{true, false}}}); err == nil {
		t.Fatal("expected an error for a width mismatch")
	}
}
