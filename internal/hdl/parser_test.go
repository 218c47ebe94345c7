package hdl_test

import (
	"testing"

	"github.com/n2t/hwsim/internal/hdl"
)

func TestParseNativeChip(t *testing.T) {
	src := `CHIP And {
	IN a, b;
	OUT out;

	PARTS:
	Nand(a=a, b=b, out=w1);
	Nand(a=w1, b=w1, out=out);
}
`
	decl, err := hdl.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if decl.Name != "And" {
		t.Fatalf("Name = %q, want And", decl.Name)
	}
	if len(decl.InPins) != 2 || decl.InPins[0].Name != "a" || decl.InPins[1].Name != "b" {
		t.Fatalf("InPins = %+v", decl.InPins)
	}
	if len(decl.OutPins) != 1 || decl.OutPins[0].Name != "out" {
		t.Fatalf("OutPins = %+v", decl.OutPins)
	}
	native, ok := decl.Impl.(*hdl.Native)
	if !ok {
		t.Fatalf("Impl = %T, want *hdl.Native", decl.Impl)
	}
	if len(native.Parts) != 2 {
		t.Fatalf("len(Parts) = %d, want 2", len(native.Parts))
	}
	if native.Parts[0].SubChip != "Nand" {
		t.Fatalf("Parts[0].SubChip = %q, want Nand", native.Parts[0].SubChip)
	}
}

func TestParseBuiltinChipWithClocked(t *testing.T) {
	decl, err := hdl.Parse("CHIP DFF {\n\tIN in;\n\tOUT out;\n\n\tBUILTIN DFF;\n\tCLOCKED in, out;\n}\n")
	if err != nil {
		t.Fatal(err)
	}
	b, ok := decl.Impl.(*hdl.Builtin)
	if !ok {
		t.Fatalf("Impl = %T, want *hdl.Builtin", decl.Impl)
	}
	if b.Name != "DFF" {
		t.Fatalf("Builtin.Name = %q, want DFF", b.Name)
	}
	if len(b.Clocked) != 2 || b.Clocked[0] != "in" || b.Clocked[1] != "out" {
		t.Fatalf("Builtin.Clocked = %v, want [in out]", b.Clocked)
	}
}

func TestParseBusPins(t *testing.T) {
	decl, err := hdl.Parse(`CHIP Split {
	IN in[16];
	OUT lo[8], hi[8];

	PARTS:
	Nand(a=in[0], b=in[0..7], out=lo[0..7]);
}
`)
	if err != nil {
		t.Fatal(err)
	}
	if decl.InPins[0].Width != 16 {
		t.Fatalf("InPins[0].Width = %d, want 16", decl.InPins[0].Width)
	}
	native := decl.Impl.(*hdl.Native)
	arg := native.Parts[0].Args[1]
	ext, ok := arg.External.(hdl.ExtName)
	if !ok {
		t.Fatalf("Args[1].External = %T, want hdl.ExtName", arg.External)
	}
	if ext.Bus == nil || ext.Bus.Start != 0 || ext.Bus.End != 7 {
		t.Fatalf("Args[1].External.Bus = %+v, want [0..7]", ext.Bus)
	}
}

func TestParseConstantArgument(t *testing.T) {
	decl, err := hdl.Parse(`CHIP Always {
	IN a;
	OUT out;

	PARTS:
	Nand(a=true, b=false, out=out);
}
`)
	if err != nil {
		t.Fatal(err)
	}
	native := decl.Impl.(*hdl.Native)
	if native.Parts[0].Args[0].External != hdl.ExtBool(true) {
		t.Fatalf("Args[0].External = %v, want true", native.Parts[0].Args[0].External)
	}
	if native.Parts[0].Args[1].External != hdl.ExtBool(false) {
		t.Fatalf("Args[1].External = %v, want false", native.Parts[0].Args[1].External)
	}
}

// A bare numeric literal in driver position is valid syntax: the grammar
// accepts it and leaves rejection to elaboration (ValuesNotSupported).
func TestParseNumberArgument(t *testing.T) {
	decl, err := hdl.Parse(`CHIP Bad {
	IN a;
	OUT out;

	PARTS:
	Nand(a=a, b=1, out=out);
}
`)
	if err != nil {
		t.Fatal(err)
	}
	native := decl.Impl.(*hdl.Native)
	if native.Parts[0].Args[1].External != hdl.ExtNumber(1) {
		t.Fatalf("Args[1].External = %v, want ExtNumber(1)", native.Parts[0].Args[1].External)
	}
}

func TestParseErrors(t *testing.T) {
	td := []struct {
		name string
		src  string
	}{
		{"missing chip keyword", "Nand { IN a; OUT out; BUILTIN Nand; }"},
		{"bad symbol", "CHIP Bad { IN a; OUT out; BUILTIN Nand; } $"},
		{"reserved word as pin name", "CHIP Bad {\n\tIN true;\n\tOUT out;\n\n\tBUILTIN Nand;\n}\n"},
		{"unterminated declaration", "CHIP Bad {\n\tIN a;\n\tOUT out;\n"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			if _, err := hdl.Parse(d.src); err == nil {
				t.Fatalf("Parse(%q) succeeded, want an error", d.src)
			}
		})
	}
}
