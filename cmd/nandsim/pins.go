package main

import (
	"fmt"
	"strings"

	hwsim "github.com/n2t/hwsim"
)

// parseBits decodes a bit string (MSB first, the same convention
// hwsim.Bits.String renders) into a hwsim.Bits vector.
func parseBits(s string) (hwsim.Bits, error) {
	b := hwsim.NewBits(len(s))
	for i, c := range s {
		switch c {
		case '0':
			b[len(s)-1-i] = false
		case '1':
			b[len(s)-1-i] = true
		default:
			return nil, fmt.Errorf("invalid bit %q in %q: only 0/1 allowed", c, s)
		}
	}
	return b, nil
}

// pinAssignment is one "name=bits" --in flag, parsed.
type pinAssignment struct {
	name string
	bits hwsim.Bits
}

func parseAssignment(s string) (pinAssignment, error) {
	name, val, ok := strings.Cut(s, "=")
	if !ok {
		return pinAssignment{}, fmt.Errorf("malformed pin assignment %q, want name=bits", s)
	}
	bits, err := parseBits(val)
	if err != nil {
		return pinAssignment{}, err
	}
	return pinAssignment{name: name, bits: bits}, nil
}

// buildInput packs a set of named pin assignments into one Bits vector
// sized to iface's full input width, resolving each name with
// iface.RealRange (and reporting unknown pins instead of silently ignoring
// them, since a typo here is easy to make on the command line).
func buildInput(iface hwsim.Interface, assignments []pinAssignment) (hwsim.Bits, error) {
	in := hwsim.NewBits(iface.SizeIn())
	for _, a := range assignments {
		rng, err := iface.RealRange(a.name, nil)
		if err != nil {
			return nil, err
		}
		if rng.Size() != len(a.bits) {
			return nil, fmt.Errorf("pin %q is %d bits wide, got %d", a.name, rng.Size(), len(a.bits))
		}
		in.SetSlice(rng, a.bits)
	}
	return in, nil
}

// formatOutputs renders every output pin in repr's declared order as
// "name=bits" lines, in the same MSB-first bit notation --in accepts.
func formatOutputs(iface hwsim.Interface, pins []hwsim.Channel, out hwsim.Bits) string {
	var sb strings.Builder
	for _, p := range pins {
		rng, err := iface.RealRange(p.Name, nil)
		if err != nil {
			// pin layout is synthesized from the same pins slice, so this
			// can only happen from a programmer error in this package.
			panic(err)
		}
		fmt.Fprintf(&sb, "%s=%s\n", p.Name, out.Slice(rng).String())
	}
	return sb.String()
}
