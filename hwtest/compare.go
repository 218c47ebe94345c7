// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing chips.
package hwtest

import (
	"testing"

	hwsim "github.com/n2t/hwsim"
	"github.com/stretchr/testify/require"
)

// TruthTable exhaustively evaluates chip for every combination of its input
// bits and checks the result against want, indexed by the same
// little-endian convention as hwsim.Bits.Uint16: want[i] is the expected
// output for the input pattern where bit n of i drives input bit n.
//
// chip must be purely combinatorial; clocked chips should be driven
// through Eval/Clock directly in their own tests.
func TruthTable(t *testing.T, chip hwsim.Chip, want []hwsim.Bits) {
	t.Helper()
	require.False(t, chip.IsClocked(), "TruthTable requires a combinatorial chip")

	sizeIn := chip.Interface().SizeIn()
	require.Equal(t, 1<<uint(sizeIn), len(want), "want must have one entry per input combination")

	for i, exp := range want {
		in := hwsim.BitsFromUint16(uint16(i), sizeIn)
		got := chip.Eval(in)
		require.Equalf(t, exp, got, "input %s", in)
	}
}

// CompareChips checks that a and b agree on every input combination over
// their shared combinatorial Eval, e.g. to check a library gate against an
// equivalent hand-wired NativeChip. Both chips must have identical input
// and output sizes.
func CompareChips(t *testing.T, a, b hwsim.Chip) {
	t.Helper()
	require.False(t, a.IsClocked() || b.IsClocked(), "CompareChips requires combinatorial chips")

	ai, bi := a.Interface(), b.Interface()
	require.Equal(t, ai.SizeIn(), bi.SizeIn(), "input size mismatch")
	require.Equal(t, ai.SizeOut(), bi.SizeOut(), "output size mismatch")

	const maxExhaustive = 12
	sizeIn := ai.SizeIn()
	if sizeIn > maxExhaustive {
		t.Fatalf("CompareChips: %d input bits is too large for exhaustive comparison", sizeIn)
	}
	for i := 0; i < 1<<uint(sizeIn); i++ {
		in := hwsim.BitsFromUint16(uint16(i), sizeIn)
		require.Equalf(t, a.Eval(in.Clone()), b.Eval(in.Clone()), "input %s", in)
	}
}
