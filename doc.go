/*
Package hwsim is a gate-level hardware description language simulator in the
spirit of the Nand2Tetris course.

It parses textual chip definitions (see the internal/hdl grammar) that
compose primitive gates -- ultimately a single built-in Nand -- into larger
chips with bit or multi-bit buses, clocked and combinatorial pins, and
sub-chip instantiation with named pin wiring. Given a top-level chip name
and an input bit vector, a built chip computes the chip's output bit vector;
given a clock tick, it advances any sequential state.

The pipeline is: parse HDL source into a ChipRepr, synthesize its Interface,
register it with a ChipBuilder (which elaborates it into a NativeChip graph
of Barriers wired together by Routers), then Eval/Clock the resulting Chip.

The sub-package hwlib provides the canonical HDL source for the built-in
gate library. The sub-package hwtest provides truth-table and chip
comparison test helpers.
*/
package hwsim
