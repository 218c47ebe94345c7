// Command nandsim loads a single HDL chip definition and drives it with
// explicit input vectors from the command line, printing its output pins.
//
// It is a thin front end: chip lookup beyond "one file, one chip" (a
// directory of HDL sources searched by chip name) is left to whatever
// embeds this engine, per ChipSource.
package main

import (
	"fmt"
	"log"

	hwsim "github.com/n2t/hwsim"
	"github.com/n2t/hwsim/hwlib"
	"github.com/spf13/cobra"
)

func newBuilder() (*hwsim.ChipBuilder, error) {
	b, err := hwsim.NewChipBuilder().WithBuiltins()
	if err != nil {
		return nil, err
	}
	if err := hwlib.Register(b); err != nil {
		return nil, err
	}
	return b, nil
}

// loadTop registers the chip found at path (via src) on top of a builder
// preloaded with Nand/DFF and the hwlib gate library, and returns its
// ChipRepr (for the ordered pin lists) and a resolved, runnable instance.
func loadTop(src ChipSource, path string) (*hwsim.ChipRepr, hwsim.Chip, error) {
	b, err := newBuilder()
	if err != nil {
		return nil, nil, err
	}
	text, err := src.Load(path)
	if err != nil {
		return nil, nil, err
	}
	repr, err := b.RegisterHDL(text)
	if err != nil {
		return nil, nil, err
	}
	chip, err := b.ResolveChip(repr.Name)
	if err != nil {
		return nil, nil, err
	}
	return repr, chip, nil
}

func runStep(path string, ins []string, tick bool) error {
	repr, chip, err := loadTop(FileSource{Path: path}, path)
	if err != nil {
		return err
	}

	assignments := make([]pinAssignment, len(ins))
	for i, s := range ins {
		a, err := parseAssignment(s)
		if err != nil {
			return err
		}
		assignments[i] = a
	}
	in, err := buildInput(chip.Interface(), assignments)
	if err != nil {
		return err
	}

	var out hwsim.Bits
	if tick {
		out = chip.Clock(in)
	} else {
		out = chip.Eval(in)
	}
	fmt.Print(formatOutputs(chip.Interface(), repr.OutPins, out))
	return nil
}

func main() {
	log.SetFlags(0)

	var ins []string

	newInFlag := func(cmd *cobra.Command) {
		cmd.Flags().StringArrayVarP(&ins, "in", "i", nil, "input pin assignment, name=bits (repeatable)")
	}

	evalCmd := &cobra.Command{
		Use:   "eval <chip.hdl>",
		Short: "propagate combinatorial logic and print the chip's outputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(args[0], ins, false)
		},
	}
	newInFlag(evalCmd)

	clockCmd := &cobra.Command{
		Use:   "clock <chip.hdl>",
		Short: "advance any sequential state one tick, then print the chip's outputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(args[0], ins, true)
		},
	}
	newInFlag(clockCmd)

	root := &cobra.Command{
		Use:   "nandsim",
		Short: "nandsim evaluates Nand2Tetris-style HDL chip definitions",
	}
	root.AddCommand(evalCmd, clockCmd)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
